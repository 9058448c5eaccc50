// Package webhook provides a notify.Notifier that posts reminders as JSON to
// an HTTP endpoint, such as an SMS or messaging gateway.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sonoplan/pkg/notify"
	"sonoplan/pkg/serrors"
	"strconv"
	"strings"
	"time"
)

// maxErrorBody bounds how much of an error response is kept in the error message.
const maxErrorBody = 512

// Client posts notifications to a webhook URL. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs the webhook requests
	url        string       // url is the endpoint receiving notifications
	token      string       // token is sent as a bearer token when set
}

// ParseRetryAfter reads the Retry-After header, either delay-seconds or an
// HTTP date. It returns zero when the header is absent or malformed.
func ParseRetryAfter(h http.Header, now time.Time) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}

	return 0
}

// Notify posts n to the webhook. A 429 answer is reported as
// serrors.ErrRateLimited, transport failures and 5xx answers as
// serrors.ErrUnavailable, and any other non-2xx answer as a plain error.
func (c *Client) Notify(ctx context.Context, n notify.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("could not marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", n.ReminderID.String())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not send notification")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	text := strings.TrimSpace(string(b))

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return serrors.With(serrors.ErrRateLimited, "rate limited (retry after %s): %s",
			ParseRetryAfter(resp.Header, time.Now()), text)
	case resp.StatusCode >= http.StatusInternalServerError:
		return serrors.With(serrors.ErrUnavailable, "webhook unavailable (%d): %s", resp.StatusCode, text)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("notification rejected (%d): %s", resp.StatusCode, text)
	}

	return nil
}

// Ensure Client conforms to the notify.Notifier interface at compile time.
var _ notify.Notifier = (*Client)(nil)

// New constructs a Client posting to url with the provided http.Client.
// An empty token disables the Authorization header.
func New(httpClient *http.Client, url, token string) *Client {
	return &Client{
		httpClient: httpClient,
		url:        url,
		token:      token,
	}
}
