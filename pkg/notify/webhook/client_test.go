package webhook_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sonoplan/pkg/domain"
	"sonoplan/pkg/notify"
	"sonoplan/pkg/notify/webhook"
	"sonoplan/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *webhook.Client {
	return webhook.New(&http.Client{Transport: fn}, "https://hooks.example.com/reminders", "test-token")
}

func respond(status int, body string, headers ...string) (*http.Response, error) {
	h := http.Header{}
	for i := 0; i+1 < len(headers); i += 2 {
		h.Set(headers[i], headers[i+1])
	}

	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

func notification() notify.Notification {
	return notify.Notification{
		ReminderID:   domain.ReminderID(uuid.New()),
		ScheduleID:   domain.ScheduleID(uuid.New()),
		PatientID:    domain.PatientID(uuid.New()),
		ReminderDate: "2024-02-12",
		Message:      "Dating Scan is recommended on 19-Feb-2024 (12-Feb-2024 to 26-Feb-2024)",
		SentAt:       time.Date(2024, time.February, 12, 9, 0, 0, 0, time.UTC),
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, time.February, 12, 9, 0, 0, 0, time.UTC)

	h := http.Header{}
	require.Zero(t, webhook.ParseRetryAfter(h, now))

	h.Set("Retry-After", "120")
	require.Equal(t, 2*time.Minute, webhook.ParseRetryAfter(h, now))

	h.Set("Retry-After", now.Add(30*time.Second).Format(http.TimeFormat))
	require.Equal(t, 30*time.Second, webhook.ParseRetryAfter(h, now))

	h.Set("Retry-After", "soon")
	require.Zero(t, webhook.ParseRetryAfter(h, now))
}

func TestClient_Notify_success(t *testing.T) {
	n := notification()
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "hooks.example.com", r.URL.Host)
		require.Equal(t, "/reminders", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Equal(t, n.ReminderID.String(), r.Header.Get("Idempotency-Key"))

		var got notify.Notification
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, n, got)

		return respond(http.StatusAccepted, "")
	})

	require.NoError(t, c.Notify(context.Background(), n))
}

func TestClient_Notify_rateLimited429(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusTooManyRequests, "slow down", "Retry-After", "60")
	})

	err := c.Notify(context.Background(), notification())
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Contains(t, err.Error(), "1m0s")
}

func TestClient_Notify_serverErrorUnavailable(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "upstream down")
	})

	err := c.Notify(context.Background(), notification())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Notify_transportErrorUnavailable(t *testing.T) {
	boom := errors.New("connection refused")
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, boom
	})

	err := c.Notify(context.Background(), notification())
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, boom)
}

func TestClient_Notify_rejected(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusBadRequest, `{"error":"unknown patient"}`)
	})

	err := c.Notify(context.Background(), notification())
	require.Error(t, err)
	require.NotErrorIs(t, err, serrors.ErrUnavailable)
	require.NotErrorIs(t, err, serrors.ErrRateLimited)
	require.Contains(t, err.Error(), "unknown patient")
}

func TestClient_Notify_noTokenOmitsAuthorization(t *testing.T) {
	auth := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth <- r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := webhook.New(srv.Client(), srv.URL, "")
	require.NoError(t, c.Notify(context.Background(), notification()))
	require.Empty(t, <-auth)
}
