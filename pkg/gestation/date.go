package gestation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// ISODateLayout is the layout of dates exchanged with callers and storage (yyyy-MM-dd).
	ISODateLayout = "2006-01-02"
	// DisplayDateLayout is the layout of human-facing dates (dd-MMM-yyyy, e.g. 07-Mar-2024).
	// Go always renders English month abbreviations, independent of the host locale.
	DisplayDateLayout = "02-Jan-2006"
)

// ErrInvalidDate is wrapped by every error returned from ParseDate.
var ErrInvalidDate = errors.New("invalid date")

// CalendarDate drops the time of day and zone of t and returns the same
// calendar day at midnight UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO 8601 calendar date (yyyy-MM-dd).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
	}

	return t, nil
}

// FormatDate renders t as dd-MMM-yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// FormatISODate renders t as yyyy-MM-dd.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// addDays moves a calendar date by n days. AddDate normalizes month and year
// overflow, so this is exact across month ends and leap years.
func addDays(t time.Time, n int) time.Time {
	return CalendarDate(t).AddDate(0, 0, n)
}
