// Package calday works with UTC calendar days. Stored timestamps are UTC, so a
// "day" throughout the ledger is a UTC day.
package calday

import (
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// timestamp layouts accepted from clients, most specific first. Layouts without a zone
// are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	DateLayout,
}

var ErrMalformed = errors.New("malformed date or timestamp")

// Start returns 00:00:00 UTC of t's date.
func Start(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Next returns 00:00:00 UTC of the day after t's date.
func Next(t time.Time) time.Time {
	return Start(t).AddDate(0, 0, 1)
}

// Noon returns 12:00:00 UTC of t's date.
func Noon(t time.Time) time.Time {
	return Start(t).Add(12 * time.Hour)
}

// HasTimeOfDay reports whether t carries an hour, minute or second other than zero.
// Sub-second precision alone does not count.
func HasTimeOfDay(t time.Time) bool {
	t = t.UTC()
	return t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0
}

// Month returns the half-open range [first day of month, first day of next month).
func Month(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Format renders t's UTC date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrMalformed, "%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

// ParseTimestamp parses an ISO-8601 timestamp, with or without zone, or a bare date.
// The result is always in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrMalformed, "%q is not an ISO-8601 timestamp", s)
}
