package calday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBoundaries(t *testing.T) {
	ts := time.Date(2024, 2, 29, 23, 59, 59, 999, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), Start(ts))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Next(ts))
	assert.Equal(t, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), Noon(ts))
	assert.Equal(t, "2024-02-29", Format(ts))
}

func TestStartNormalizesToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-05-02 01:00 JST is 2024-05-01 16:00 UTC
	ts := time.Date(2024, 5, 2, 1, 0, 0, 0, tokyo)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Start(ts))
}

func TestHasTimeOfDay(t *testing.T) {
	assert.False(t, HasTimeOfDay(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, HasTimeOfDay(time.Date(2024, 5, 1, 0, 0, 0, 500, time.UTC)))
	assert.True(t, HasTimeOfDay(time.Date(2024, 5, 1, 0, 0, 1, 0, time.UTC)))
	assert.True(t, HasTimeOfDay(time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)))
}

func TestMonth(t *testing.T) {
	start, end := Month(2023, time.December)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)

	start, end = Month(2024, time.February)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d)

	for _, s := range []string{"", "2024-5-1", "2024-13-01", "yesterday", "2024-05-01T10:00:00Z"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrMalformed, "input %q", s)
	}
}

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in     string
		expect time.Time
	}{
		{"2024-05-01T14:30:00Z", time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)},
		{"2024-05-01T14:30:00+02:00", time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)},
		{"2024-05-01T14:30:00.250Z", time.Date(2024, 5, 1, 14, 30, 0, 250_000_000, time.UTC)},
		{"2024-05-01T14:30:00", time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)},
		{"2024-05-01 14:30:00", time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)},
		{"2024-05-01T14:30", time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)},
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseTimestamp(c.in)
		require.NoError(t, err, "input %q", c.in)
		assert.True(t, c.expect.Equal(got), "input %q: expected %s, got %s", c.in, c.expect, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := ParseTimestamp("not a time")
	assert.ErrorIs(t, err, ErrMalformed)
}
