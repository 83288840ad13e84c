package types

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"

	"tasklog.dev/backend/internal/pkg/calday"
)

// Timestamp is an optional client-supplied point in time. It accepts RFC 3339, zone-less
// ISO-8601 (read as UTC) and bare YYYY-MM-DD dates. JSON null or an absent field leaves
// it invalid.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC(), Valid: true}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return t.UnmarshalText([]byte(s))
}

func (t *Timestamp) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*t = Timestamp{}
		return nil
	}

	parsed, err := calday.ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*t = NewTimestamp(parsed)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.UTC())
}

// Ptr returns nil when t is invalid.
func (t Timestamp) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
