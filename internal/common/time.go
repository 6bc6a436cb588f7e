package common

import "time"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// All API timestamps (meta.timestamp, error timestamps, entity times)
// use this format so clients can parse a single layout.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// Timestamp formats t as the canonical API timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format(RFC3339Micros)
}

// Now returns the current time formatted as the canonical API timestamp.
func Now() string {
	return Timestamp(time.Now())
}

// Time wraps time.Time to guarantee RFC 3339 microsecond precision in JSON
// output. JSON null on input preserves the existing value, matching the
// standard library's time.Time behavior.
type Time struct {
	time.Time
}

// NewTime creates a Time from a standard time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// MarshalJSON implements json.Marshaler with fixed microsecond precision.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Micros) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting RFC 3339 variants.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}
