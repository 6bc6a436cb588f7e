package common

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampMicrosecondPrecision(t *testing.T) {
	in := time.Date(2026, 1, 2, 15, 4, 5, 123456789, time.UTC)
	got := Timestamp(in)
	want := "2026-01-02T15:04:05.123456Z"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTimestampConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	in := time.Date(2026, 1, 2, 17, 4, 5, 0, loc)
	got := Timestamp(in)
	want := "2026-01-02T15:04:05.000000Z"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTimeMarshalPadsZeros(t *testing.T) {
	raw, err := json.Marshal(NewTime(time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2026-01-02T15:04:05.000000Z"` {
		t.Fatalf("expected fixed-width fraction, got %s", raw)
	}
}

func TestTimeUnmarshalRoundTrip(t *testing.T) {
	var parsed Time
	if err := json.Unmarshal([]byte(`"2026-01-02T15:04:05.123456Z"`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.UTC() != time.Date(2026, 1, 2, 15, 4, 5, 123456000, time.UTC) {
		t.Fatalf("unexpected parsed time %v", parsed)
	}

	var untouched Time
	if err := json.Unmarshal([]byte("null"), &untouched); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !untouched.IsZero() {
		t.Fatalf("expected null to preserve zero value, got %v", untouched)
	}
}

func TestNowParsesWithCanonicalLayout(t *testing.T) {
	if _, err := time.Parse(RFC3339Micros, Now()); err != nil {
		t.Fatalf("Now() does not match canonical layout: %v", err)
	}
}
