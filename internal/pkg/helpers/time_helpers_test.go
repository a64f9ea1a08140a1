package helpers

import (
	"testing"
	"time"
)

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2024-07-01")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if FormatDate(parsed) != "2024-07-01" {
		t.Errorf("round trip failed: %s", FormatDate(parsed))
	}

	if _, err := ParseDate("01/07/2024"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
	if _, err := ParseDate("2024-02-30"); err == nil {
		t.Error("expected an error for an impossible date")
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2024, 7, 1, 18, 45, 30, 999, time.UTC)
	got := TruncateToDay(in)
	want := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("90m", time.Hour); d != 90*time.Minute {
		t.Errorf("expected 90m, got %v", d)
	}
	if d := ParseDuration("bogus", time.Hour); d != time.Hour {
		t.Errorf("expected fallback, got %v", d)
	}
}
