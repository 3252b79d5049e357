package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-03-01")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 1 {
		t.Errorf("ParseDate = %v, want 2026-03-01", got)
	}

	invalid := []string{"2026-3-1", "01-03-2026", "2026/03/01", "not-a-date", ""}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestDayStart(t *testing.T) {
	in := time.Date(2026, time.August, 28, 15, 4, 5, 123, time.UTC)
	got := DayStart(in)
	want := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.August, 28, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 28, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("times on the same date should compare equal")
	}
	if SameDay(a, c) {
		t.Error("times on different dates should not compare equal")
	}
}

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	if err != nil {
		t.Fatalf("GenerateOTP returned error: %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("GenerateOTP length = %d, want 6", len(code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Errorf("GenerateOTP produced non-digit %q in %q", r, code)
		}
	}
}
