package utils

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday stays", time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), "2026-03-02"},
		{"wednesday rewinds", time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC), "2026-03-09"},
		{"sunday rewinds six days", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), "2026-03-09"},
		{"saturday", time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC), "2026-03-09"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfWeek(tc.in)
			if got.Weekday() != time.Monday {
				t.Errorf("expected Monday, got %v", got.Weekday())
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("expected midnight, got %v", got)
			}
			if got.Format("2006-01-02") != tc.want {
				t.Errorf("StartOfWeek(%v) = %s, want %s", tc.in, got.Format("2006-01-02"), tc.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	in := time.Date(2026, 3, 11, 17, 45, 12, 999, loc)
	got := StartOfDay(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}
	if got.Location() != loc {
		t.Errorf("expected location preserved, got %v", got.Location())
	}
	if got.Day() != 11 {
		t.Errorf("expected same day, got %d", got.Day())
	}
}

func TestParseDateInLocation(t *testing.T) {
	got, err := ParseDateInLocation("2026-03-11", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseDateInLocation("03/11/2026", time.UTC); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2026-03-11", "14:30", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 11, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("bad", "14:30", time.UTC); err == nil {
		t.Error("expected error for bad date")
	}
	if _, err := CombineDateAndTime("2026-03-11", "2pm", time.UTC); err == nil {
		t.Error("expected error for bad time")
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"14:30", 870, false},
		{"23:59", 1439, false},
		{"25:00", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseTimeToMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	cases := map[string]bool{
		"":                 true,
		"Local":            true,
		"UTC":              true,
		"America/New_York": true,
		"Mars/Olympus":     false,
	}
	for in, want := range cases {
		if got := ValidateTimezone(in); got != want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestValidateTimeFormat(t *testing.T) {
	if !ValidateTimeFormat("08:15") {
		t.Error("expected 08:15 to be valid")
	}
	if ValidateTimeFormat("8:15") {
		t.Error("expected 8:15 to be invalid")
	}
	if ValidateTimeFormat("later") {
		t.Error("expected non-time string to be invalid")
	}
}

func TestLoadLocationLocalAliases(t *testing.T) {
	for _, in := range []string{"", "Local"} {
		loc, err := LoadLocation(in)
		if err != nil {
			t.Fatalf("LoadLocation(%q): %v", in, err)
		}
		if loc != time.Local {
			t.Errorf("LoadLocation(%q) = %v, want time.Local", in, loc)
		}
	}
}
