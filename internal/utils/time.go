package utils

import (
	"fmt"
	"time"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// NowFromSettings returns the current time using the timezone from settings.
func NowFromSettings(settings models.Settings) (time.Time, error) {
	return NowInTimezone(settings.Timezone)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) at midnight in the
// specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string (HH:MM)
// into a single time.Time in the specified timezone.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday midnight at or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	// Go's Weekday is Sunday=0; shift so Monday starts the week.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
// Times must be zero-padded so stored values sort chronologically.
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != len(constants.TimeFormat) {
		return false
	}
	_, err := ParseTime(timeStr)
	return err == nil
}
