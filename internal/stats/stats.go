// Package stats computes attendance statistics and schedule-derived views.
// Every function is pure: anything that depends on "now" takes it as an
// argument, so callers pass time.Now() and tests pass a fixed clock.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/utils"
)

// AttendanceStats aggregates attendance records into per-status counts.
// Percentage counts late arrivals as attended; absences and excused
// sessions count toward the denominator only.
type AttendanceStats struct {
	Total      int `json:"total"`
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	Late       int `json:"late"`
	Excused    int `json:"excused"`
	Percentage int `json:"percentage"`
}

// Calculate aggregates records into attendance stats. An empty classID
// aggregates over all records; otherwise only records for that class
// count. With no matching records every field is zero.
func Calculate(records []models.AttendanceRecord, classID string) AttendanceStats {
	var s AttendanceStats
	for _, r := range records {
		if classID != "" && r.ClassID != classID {
			continue
		}
		s.Total++
		switch r.Status {
		case models.StatusPresent:
			s.Present++
		case models.StatusAbsent:
			s.Absent++
		case models.StatusLate:
			s.Late++
		case models.StatusExcused:
			s.Excused++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Present+s.Late) / float64(s.Total) * 100))
	}
	return s
}

// WeekBucket is one week of the attendance trend. Week labels use the
// Monday that starts the week ("Jan 2" style).
type WeekBucket struct {
	Week    string `json:"week"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

// WeeklyData buckets records into the trailing `weeks` Monday-start weeks,
// oldest first. The result always has exactly `weeks` buckets; records
// older than the window are dropped. Records with unparseable dates are
// skipped.
func WeeklyData(records []models.AttendanceRecord, weeks int, now time.Time) []WeekBucket {
	data := make([]WeekBucket, 0, weeks)
	if weeks <= 0 {
		return data
	}

	currentWeek := utils.StartOfWeek(now)
	for i := weeks - 1; i >= 0; i-- {
		weekStart := currentWeek.AddDate(0, 0, -7*i)
		weekEnd := weekStart.AddDate(0, 0, 7) // exclusive bound, covers all of Sunday

		bucket := WeekBucket{Week: weekStart.Format("Jan 2")}
		for _, r := range records {
			date, err := utils.ParseDateInLocation(r.Date, now.Location())
			if err != nil {
				continue
			}
			if date.Before(weekStart) || !date.Before(weekEnd) {
				continue
			}
			switch r.Status {
			case models.StatusPresent:
				bucket.Present++
			case models.StatusAbsent:
				bucket.Absent++
			case models.StatusLate:
				bucket.Late++
			}
		}
		data = append(data, bucket)
	}

	return data
}

// ClassesForDay filters classes to the given weekday, sorted by start
// time. Zero-padded HH:MM strings sort lexicographically in time order.
func ClassesForDay(classes []models.ClassSchedule, day models.DayOfWeek) []models.ClassSchedule {
	result := make([]models.ClassSchedule, 0)
	for _, c := range classes {
		if c.Day == day {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TimeSlot.StartTime < result[j].TimeSlot.StartTime
	})
	return result
}

// TodaysClasses returns the classes scheduled on now's weekday, sorted by
// start time.
func TodaysClasses(classes []models.ClassSchedule, now time.Time) []models.ClassSchedule {
	return ClassesForDay(classes, models.DayFromWeekday(now.Weekday()))
}

// FormatDate renders a date string relative to now: "Today", "Tomorrow",
// or "Jan 2, 2006". Unparseable input is returned unchanged.
func FormatDate(dateStr string, now time.Time) string {
	date, err := utils.ParseDateInLocation(dateStr, now.Location())
	if err != nil {
		return dateStr
	}
	today := utils.StartOfDay(now)
	switch {
	case date.Equal(today):
		return "Today"
	case date.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow"
	default:
		return date.Format("Jan 2, 2006")
	}
}

// IsOverdue reports whether the date is strictly before today. Today
// itself is never overdue. Unparseable input is never overdue.
func IsOverdue(dateStr string, now time.Time) bool {
	date, err := utils.ParseDateInLocation(dateStr, now.Location())
	if err != nil {
		return false
	}
	return date.Before(utils.StartOfDay(now))
}

// FormatTimeOfDay renders an "HH:MM" time for display in 12-hour form,
// e.g. "9:00 AM". Unparseable input is returned unchanged.
func FormatTimeOfDay(timeStr string) string {
	t, err := utils.ParseTime(timeStr)
	if err != nil {
		return timeStr
	}
	return t.Format("3:04 PM")
}

// UpcomingClassDates returns every date within [start, end] (inclusive)
// that falls on the class's weekday, in order. Used to project the
// expected sessions of a class across the semester.
func UpcomingClassDates(class models.ClassSchedule, start, end time.Time) []time.Time {
	var dates []time.Time
	target := class.Day.Weekday()
	for d := utils.StartOfDay(start); !d.After(utils.StartOfDay(end)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == target {
			dates = append(dates, d)
		}
	}
	return dates
}

// DefaultWeeks is the standard trend window.
const DefaultWeeks = constants.DefaultWeeklyTrendWeeks
