package models

import (
	"testing"
	"time"
)

func TestDayWeekdayRoundTrip(t *testing.T) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := DayFromWeekday(wd)
		if day.Weekday() != wd {
			t.Errorf("round trip failed for %v: got %v", wd, day.Weekday())
		}
	}
}

func TestDayLabel(t *testing.T) {
	if got := Monday.Label(); got != "Monday" {
		t.Errorf("Monday.Label() = %q", got)
	}
	if got := DayOfWeek("").Label(); got != "" {
		t.Errorf("empty label = %q", got)
	}
}

func TestDaysOfWeekMondayFirst(t *testing.T) {
	if DaysOfWeek[0] != Monday || DaysOfWeek[6] != Sunday {
		t.Errorf("unexpected week order: %v", DaysOfWeek)
	}
}

func TestParseAttendanceStatus(t *testing.T) {
	for _, st := range AttendanceStatuses {
		got, ok := ParseAttendanceStatus(string(st))
		if !ok || got != st {
			t.Errorf("ParseAttendanceStatus(%q) = %q, %v", st, got, ok)
		}
	}
	if _, ok := ParseAttendanceStatus("tardy"); ok {
		t.Error("expected tardy to be rejected")
	}
	if _, ok := ParseAttendanceStatus("Present"); ok {
		t.Error("statuses are lowercase only")
	}
}

func TestAttendanceKey(t *testing.T) {
	rec := AttendanceRecord{ID: "att-1", ClassID: "cls-1", Date: "2026-03-02"}
	if rec.Key() != AttendanceKey("cls-1", "2026-03-02") {
		t.Errorf("Key() = %q", rec.Key())
	}
	if AttendanceKey("a", "b") == AttendanceKey("b", "a") {
		t.Error("key must distinguish class from date")
	}
}

func TestSubjectSchedule(t *testing.T) {
	sub := Subject{
		ID:         "sub-1",
		Name:       "Algorithms",
		Code:       "CS201",
		Instructor: "Dr. Chen",
		Room:       "B-204",
		Color:      "#6366f1",
	}
	cls := sub.Schedule("cls-1", Monday, TimeSlot{StartTime: "09:00", EndTime: "10:30"})

	if cls.SubjectID != "sub-1" || cls.SubjectName != "Algorithms" || cls.Color != "#6366f1" {
		t.Errorf("subject fields not copied: %+v", cls)
	}
	if cls.Day != Monday || cls.TimeSlot.StartTime != "09:00" {
		t.Errorf("schedule fields not set: %+v", cls)
	}
	if err := cls.Validate(); err != nil {
		t.Errorf("expected valid schedule, got %v", err)
	}
}

func TestClassPatchApply(t *testing.T) {
	cls := ClassSchedule{
		ID: "cls-1", SubjectID: "sub-1", SubjectName: "Algorithms",
		Day: Monday, TimeSlot: TimeSlot{StartTime: "09:00", EndTime: "10:30"},
		Room: "B-204", Color: "#6366f1",
	}

	day := Friday
	start := "14:00"
	ClassPatch{Day: &day, StartTime: &start}.Apply(&cls)

	if cls.Day != Friday || cls.TimeSlot.StartTime != "14:00" {
		t.Errorf("patch not applied: %+v", cls)
	}
	if cls.TimeSlot.EndTime != "10:30" || cls.Room != "B-204" {
		t.Errorf("unset fields must be untouched: %+v", cls)
	}
}

func TestEventPatchApply(t *testing.T) {
	e := ClassEvent{
		ID: "evt-1", Title: "Midterm", Type: EventExam,
		Date: "2026-03-20", Time: "09:00",
		ReminderEnabled: true, ReminderLeadMin: 30,
	}

	title := "Midterm (moved)"
	off := false
	lead := 60
	EventPatch{Title: &title, ReminderEnabled: &off, ReminderLeadMin: &lead}.Apply(&e)

	if e.Title != "Midterm (moved)" || e.ReminderEnabled || e.ReminderLeadMin != 60 {
		t.Errorf("patch not applied: %+v", e)
	}
	if e.Date != "2026-03-20" || e.Type != EventExam {
		t.Errorf("unset fields must be untouched: %+v", e)
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	sub := Subject{ID: "sub-1", Name: "Algo", Color: "blue"}
	if err := sub.Validate(); err == nil {
		t.Error("expected color validation failure")
	}

	rec := AttendanceRecord{ID: "att-1", ClassID: "cls-1", Date: "03/02/2026", Status: StatusPresent}
	if err := rec.Validate(); err == nil {
		t.Error("expected date validation failure")
	}
}
