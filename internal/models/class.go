package models

import (
	"time"

	"github.com/classtrack/classtrack/internal/validation"
)

// DayOfWeek is a lowercase weekday name. The week is presented
// Monday-first but conversion from time.Weekday follows Go's Sunday=0
// numbering, so keep the two mappings distinct.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// DaysOfWeek lists the week Monday-first, the order the timetable renders in.
var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayFromWeekday converts Go's Sunday-first weekday numbering.
func DayFromWeekday(wd time.Weekday) DayOfWeek {
	days := []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
	return days[wd]
}

// Weekday converts back to Go's numbering. Returns Sunday for unknown values.
func (d DayOfWeek) Weekday() time.Weekday {
	for i, day := range []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday} {
		if day == d {
			return time.Weekday(i)
		}
	}
	return time.Sunday
}

// Label returns the capitalized display name.
func (d DayOfWeek) Label() string {
	if d == "" {
		return ""
	}
	return string(d[0]-'a'+'A') + string(d[1:])
}

// TimeSlot is a start/end pair in zero-padded "HH:MM". Zero-padding makes
// lexicographic comparison equivalent to chronological comparison.
type TimeSlot struct {
	StartTime string `json:"start_time" validate:"required,timefmt"`
	EndTime   string `json:"end_time" validate:"required,timefmt"`
}

// ClassSchedule is one weekly occurrence of a Subject at a specific
// day/time. Subject display fields are denormalized here so rendering a
// timetable never needs a join; the store's UpdateSubjectAndClasses is the
// only path allowed to rewrite them.
type ClassSchedule struct {
	ID          string    `json:"id" validate:"required"`
	SubjectID   string    `json:"subject_id" validate:"required"`
	SubjectName string    `json:"subject_name" validate:"required"`
	SubjectCode string    `json:"subject_code,omitempty"`
	Instructor  string    `json:"instructor,omitempty"`
	Room        string    `json:"room,omitempty"`
	Day         DayOfWeek `json:"day" validate:"required,dayofweek"`
	TimeSlot    TimeSlot  `json:"time_slot"`
	Color       string    `json:"color" validate:"required,colortag"`
}

func (c *ClassSchedule) Validate() error {
	return validation.Struct(c)
}

// ClassPatch is a partial update of a class's own scheduling fields.
type ClassPatch struct {
	Day       *DayOfWeek
	StartTime *string
	EndTime   *string
	Room      *string
}

// Apply copies the set fields of the patch onto the class.
func (p ClassPatch) Apply(c *ClassSchedule) {
	if p.Day != nil {
		c.Day = *p.Day
	}
	if p.StartTime != nil {
		c.TimeSlot.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		c.TimeSlot.EndTime = *p.EndTime
	}
	if p.Room != nil {
		c.Room = *p.Room
	}
}

// Schedule builds a ClassSchedule bound to the given day and slot,
// copying the subject's display fields.
func (s Subject) Schedule(id string, day DayOfWeek, slot TimeSlot) ClassSchedule {
	return ClassSchedule{
		ID:          id,
		SubjectID:   s.ID,
		SubjectName: s.Name,
		SubjectCode: s.Code,
		Instructor:  s.Instructor,
		Room:        s.Room,
		Day:         day,
		TimeSlot:    slot,
		Color:       s.Color,
	}
}
