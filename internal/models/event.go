package models

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/validation"
)

type EventType string

const (
	EventExam         EventType = "exam"
	EventQuiz         EventType = "quiz"
	EventPresentation EventType = "presentation"
	EventProject      EventType = "project"
	EventHoliday      EventType = "holiday"
	EventOther        EventType = "other"
)

// ClassEvent is a dated calendar entry, optionally tied to a class and
// optionally carrying a reminder. Time is optional; reminder scheduling
// assumes 09:00 when it is unset. ReminderLeadMin of 0 means "use the
// default" (30 minutes).
type ClassEvent struct {
	ID              string    `json:"id" validate:"required"`
	ClassID         string    `json:"class_id,omitempty"`
	Title           string    `json:"title" validate:"required"`
	Description     string    `json:"description,omitempty"`
	Date            string    `json:"date" validate:"required,datefmt"`
	Time            string    `json:"time,omitempty"`
	Type            EventType `json:"type" validate:"required,oneof=exam quiz presentation project holiday other"`
	ReminderEnabled bool      `json:"reminder_enabled"`
	ReminderLeadMin int       `json:"reminder_lead_min,omitempty" validate:"min=0"`
}

func (e *ClassEvent) Validate() error {
	if err := validation.Struct(e); err != nil {
		return err
	}
	if e.Time != "" && !validation.IsTime(e.Time) {
		return fmt.Errorf("invalid time format (expected HH:MM): %s", e.Time)
	}
	return nil
}

// EventPatch is a partial update; nil fields are left untouched.
type EventPatch struct {
	Title           *string
	Description     *string
	Date            *string
	Time            *string
	Type            *EventType
	ReminderEnabled *bool
	ReminderLeadMin *int
}

// Apply copies the set fields of the patch onto the event.
func (p EventPatch) Apply(e *ClassEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.ReminderEnabled != nil {
		e.ReminderEnabled = *p.ReminderEnabled
	}
	if p.ReminderLeadMin != nil {
		e.ReminderLeadMin = *p.ReminderLeadMin
	}
}
