package models

import "github.com/classtrack/classtrack/internal/validation"

// Subject is a course definition independent of scheduling. Placing it on
// the timetable creates ClassSchedule rows that carry denormalized copies
// of its display fields.
type Subject struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Code       string `json:"code,omitempty"`
	Instructor string `json:"instructor,omitempty"`
	Room       string `json:"room,omitempty"`
	Color      string `json:"color" validate:"required,colortag"`
}

func (s *Subject) Validate() error {
	return validation.Struct(s)
}

// SubjectPatch is a partial update of a subject's display fields. Nil
// fields are left untouched. Applying a patch must go through the store's
// UpdateSubjectAndClasses so the denormalized ClassSchedule copies stay in
// sync.
type SubjectPatch struct {
	Name       *string
	Code       *string
	Instructor *string
	Room       *string
	Color      *string
}

// Apply copies the set fields of the patch onto the subject.
func (p SubjectPatch) Apply(s *Subject) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Code != nil {
		s.Code = *p.Code
	}
	if p.Instructor != nil {
		s.Instructor = *p.Instructor
	}
	if p.Room != nil {
		s.Room = *p.Room
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
}
