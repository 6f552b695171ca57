package models

import (
	"time"

	"github.com/classtrack/classtrack/internal/validation"
)

type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "pending"
	AssignmentInProgress AssignmentStatus = "in-progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentOverdue    AssignmentStatus = "overdue"
)

type AssignmentPriority string

const (
	PriorityLow    AssignmentPriority = "low"
	PriorityMedium AssignmentPriority = "medium"
	PriorityHigh   AssignmentPriority = "high"
)

// Assignment is a piece of work due for a class. It is deleted explicitly
// or cascaded when its class is deleted.
type Assignment struct {
	ID          string             `json:"id" validate:"required"`
	ClassID     string             `json:"class_id" validate:"required"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description,omitempty"`
	DueDate     string             `json:"due_date" validate:"required,datefmt"`
	Status      AssignmentStatus   `json:"status" validate:"required,oneof=pending in-progress completed overdue"`
	Priority    AssignmentPriority `json:"priority" validate:"required,oneof=low medium high"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (a *Assignment) Validate() error {
	return validation.Struct(a)
}

// AssignmentPatch is a partial update; nil fields are left untouched.
type AssignmentPatch struct {
	Title       *string
	Description *string
	DueDate     *string
	Status      *AssignmentStatus
	Priority    *AssignmentPriority
}

// Apply copies the set fields of the patch onto the assignment.
func (p AssignmentPatch) Apply(a *Assignment) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.DueDate != nil {
		a.DueDate = *p.DueDate
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Priority != nil {
		a.Priority = *p.Priority
	}
}
