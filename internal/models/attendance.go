package models

import "github.com/classtrack/classtrack/internal/validation"

// AttendanceStatus is the per-session outcome. "excused" absences count
// toward the session total but not toward the attended percentage.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
)

// AttendanceStatuses lists the valid statuses in display order.
var AttendanceStatuses = []AttendanceStatus{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

// ParseAttendanceStatus returns the status for s, or false if unknown.
func ParseAttendanceStatus(s string) (AttendanceStatus, bool) {
	for _, st := range AttendanceStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// AttendanceRecord records one class session outcome. At most one record
// exists per (ClassID, Date) pair; marking the same pair again overwrites
// the existing record in place, keeping its ID.
type AttendanceRecord struct {
	ID      string           `json:"id" validate:"required"`
	ClassID string           `json:"class_id" validate:"required"`
	Date    string           `json:"date" validate:"required,datefmt"`
	Status  AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
	Note    string           `json:"note,omitempty"`
}

func (a *AttendanceRecord) Validate() error {
	return validation.Struct(a)
}

// Key is the logical identity of the record: one per class per date.
func (a AttendanceRecord) Key() string {
	return AttendanceKey(a.ClassID, a.Date)
}

// AttendanceKey builds the composite (classID, date) upsert key.
func AttendanceKey(classID, date string) string {
	return classID + "|" + date
}
