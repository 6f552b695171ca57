package storage

import "github.com/classtrack/classtrack/internal/models"

// Provider is the persisted-store contract. Every mutation is durable
// before the call returns; readers always see the latest write. The app
// is single-threaded at the store boundary, so providers need no locking.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Subjects
	AddSubject(models.Subject) error
	GetSubject(id string) (models.Subject, error)
	GetAllSubjects() ([]models.Subject, error)
	// UpdateSubjectAndClasses applies the patch to the subject and copies
	// the display fields onto every ClassSchedule with that subject id.
	// It is the only permitted path for editing a subject's display
	// fields, so the denormalized copies can never drift.
	UpdateSubjectAndClasses(id string, patch models.SubjectPatch) error
	// DeleteSubject removes the subject and every ClassSchedule with
	// that subject id. Attendance and assignments reference classes, not
	// subjects, and are left alone here.
	DeleteSubject(id string) error

	// Classes
	AddClass(models.ClassSchedule) error
	GetClass(id string) (models.ClassSchedule, error)
	GetAllClasses() ([]models.ClassSchedule, error)
	UpdateClass(id string, patch models.ClassPatch) error
	// DeleteClass removes the class and cascades to every attendance
	// record and assignment referencing it.
	DeleteClass(id string) error

	// Attendance
	// MarkAttendance upserts by (classID, date): an existing record for
	// the pair keeps its id and gets the new status/note, otherwise a
	// fresh record is created under the given id.
	MarkAttendance(id, classID, date string, status models.AttendanceStatus, note string) (models.AttendanceRecord, error)
	UpdateAttendance(id string, status models.AttendanceStatus, note string) error
	GetAllAttendance() ([]models.AttendanceRecord, error)

	// Assignments
	AddAssignment(models.Assignment) error
	GetAssignment(id string) (models.Assignment, error)
	GetAllAssignments() ([]models.Assignment, error)
	UpdateAssignment(id string, patch models.AssignmentPatch) error
	SetAssignmentStatus(id string, status models.AssignmentStatus) error
	DeleteAssignment(id string) error

	// Events
	AddEvent(models.ClassEvent) error
	GetEvent(id string) (models.ClassEvent, error)
	GetAllEvents() ([]models.ClassEvent, error)
	UpdateEvent(id string, patch models.EventPatch) error
	DeleteEvent(id string) error

	// Setup
	SetSemesterDates(start, end string) error
	Semester() (start, end string, err error)
	IsSetupComplete() (bool, error)
	CompleteSetup() error
	// ResetApp wipes every collection and flag back to initial values.
	ResetApp() error

	// Utils
	GetConfigPath() string
}
