package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"github.com/classtrack/classtrack/internal/models"
)

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// SQLiteStore is the relational backend. The attendance table carries a
// UNIQUE(class_id, date) constraint, so the one-record-per-pair invariant
// is enforced by the schema rather than by scanning.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const schema = `
CREATE TABLE IF NOT EXISTS subjects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	code TEXT NOT NULL DEFAULT '',
	instructor TEXT NOT NULL DEFAULT '',
	room TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS classes (
	id TEXT PRIMARY KEY,
	subject_id TEXT NOT NULL,
	subject_name TEXT NOT NULL,
	subject_code TEXT NOT NULL DEFAULT '',
	instructor TEXT NOT NULL DEFAULT '',
	room TEXT NOT NULL DEFAULT '',
	day TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	color TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attendance (
	id TEXT PRIMARY KEY,
	class_id TEXT NOT NULL,
	date TEXT NOT NULL,
	status TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	UNIQUE(class_id, date)
);

CREATE TABLE IF NOT EXISTS assignments (
	id TEXT PRIMARY KEY,
	class_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due_date TEXT NOT NULL,
	status TEXT NOT NULL,
	priority TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	class_id TEXT NOT NULL DEFAULT '',
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	time TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL,
	reminder_enabled INTEGER NOT NULL DEFAULT 0,
	reminder_lead_min INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS app_state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	semester_start TEXT NOT NULL DEFAULT '',
	semester_end TEXT NOT NULL DEFAULT '',
	setup_complete INTEGER NOT NULL DEFAULT 0,
	timezone TEXT NOT NULL DEFAULT 'Local',
	notifications_enabled INTEGER NOT NULL DEFAULT 1,
	reminder_lead_min INTEGER NOT NULL DEFAULT 30
);

INSERT OR IGNORE INTO app_state (id) VALUES (1);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'classtrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Additive schema application keeps older databases usable.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	var settings models.Settings
	row := s.db.QueryRow(`SELECT timezone, notifications_enabled, reminder_lead_min FROM app_state WHERE id = 1`)
	if err := row.Scan(&settings.Timezone, &settings.NotificationsEnabled, &settings.ReminderLeadMin); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(
		`UPDATE app_state SET timezone = ?, notifications_enabled = ?, reminder_lead_min = ? WHERE id = 1`,
		settings.Timezone, settings.NotificationsEnabled, settings.ReminderLeadMin,
	)
	return err
}

func (s *SQLiteStore) AddSubject(subject models.Subject) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO subjects (id, name, code, instructor, room, color) VALUES (?, ?, ?, ?, ?, ?)`,
		subject.ID, subject.Name, subject.Code, subject.Instructor, subject.Room, subject.Color,
	)
	return err
}

func (s *SQLiteStore) GetSubject(id string) (models.Subject, error) {
	row := s.db.QueryRow(`SELECT id, name, code, instructor, room, color FROM subjects WHERE id = ?`, id)
	var subject models.Subject
	err := row.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.Instructor, &subject.Room, &subject.Color)
	if err == sql.ErrNoRows {
		return models.Subject{}, fmt.Errorf("subject not found: %s", id)
	}
	return subject, err
}

func (s *SQLiteStore) GetAllSubjects() ([]models.Subject, error) {
	rows, err := s.db.Query(`SELECT id, name, code, instructor, room, color FROM subjects ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Code, &subject.Instructor, &subject.Room, &subject.Color); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

func (s *SQLiteStore) UpdateSubjectAndClasses(id string, patch models.SubjectPatch) error {
	subject, err := s.GetSubject(id)
	if err != nil {
		return err
	}
	patch.Apply(&subject)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`UPDATE subjects SET name = ?, code = ?, instructor = ?, room = ?, color = ? WHERE id = ?`,
		subject.Name, subject.Code, subject.Instructor, subject.Room, subject.Color, id,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(
		`UPDATE classes SET subject_name = ?, subject_code = ?, instructor = ?, room = ?, color = ? WHERE subject_id = ?`,
		subject.Name, subject.Code, subject.Instructor, subject.Room, subject.Color, id,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) DeleteSubject(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM subjects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("subject not found: %s", id)
	}

	if _, err := tx.Exec(`DELETE FROM classes WHERE subject_id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddClass(class models.ClassSchedule) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO classes (id, subject_id, subject_name, subject_code, instructor, room, day, start_time, end_time, color)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		class.ID, class.SubjectID, class.SubjectName, class.SubjectCode, class.Instructor,
		class.Room, class.Day, class.TimeSlot.StartTime, class.TimeSlot.EndTime, class.Color,
	)
	return err
}

func scanClass(scan func(...any) error) (models.ClassSchedule, error) {
	var class models.ClassSchedule
	err := scan(
		&class.ID, &class.SubjectID, &class.SubjectName, &class.SubjectCode, &class.Instructor,
		&class.Room, &class.Day, &class.TimeSlot.StartTime, &class.TimeSlot.EndTime, &class.Color,
	)
	return class, err
}

const classColumns = `id, subject_id, subject_name, subject_code, instructor, room, day, start_time, end_time, color`

func (s *SQLiteStore) GetClass(id string) (models.ClassSchedule, error) {
	row := s.db.QueryRow(`SELECT `+classColumns+` FROM classes WHERE id = ?`, id)
	class, err := scanClass(row.Scan)
	if err == sql.ErrNoRows {
		return models.ClassSchedule{}, fmt.Errorf("class not found: %s", id)
	}
	return class, err
}

func (s *SQLiteStore) GetAllClasses() ([]models.ClassSchedule, error) {
	rows, err := s.db.Query(`SELECT ` + classColumns + ` FROM classes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.ClassSchedule
	for rows.Next() {
		class, err := scanClass(rows.Scan)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// SQL ORDER BY would sort weekday names lexicographically; rank them
	// Monday-first like the JSON store does.
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Day != classes[j].Day {
			return dayOrder(classes[i].Day) < dayOrder(classes[j].Day)
		}
		return classes[i].TimeSlot.StartTime < classes[j].TimeSlot.StartTime
	})
	return classes, nil
}

func (s *SQLiteStore) UpdateClass(id string, patch models.ClassPatch) error {
	class, err := s.GetClass(id)
	if err != nil {
		return err
	}
	patch.Apply(&class)

	_, err = s.db.Exec(
		`UPDATE classes SET day = ?, start_time = ?, end_time = ?, room = ? WHERE id = ?`,
		class.Day, class.TimeSlot.StartTime, class.TimeSlot.EndTime, class.Room, id,
	)
	return err
}

func (s *SQLiteStore) DeleteClass(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM classes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("class not found: %s", id)
	}

	if _, err := tx.Exec(`DELETE FROM attendance WHERE class_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM assignments WHERE class_id = ?`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) MarkAttendance(id, classID, date string, status models.AttendanceStatus, note string) (models.AttendanceRecord, error) {
	// The UNIQUE(class_id, date) constraint turns this into an in-place
	// overwrite that preserves the original row id.
	_, err := s.db.Exec(
		`INSERT INTO attendance (id, class_id, date, status, note) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(class_id, date) DO UPDATE SET status = excluded.status, note = excluded.note`,
		id, classID, date, status, note,
	)
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	row := s.db.QueryRow(
		`SELECT id, class_id, date, status, note FROM attendance WHERE class_id = ? AND date = ?`,
		classID, date,
	)
	var record models.AttendanceRecord
	err = row.Scan(&record.ID, &record.ClassID, &record.Date, &record.Status, &record.Note)
	return record, err
}

func (s *SQLiteStore) UpdateAttendance(id string, status models.AttendanceStatus, note string) error {
	res, err := s.db.Exec(`UPDATE attendance SET status = ?, note = ? WHERE id = ?`, status, note, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("attendance record not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) GetAllAttendance() ([]models.AttendanceRecord, error) {
	rows, err := s.db.Query(`SELECT id, class_id, date, status, note FROM attendance ORDER BY date, class_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(&record.ID, &record.ClassID, &record.Date, &record.Status, &record.Note); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) AddAssignment(assignment models.Assignment) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO assignments (id, class_id, title, description, due_date, status, priority, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		assignment.ID, assignment.ClassID, assignment.Title, assignment.Description,
		assignment.DueDate, assignment.Status, assignment.Priority, assignment.CreatedAt.Format(time.RFC3339),
	)
	return err
}

const assignmentColumns = `id, class_id, title, description, due_date, status, priority, created_at`

func scanAssignment(scan func(...any) error) (models.Assignment, error) {
	var a models.Assignment
	var createdAt string
	err := scan(&a.ID, &a.ClassID, &a.Title, &a.Description, &a.DueDate, &a.Status, &a.Priority, &createdAt)
	if err != nil {
		return models.Assignment{}, err
	}
	a.CreatedAt, _ = parseRFC3339(createdAt)
	return a, nil
}

func (s *SQLiteStore) GetAssignment(id string) (models.Assignment, error) {
	row := s.db.QueryRow(`SELECT `+assignmentColumns+` FROM assignments WHERE id = ?`, id)
	assignment, err := scanAssignment(row.Scan)
	if err == sql.ErrNoRows {
		return models.Assignment{}, fmt.Errorf("assignment not found: %s", id)
	}
	return assignment, err
}

func (s *SQLiteStore) GetAllAssignments() ([]models.Assignment, error) {
	rows, err := s.db.Query(`SELECT ` + assignmentColumns + ` FROM assignments ORDER BY due_date, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []models.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows.Scan)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, rows.Err()
}

func (s *SQLiteStore) UpdateAssignment(id string, patch models.AssignmentPatch) error {
	assignment, err := s.GetAssignment(id)
	if err != nil {
		return err
	}
	patch.Apply(&assignment)

	_, err = s.db.Exec(
		`UPDATE assignments SET title = ?, description = ?, due_date = ?, status = ?, priority = ? WHERE id = ?`,
		assignment.Title, assignment.Description, assignment.DueDate, assignment.Status, assignment.Priority, id,
	)
	return err
}

func (s *SQLiteStore) SetAssignmentStatus(id string, status models.AssignmentStatus) error {
	return s.UpdateAssignment(id, models.AssignmentPatch{Status: &status})
}

func (s *SQLiteStore) DeleteAssignment(id string) error {
	res, err := s.db.Exec(`DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("assignment not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) AddEvent(event models.ClassEvent) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO events (id, class_id, title, description, date, time, type, reminder_enabled, reminder_lead_min)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.ClassID, event.Title, event.Description, event.Date, event.Time,
		event.Type, event.ReminderEnabled, event.ReminderLeadMin,
	)
	return err
}

const eventColumns = `id, class_id, title, description, date, time, type, reminder_enabled, reminder_lead_min`

func scanEvent(scan func(...any) error) (models.ClassEvent, error) {
	var e models.ClassEvent
	err := scan(&e.ID, &e.ClassID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Type, &e.ReminderEnabled, &e.ReminderLeadMin)
	return e, err
}

func (s *SQLiteStore) GetEvent(id string) (models.ClassEvent, error) {
	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	event, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return models.ClassEvent{}, fmt.Errorf("event not found: %s", id)
	}
	return event, err
}

func (s *SQLiteStore) GetAllEvents() ([]models.ClassEvent, error) {
	rows, err := s.db.Query(`SELECT ` + eventColumns + ` FROM events ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.ClassEvent
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) UpdateEvent(id string, patch models.EventPatch) error {
	event, err := s.GetEvent(id)
	if err != nil {
		return err
	}
	patch.Apply(&event)

	_, err = s.db.Exec(
		`UPDATE events SET title = ?, description = ?, date = ?, time = ?, type = ?, reminder_enabled = ?, reminder_lead_min = ? WHERE id = ?`,
		event.Title, event.Description, event.Date, event.Time, event.Type, event.ReminderEnabled, event.ReminderLeadMin, id,
	)
	return err
}

func (s *SQLiteStore) DeleteEvent(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) SetSemesterDates(start, end string) error {
	_, err := s.db.Exec(`UPDATE app_state SET semester_start = ?, semester_end = ? WHERE id = 1`, start, end)
	return err
}

func (s *SQLiteStore) Semester() (string, string, error) {
	var start, end string
	row := s.db.QueryRow(`SELECT semester_start, semester_end FROM app_state WHERE id = 1`)
	err := row.Scan(&start, &end)
	return start, end, err
}

func (s *SQLiteStore) IsSetupComplete() (bool, error) {
	var complete bool
	row := s.db.QueryRow(`SELECT setup_complete FROM app_state WHERE id = 1`)
	err := row.Scan(&complete)
	return complete, err
}

func (s *SQLiteStore) CompleteSetup() error {
	_, err := s.db.Exec(`UPDATE app_state SET setup_complete = 1 WHERE id = 1`)
	return err
}

func (s *SQLiteStore) ResetApp() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"subjects", "classes", "attendance", "assignments", "events"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(
		`UPDATE app_state SET semester_start = '', semester_end = '', setup_complete = 0,
		 timezone = 'Local', notifications_enabled = 1, reminder_lead_min = 30 WHERE id = 1`,
	); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
