package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/classtrack/classtrack/internal/models"
)

// State is the single persisted blob: every collection plus the
// semester/setup flags. Attendance is keyed by the composite
// (classID, date) key so the one-record-per-pair invariant is structural
// and the mark-attendance upsert is O(1).
type State struct {
	Version       int                                `json:"version"`
	Settings      models.Settings                    `json:"settings"`
	Subjects      map[string]models.Subject          `json:"subjects"`
	Classes       map[string]models.ClassSchedule    `json:"classes"`
	Attendance    map[string]models.AttendanceRecord `json:"attendance"`
	Assignments   map[string]models.Assignment       `json:"assignments"`
	Events        map[string]models.ClassEvent       `json:"events"`
	SemesterStart string                             `json:"semester_start,omitempty"`
	SemesterEnd   string                             `json:"semester_end,omitempty"`
	SetupComplete bool                               `json:"setup_complete"`
}

func newState() *State {
	return &State{
		Version:     1,
		Settings:    models.DefaultSettings(),
		Subjects:    make(map[string]models.Subject),
		Classes:     make(map[string]models.ClassSchedule),
		Attendance:  make(map[string]models.AttendanceRecord),
		Assignments: make(map[string]models.Assignment),
		Events:      make(map[string]models.ClassEvent),
	}
}

// JSONStore persists the whole State to one file, rewritten after every
// mutation (write-through).
type JSONStore struct {
	path  string
	state *State
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.state = newState()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'classtrack init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.state = &State{}
	if err := json.Unmarshal(data, s.state); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.state.Subjects == nil {
		s.state.Subjects = make(map[string]models.Subject)
	}
	if s.state.Classes == nil {
		s.state.Classes = make(map[string]models.ClassSchedule)
	}
	if s.state.Attendance == nil {
		s.state.Attendance = make(map[string]models.AttendanceRecord)
	}
	if s.state.Assignments == nil {
		s.state.Assignments = make(map[string]models.Assignment)
	}
	if s.state.Events == nil {
		s.state.Events = make(map[string]models.ClassEvent)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.state.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Settings = settings
	return s.save()
}

func (s *JSONStore) AddSubject(subject models.Subject) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Subjects[subject.ID] = subject
	return s.save()
}

func (s *JSONStore) GetSubject(id string) (models.Subject, error) {
	if err := s.loaded(); err != nil {
		return models.Subject{}, err
	}
	subject, ok := s.state.Subjects[id]
	if !ok {
		return models.Subject{}, fmt.Errorf("subject not found: %s", id)
	}
	return subject, nil
}

func (s *JSONStore) GetAllSubjects() ([]models.Subject, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	subjects := make([]models.Subject, 0, len(s.state.Subjects))
	for _, subject := range s.state.Subjects {
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool { return subjects[i].Name < subjects[j].Name })
	return subjects, nil
}

func (s *JSONStore) UpdateSubjectAndClasses(id string, patch models.SubjectPatch) error {
	if err := s.loaded(); err != nil {
		return err
	}
	subject, ok := s.state.Subjects[id]
	if !ok {
		return fmt.Errorf("subject not found: %s", id)
	}

	patch.Apply(&subject)
	s.state.Subjects[id] = subject

	// Sync the denormalized copies on every class of this subject.
	for cid, class := range s.state.Classes {
		if class.SubjectID != id {
			continue
		}
		class.SubjectName = subject.Name
		class.SubjectCode = subject.Code
		class.Instructor = subject.Instructor
		class.Room = subject.Room
		class.Color = subject.Color
		s.state.Classes[cid] = class
	}

	return s.save()
}

func (s *JSONStore) DeleteSubject(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Subjects[id]; !ok {
		return fmt.Errorf("subject not found: %s", id)
	}
	delete(s.state.Subjects, id)
	for cid, class := range s.state.Classes {
		if class.SubjectID == id {
			delete(s.state.Classes, cid)
		}
	}
	return s.save()
}

func (s *JSONStore) AddClass(class models.ClassSchedule) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Classes[class.ID] = class
	return s.save()
}

func (s *JSONStore) GetClass(id string) (models.ClassSchedule, error) {
	if err := s.loaded(); err != nil {
		return models.ClassSchedule{}, err
	}
	class, ok := s.state.Classes[id]
	if !ok {
		return models.ClassSchedule{}, fmt.Errorf("class not found: %s", id)
	}
	return class, nil
}

func (s *JSONStore) GetAllClasses() ([]models.ClassSchedule, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	classes := make([]models.ClassSchedule, 0, len(s.state.Classes))
	for _, class := range s.state.Classes {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Day != classes[j].Day {
			return dayOrder(classes[i].Day) < dayOrder(classes[j].Day)
		}
		return classes[i].TimeSlot.StartTime < classes[j].TimeSlot.StartTime
	})
	return classes, nil
}

// dayOrder ranks weekdays Monday-first for timetable ordering.
func dayOrder(d models.DayOfWeek) int {
	for i, day := range models.DaysOfWeek {
		if day == d {
			return i
		}
	}
	return len(models.DaysOfWeek)
}

func (s *JSONStore) UpdateClass(id string, patch models.ClassPatch) error {
	if err := s.loaded(); err != nil {
		return err
	}
	class, ok := s.state.Classes[id]
	if !ok {
		return fmt.Errorf("class not found: %s", id)
	}
	patch.Apply(&class)
	s.state.Classes[id] = class
	return s.save()
}

func (s *JSONStore) DeleteClass(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Classes[id]; !ok {
		return fmt.Errorf("class not found: %s", id)
	}
	delete(s.state.Classes, id)
	for key, record := range s.state.Attendance {
		if record.ClassID == id {
			delete(s.state.Attendance, key)
		}
	}
	for aid, assignment := range s.state.Assignments {
		if assignment.ClassID == id {
			delete(s.state.Assignments, aid)
		}
	}
	return s.save()
}

func (s *JSONStore) MarkAttendance(id, classID, date string, status models.AttendanceStatus, note string) (models.AttendanceRecord, error) {
	if err := s.loaded(); err != nil {
		return models.AttendanceRecord{}, err
	}

	key := models.AttendanceKey(classID, date)
	record, ok := s.state.Attendance[key]
	if ok {
		// Upsert: keep the existing id, overwrite status and note.
		record.Status = status
		record.Note = note
	} else {
		record = models.AttendanceRecord{
			ID:      id,
			ClassID: classID,
			Date:    date,
			Status:  status,
			Note:    note,
		}
	}
	s.state.Attendance[key] = record

	if err := s.save(); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}

func (s *JSONStore) UpdateAttendance(id string, status models.AttendanceStatus, note string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for key, record := range s.state.Attendance {
		if record.ID == id {
			record.Status = status
			record.Note = note
			s.state.Attendance[key] = record
			return s.save()
		}
	}
	return fmt.Errorf("attendance record not found: %s", id)
}

func (s *JSONStore) GetAllAttendance() ([]models.AttendanceRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	records := make([]models.AttendanceRecord, 0, len(s.state.Attendance))
	for _, record := range s.state.Attendance {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].ClassID < records[j].ClassID
	})
	return records, nil
}

func (s *JSONStore) AddAssignment(assignment models.Assignment) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Assignments[assignment.ID] = assignment
	return s.save()
}

func (s *JSONStore) GetAssignment(id string) (models.Assignment, error) {
	if err := s.loaded(); err != nil {
		return models.Assignment{}, err
	}
	assignment, ok := s.state.Assignments[id]
	if !ok {
		return models.Assignment{}, fmt.Errorf("assignment not found: %s", id)
	}
	return assignment, nil
}

func (s *JSONStore) GetAllAssignments() ([]models.Assignment, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	assignments := make([]models.Assignment, 0, len(s.state.Assignments))
	for _, assignment := range s.state.Assignments {
		assignments = append(assignments, assignment)
	}
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].DueDate != assignments[j].DueDate {
			return assignments[i].DueDate < assignments[j].DueDate
		}
		return assignments[i].Title < assignments[j].Title
	})
	return assignments, nil
}

func (s *JSONStore) UpdateAssignment(id string, patch models.AssignmentPatch) error {
	if err := s.loaded(); err != nil {
		return err
	}
	assignment, ok := s.state.Assignments[id]
	if !ok {
		return fmt.Errorf("assignment not found: %s", id)
	}
	patch.Apply(&assignment)
	s.state.Assignments[id] = assignment
	return s.save()
}

func (s *JSONStore) SetAssignmentStatus(id string, status models.AssignmentStatus) error {
	return s.UpdateAssignment(id, models.AssignmentPatch{Status: &status})
}

func (s *JSONStore) DeleteAssignment(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Assignments[id]; !ok {
		return fmt.Errorf("assignment not found: %s", id)
	}
	delete(s.state.Assignments, id)
	return s.save()
}

func (s *JSONStore) AddEvent(event models.ClassEvent) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Events[event.ID] = event
	return s.save()
}

func (s *JSONStore) GetEvent(id string) (models.ClassEvent, error) {
	if err := s.loaded(); err != nil {
		return models.ClassEvent{}, err
	}
	event, ok := s.state.Events[id]
	if !ok {
		return models.ClassEvent{}, fmt.Errorf("event not found: %s", id)
	}
	return event, nil
}

func (s *JSONStore) GetAllEvents() ([]models.ClassEvent, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	events := make([]models.ClassEvent, 0, len(s.state.Events))
	for _, event := range s.state.Events {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	return events, nil
}

func (s *JSONStore) UpdateEvent(id string, patch models.EventPatch) error {
	if err := s.loaded(); err != nil {
		return err
	}
	event, ok := s.state.Events[id]
	if !ok {
		return fmt.Errorf("event not found: %s", id)
	}
	patch.Apply(&event)
	s.state.Events[id] = event
	return s.save()
}

func (s *JSONStore) DeleteEvent(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Events[id]; !ok {
		return fmt.Errorf("event not found: %s", id)
	}
	delete(s.state.Events, id)
	return s.save()
}

func (s *JSONStore) SetSemesterDates(start, end string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.SemesterStart = start
	s.state.SemesterEnd = end
	return s.save()
}

func (s *JSONStore) Semester() (string, string, error) {
	if err := s.loaded(); err != nil {
		return "", "", err
	}
	return s.state.SemesterStart, s.state.SemesterEnd, nil
}

func (s *JSONStore) IsSetupComplete() (bool, error) {
	if err := s.loaded(); err != nil {
		return false, err
	}
	return s.state.SetupComplete, nil
}

func (s *JSONStore) CompleteSetup() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.SetupComplete = true
	return s.save()
}

func (s *JSONStore) ResetApp() error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state = newState()
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
