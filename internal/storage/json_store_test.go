package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/classtrack/classtrack/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "classtrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func addSubjectAndClass(t *testing.T, store Provider) (models.Subject, models.ClassSchedule) {
	t.Helper()
	subject := models.Subject{ID: "sub-1", Name: "Algorithms", Code: "CS301", Instructor: "Dr. Chen", Color: "#FF6B6B"}
	if err := store.AddSubject(subject); err != nil {
		t.Fatalf("AddSubject failed: %v", err)
	}
	class := subject.Schedule("cls-1", models.Monday, models.TimeSlot{StartTime: "09:00", EndTime: "10:30"})
	if err := store.AddClass(class); err != nil {
		t.Fatalf("AddClass failed: %v", err)
	}
	return subject, class
}

func TestJSONStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classtrack.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Error("expected second Init to fail on existing file")
	}
}

func TestJSONStore_LoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail for missing file")
	}
}

func TestJSONStore_PersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classtrack.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	subject, _ := addSubjectAndClass(t, store)

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reloaded.GetSubject(subject.ID)
	if err != nil {
		t.Fatalf("GetSubject after reload failed: %v", err)
	}
	if got.Name != subject.Name {
		t.Errorf("expected %q, got %q", subject.Name, got.Name)
	}
}

func TestJSONStore_MarkAttendanceUpsertsByClassAndDate(t *testing.T) {
	store := newTestStore(t)
	_, class := addSubjectAndClass(t, store)

	first, err := store.MarkAttendance("att-1", class.ID, "2026-03-02", models.StatusAbsent, "")
	if err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	// Same class and date: the record is overwritten in place, keeping its
	// id, and the new id is discarded.
	second, err := store.MarkAttendance("att-2", class.ID, "2026-03-02", models.StatusPresent, "made it after all")
	if err != nil {
		t.Fatalf("second MarkAttendance failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert should keep the original id %s, got %s", first.ID, second.ID)
	}
	if second.Status != models.StatusPresent || second.Note != "made it after all" {
		t.Errorf("upsert should take the new status and note, got %+v", second)
	}

	records, err := store.GetAllAttendance()
	if err != nil {
		t.Fatalf("GetAllAttendance failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after upsert, got %d", len(records))
	}

	// Different date: a second record appears.
	if _, err := store.MarkAttendance("att-3", class.ID, "2026-03-09", models.StatusLate, ""); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}
	records, _ = store.GetAllAttendance()
	if len(records) != 2 {
		t.Errorf("expected 2 records for distinct dates, got %d", len(records))
	}
}

func TestJSONStore_UpdateAttendanceByID(t *testing.T) {
	store := newTestStore(t)
	_, class := addSubjectAndClass(t, store)

	record, err := store.MarkAttendance("att-1", class.ID, "2026-03-02", models.StatusAbsent, "")
	if err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}

	if err := store.UpdateAttendance(record.ID, models.StatusExcused, "doctor's note"); err != nil {
		t.Fatalf("UpdateAttendance failed: %v", err)
	}

	records, _ := store.GetAllAttendance()
	if records[0].Status != models.StatusExcused || records[0].Note != "doctor's note" {
		t.Errorf("update not applied: %+v", records[0])
	}

	if err := store.UpdateAttendance("nope", models.StatusPresent, ""); err == nil {
		t.Error("expected error for unknown record id")
	}
}

func TestJSONStore_DeleteSubjectRemovesOnlySubjectAndClasses(t *testing.T) {
	store := newTestStore(t)
	subject, class := addSubjectAndClass(t, store)

	if _, err := store.MarkAttendance("att-1", class.ID, "2026-03-02", models.StatusPresent, ""); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}
	assignment := models.Assignment{
		ID: "asn-1", ClassID: class.ID, Title: "Problem set 3",
		DueDate: "2026-03-10", Status: models.AssignmentPending, Priority: models.PriorityMedium,
	}
	if err := store.AddAssignment(assignment); err != nil {
		t.Fatalf("AddAssignment failed: %v", err)
	}

	if err := store.DeleteSubject(subject.ID); err != nil {
		t.Fatalf("DeleteSubject failed: %v", err)
	}

	if _, err := store.GetClass(class.ID); err == nil {
		t.Error("expected class to be deleted with its subject")
	}

	// Attendance and assignments are left in place; the stats layer
	// tolerates records pointing at deleted classes.
	records, _ := store.GetAllAttendance()
	if len(records) != 1 {
		t.Errorf("expected attendance to survive subject deletion, got %d records", len(records))
	}
	assignments, _ := store.GetAllAssignments()
	if len(assignments) != 1 {
		t.Errorf("expected assignments to survive subject deletion, got %d", len(assignments))
	}
}

func TestJSONStore_DeleteClassCascades(t *testing.T) {
	store := newTestStore(t)
	_, class := addSubjectAndClass(t, store)

	if _, err := store.MarkAttendance("att-1", class.ID, "2026-03-02", models.StatusPresent, ""); err != nil {
		t.Fatalf("MarkAttendance failed: %v", err)
	}
	assignment := models.Assignment{
		ID: "asn-1", ClassID: class.ID, Title: "Problem set 3",
		DueDate: "2026-03-10", Status: models.AssignmentPending, Priority: models.PriorityMedium,
	}
	if err := store.AddAssignment(assignment); err != nil {
		t.Fatalf("AddAssignment failed: %v", err)
	}

	if err := store.DeleteClass(class.ID); err != nil {
		t.Fatalf("DeleteClass failed: %v", err)
	}

	records, _ := store.GetAllAttendance()
	if len(records) != 0 {
		t.Errorf("expected attendance cascade, got %d records", len(records))
	}
	assignments, _ := store.GetAllAssignments()
	if len(assignments) != 0 {
		t.Errorf("expected assignment cascade, got %d", len(assignments))
	}
}

func TestJSONStore_UpdateSubjectSyncsClassCopies(t *testing.T) {
	store := newTestStore(t)
	subject, class := addSubjectAndClass(t, store)

	newName := "Advanced Algorithms"
	newColor := "#4ECDC4"
	patch := models.SubjectPatch{Name: &newName, Color: &newColor}
	if err := store.UpdateSubjectAndClasses(subject.ID, patch); err != nil {
		t.Fatalf("UpdateSubjectAndClasses failed: %v", err)
	}

	got, err := store.GetClass(class.ID)
	if err != nil {
		t.Fatalf("GetClass failed: %v", err)
	}
	if got.SubjectName != newName {
		t.Errorf("class subject name not synced: %s", got.SubjectName)
	}
	if got.Color != newColor {
		t.Errorf("class color not synced: %s", got.Color)
	}
}

func TestJSONStore_GetAllClassesSortedMondayFirst(t *testing.T) {
	store := newTestStore(t)
	subject := models.Subject{ID: "sub-1", Name: "Algorithms", Color: "#FF6B6B"}
	if err := store.AddSubject(subject); err != nil {
		t.Fatalf("AddSubject failed: %v", err)
	}

	for _, c := range []models.ClassSchedule{
		subject.Schedule("cls-fri", models.Friday, models.TimeSlot{StartTime: "09:00", EndTime: "10:00"}),
		subject.Schedule("cls-mon-late", models.Monday, models.TimeSlot{StartTime: "14:00", EndTime: "15:00"}),
		subject.Schedule("cls-mon", models.Monday, models.TimeSlot{StartTime: "09:00", EndTime: "10:00"}),
		subject.Schedule("cls-sun", models.Sunday, models.TimeSlot{StartTime: "08:00", EndTime: "09:00"}),
	} {
		if err := store.AddClass(c); err != nil {
			t.Fatalf("AddClass failed: %v", err)
		}
	}

	classes, err := store.GetAllClasses()
	if err != nil {
		t.Fatalf("GetAllClasses failed: %v", err)
	}
	want := []string{"cls-mon", "cls-mon-late", "cls-fri", "cls-sun"}
	for i, id := range want {
		if classes[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, classes[i].ID)
		}
	}
}

func TestJSONStore_ResetApp(t *testing.T) {
	store := newTestStore(t)
	addSubjectAndClass(t, store)
	if err := store.SetSemesterDates("2026-01-12", "2026-05-22"); err != nil {
		t.Fatalf("SetSemesterDates failed: %v", err)
	}
	if err := store.CompleteSetup(); err != nil {
		t.Fatalf("CompleteSetup failed: %v", err)
	}

	if err := store.ResetApp(); err != nil {
		t.Fatalf("ResetApp failed: %v", err)
	}

	subjects, _ := store.GetAllSubjects()
	if len(subjects) != 0 {
		t.Errorf("expected no subjects after reset, got %d", len(subjects))
	}
	done, _ := store.IsSetupComplete()
	if done {
		t.Error("expected setup flag cleared after reset")
	}
	start, end, _ := store.Semester()
	if start != "" || end != "" {
		t.Errorf("expected semester dates cleared, got %s-%s", start, end)
	}
}

func TestJSONStore_FilePermissions(t *testing.T) {
	store := newTestStore(t)
	info, err := os.Stat(store.GetConfigPath())
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %o", info.Mode().Perm())
	}
}
