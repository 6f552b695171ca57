package cli

import (
	"testing"

	"github.com/classtrack/classtrack/internal/models"
)

func TestDoctorCmd_HealthyStore(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("doctor should pass on a fresh store (warnings are not failures): %v", err)
	}
}

func TestDoctorCmd_MissingStore(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Error("doctor should fail when the store cannot be loaded")
	}
}

func TestDoctorCmd_BrokenSubjectReference(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	class := models.ClassSchedule{
		ID: "cls-1", SubjectID: "missing", SubjectName: "Ghost",
		Day: models.Monday, TimeSlot: models.TimeSlot{StartTime: "09:00", EndTime: "10:00"},
		Color: "#6366f1",
	}
	if err := ctx.Store.AddClass(class); err != nil {
		t.Fatalf("add class failed: %v", err)
	}

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Error("doctor should fail when a class references a missing subject")
	}
}
