package cli

import (
	"context"
	"testing"
	"time"

	"github.com/classtrack/classtrack/internal/models"
)

func TestContextScheduler_DisabledBySettings(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	settings.NotificationsEnabled = false
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("save settings failed: %v", err)
	}

	s := ctx.Scheduler(context.Background())
	if s.Enabled() {
		t.Error("scheduler should be disabled when notifications are turned off")
	}
	event := models.ClassEvent{
		ID: "evt-1", Title: "Midterm", Date: "2199-03-15", Time: "14:00",
		Type: models.EventExam, ReminderEnabled: true,
	}
	if s.ScheduleEvent(context.Background(), event) {
		t.Error("disabled scheduler should not queue reminders")
	}
}

func TestContextScheduler_EnabledWithFallback(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// Default settings leave notifications on; with no tray app running
	// the console fallback still grants.
	s := ctx.Scheduler(context.Background())
	if !s.Enabled() {
		t.Error("scheduler should be enabled with default settings")
	}
}

func TestContextScheduler_UsesConfiguredLead(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := ctx.Store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := ctx.Store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}
	settings.ReminderLeadMin = 90
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatalf("save settings failed: %v", err)
	}

	s := ctx.Scheduler(context.Background())
	event := models.ClassEvent{
		ID: "evt-1", Title: "Midterm", Date: "2026-03-15", Time: "14:00",
		Type: models.EventExam, ReminderEnabled: true,
	}
	at, err := s.FireTime(event)
	if err != nil {
		t.Fatalf("FireTime failed: %v", err)
	}
	want := time.Date(2026, 3, 15, 12, 30, 0, 0, time.Local)
	if !at.Equal(want) {
		t.Errorf("expected the persisted 90 minute lead, got fire time %v", at)
	}
}
