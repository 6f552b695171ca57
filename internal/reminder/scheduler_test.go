package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/classtrack/classtrack/internal/models"
)

// fakePlatform records scheduled notifications in memory.
type fakePlatform struct {
	permission  PermissionState
	afterPrompt PermissionState
	scheduleErr error
	pending     map[int32]Notification
}

func newFakePlatform(state PermissionState) *fakePlatform {
	return &fakePlatform{
		permission:  state,
		afterPrompt: state,
		pending:     make(map[int32]Notification),
	}
}

func (p *fakePlatform) CheckPermission(ctx context.Context) (PermissionState, error) {
	return p.permission, nil
}

func (p *fakePlatform) RequestPermission(ctx context.Context) (PermissionState, error) {
	p.permission = p.afterPrompt
	return p.permission, nil
}

func (p *fakePlatform) ScheduleAt(ctx context.Context, n Notification) error {
	if p.scheduleErr != nil {
		return p.scheduleErr
	}
	p.pending[n.ID] = n
	return nil
}

func (p *fakePlatform) Cancel(ctx context.Context, id int32) error {
	delete(p.pending, id)
	return nil
}

func (p *fakePlatform) ListPending(ctx context.Context) ([]Notification, error) {
	var list []Notification
	for _, n := range p.pending {
		list = append(list, n)
	}
	return list, nil
}

func (p *fakePlatform) OnActionPerformed(fn func(Notification)) {}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNotificationID_DeterministicAndNonNegative(t *testing.T) {
	ids := []string{"evt-1", "evt-2", "a-very-long-event-identifier-0123456789", ""}
	for _, id := range ids {
		a := NotificationID(id)
		b := NotificationID(id)
		if a != b {
			t.Errorf("NotificationID(%q) not deterministic: %d vs %d", id, a, b)
		}
		if a < 0 {
			t.Errorf("NotificationID(%q) = %d, want non-negative", id, a)
		}
	}

	if NotificationID("evt-1") == NotificationID("evt-2") {
		t.Error("distinct ids should not trivially collide")
	}
}

func TestInitialize_FallsBackWhenPrimaryDenied(t *testing.T) {
	primary := newFakePlatform(PermissionDenied)
	fallback := newFakePlatform(PermissionGranted)

	s := New(primary, fallback)
	if !s.Initialize(context.Background()) {
		t.Fatal("expected scheduler to enable via fallback")
	}
	if s.active != fallback {
		t.Error("expected fallback to be the active platform")
	}
}

func TestInitialize_DisabledWhenAllDenied(t *testing.T) {
	s := New(newFakePlatform(PermissionDenied), newFakePlatform(PermissionDenied))
	if s.Initialize(context.Background()) {
		t.Fatal("expected scheduler to stay disabled")
	}
	if s.Enabled() {
		t.Error("Enabled should report false")
	}
}

func TestInitialize_PromptsThenGrants(t *testing.T) {
	primary := newFakePlatform(PermissionPrompt)
	primary.afterPrompt = PermissionGranted

	s := New(primary, nil)
	if !s.Initialize(context.Background()) {
		t.Fatal("expected prompt flow to end granted")
	}
}

func TestFireTime_DefaultsAndLead(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s := New(newFakePlatform(PermissionGranted), nil,
		WithClock(fixedClock(now)), WithLocation(time.UTC))

	// Explicit time 14:00 with 60 minute lead fires at 13:00.
	event := models.ClassEvent{
		ID: "evt-1", Title: "Midterm", Date: "2026-03-15", Time: "14:00",
		Type: models.EventExam, ReminderEnabled: true, ReminderLeadMin: 60,
	}
	at, err := s.FireTime(event)
	if err != nil {
		t.Fatalf("FireTime failed: %v", err)
	}
	want := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("expected %v, got %v", want, at)
	}

	// No time falls back to 09:00; no lead falls back to 30 minutes.
	event.Time = ""
	event.ReminderLeadMin = 0
	at, err = s.FireTime(event)
	if err != nil {
		t.Fatalf("FireTime failed: %v", err)
	}
	want = time.Date(2026, 3, 15, 8, 30, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("expected default 08:30 fire time, got %v", at)
	}
}

func TestScheduleEvent_SkipsPastFireTimes(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	primary := newFakePlatform(PermissionGranted)
	s := New(primary, nil, WithClock(fixedClock(now)), WithLocation(time.UTC))
	s.Initialize(context.Background())

	past := models.ClassEvent{
		ID: "evt-past", Title: "Quiz", Date: "2026-03-09", Time: "10:00",
		Type: models.EventQuiz, ReminderEnabled: true,
	}
	if s.ScheduleEvent(context.Background(), past) {
		t.Error("past event should not be scheduled")
	}
	if len(primary.pending) != 0 {
		t.Errorf("expected no pending notifications, got %d", len(primary.pending))
	}

	future := past
	future.ID = "evt-future"
	future.Date = "2026-03-20"
	if !s.ScheduleEvent(context.Background(), future) {
		t.Error("future event should be scheduled")
	}
	if len(primary.pending) != 1 {
		t.Errorf("expected 1 pending notification, got %d", len(primary.pending))
	}
}

func TestScheduleEvent_SkipsReminderDisabled(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	primary := newFakePlatform(PermissionGranted)
	s := New(primary, nil, WithClock(fixedClock(now)), WithLocation(time.UTC))
	s.Initialize(context.Background())

	event := models.ClassEvent{
		ID: "evt-1", Title: "Holiday", Date: "2026-03-20",
		Type: models.EventHoliday, ReminderEnabled: false,
	}
	if s.ScheduleEvent(context.Background(), event) {
		t.Error("reminder-disabled event should not be scheduled")
	}
}

func TestScheduleEvent_RetriesOnFallback(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	primary := newFakePlatform(PermissionGranted)
	primary.scheduleErr = errors.New("tray unreachable")
	fallback := newFakePlatform(PermissionGranted)

	s := New(primary, fallback, WithClock(fixedClock(now)), WithLocation(time.UTC))
	s.Initialize(context.Background())

	event := models.ClassEvent{
		ID: "evt-1", Title: "Presentation", Date: "2026-03-20", Time: "10:00",
		Type: models.EventPresentation, ReminderEnabled: true,
	}
	if !s.ScheduleEvent(context.Background(), event) {
		t.Fatal("expected fallback scheduling to succeed")
	}
	if len(fallback.pending) != 1 {
		t.Errorf("expected notification on fallback, got %d", len(fallback.pending))
	}
}

func TestCancelEvent_RemovesPending(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	primary := newFakePlatform(PermissionGranted)
	s := New(primary, nil, WithClock(fixedClock(now)), WithLocation(time.UTC))
	s.Initialize(context.Background())

	event := models.ClassEvent{
		ID: "evt-1", Title: "Exam", Date: "2026-03-20", Time: "10:00",
		Type: models.EventExam, ReminderEnabled: true,
	}
	s.ScheduleEvent(context.Background(), event)
	s.CancelEvent(context.Background(), event.ID)

	if len(primary.pending) != 0 {
		t.Errorf("expected pending cleared, got %d", len(primary.pending))
	}
}

func TestRescheduleAll_RebuildsPendingSet(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	primary := newFakePlatform(PermissionGranted)
	s := New(primary, nil, WithClock(fixedClock(now)), WithLocation(time.UTC))
	s.Initialize(context.Background())

	stale := models.ClassEvent{
		ID: "evt-stale", Title: "Old", Date: "2026-03-18", Time: "10:00",
		Type: models.EventOther, ReminderEnabled: true,
	}
	s.ScheduleEvent(context.Background(), stale)

	events := []models.ClassEvent{
		{ID: "evt-1", Title: "Exam", Date: "2026-03-20", Time: "10:00", Type: models.EventExam, ReminderEnabled: true},
		{ID: "evt-2", Title: "Quiz", Date: "2026-03-21", Time: "11:00", Type: models.EventQuiz, ReminderEnabled: true},
		{ID: "evt-3", Title: "No reminder", Date: "2026-03-22", Type: models.EventOther, ReminderEnabled: false},
		{ID: "evt-4", Title: "Past", Date: "2026-03-01", Type: models.EventOther, ReminderEnabled: true},
	}

	scheduled := s.RescheduleAll(context.Background(), events)
	if scheduled != 2 {
		t.Errorf("expected 2 scheduled, got %d", scheduled)
	}
	if len(primary.pending) != 2 {
		t.Errorf("expected 2 pending, got %d", len(primary.pending))
	}
	if _, ok := primary.pending[NotificationID("evt-stale")]; ok {
		t.Error("stale notification should have been cancelled")
	}
}

func TestRescheduleAll_EmptyClearsEverything(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	primary := newFakePlatform(PermissionGranted)
	s := New(primary, nil, WithClock(fixedClock(now)), WithLocation(time.UTC))
	s.Initialize(context.Background())

	event := models.ClassEvent{
		ID: "evt-1", Title: "Exam", Date: "2026-03-20", Time: "10:00",
		Type: models.EventExam, ReminderEnabled: true,
	}
	s.ScheduleEvent(context.Background(), event)

	if got := s.RescheduleAll(context.Background(), nil); got != 0 {
		t.Errorf("expected 0 scheduled, got %d", got)
	}
	if len(primary.pending) != 0 {
		t.Errorf("expected empty pending set, got %d", len(primary.pending))
	}
}

func TestFireTime_ConfiguredDefaultLead(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s := New(newFakePlatform(PermissionGranted), nil,
		WithClock(fixedClock(now)), WithLocation(time.UTC), WithDefaultLead(90))

	// An event without its own lead picks up the configured 90 minutes.
	event := models.ClassEvent{
		ID: "evt-1", Title: "Midterm", Date: "2026-03-15", Time: "14:00",
		Type: models.EventExam, ReminderEnabled: true,
	}
	at, err := s.FireTime(event)
	if err != nil {
		t.Fatalf("FireTime failed: %v", err)
	}
	want := time.Date(2026, 3, 15, 12, 30, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("expected configured 90 minute lead, got fire time %v", at)
	}

	// An event with its own lead still wins over the configured default.
	event.ReminderLeadMin = 15
	at, err = s.FireTime(event)
	if err != nil {
		t.Fatalf("FireTime failed: %v", err)
	}
	want = time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("expected per-event lead to win, got fire time %v", at)
	}
}

func TestWithDefaultLead_IgnoresNonPositive(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s := New(newFakePlatform(PermissionGranted), nil,
		WithClock(fixedClock(now)), WithLocation(time.UTC), WithDefaultLead(0))

	event := models.ClassEvent{
		ID: "evt-1", Title: "Quiz", Date: "2026-03-15", Time: "14:00",
		Type: models.EventQuiz, ReminderEnabled: true,
	}
	at, err := s.FireTime(event)
	if err != nil {
		t.Fatalf("FireTime failed: %v", err)
	}
	want := time.Date(2026, 3, 15, 13, 30, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("expected the 30 minute default to survive, got fire time %v", at)
	}
}

func TestScheduleEvent_BodyUsesConfiguredLead(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	primary := newFakePlatform(PermissionGranted)
	s := New(primary, nil,
		WithClock(fixedClock(now)), WithLocation(time.UTC), WithDefaultLead(90))
	s.Initialize(context.Background())

	event := models.ClassEvent{
		ID: "evt-1", Title: "Midterm", Date: "2026-03-15", Time: "14:00",
		Type: models.EventExam, ReminderEnabled: true,
	}
	if !s.ScheduleEvent(context.Background(), event) {
		t.Fatal("expected event to be scheduled")
	}
	n := primary.pending[NotificationID("evt-1")]
	if n.Body != "Exam in 90 minutes" {
		t.Errorf("expected body to use configured lead, got %q", n.Body)
	}
}
