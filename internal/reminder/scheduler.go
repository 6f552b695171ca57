// Package reminder maps reminder-enabled calendar events onto scheduled
// host notifications. All platform failures are contained here: the worst
// outcome of any operation is a reminder silently not delivered, never an
// error surfaced to the calling code.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/logger"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/utils"
)

// NotificationID folds an event id into a non-negative 32-bit identifier
// using the classic (h<<5)-h+c string hash. The mapping is deterministic,
// so repeated scheduling for the same event always overwrites the same
// notification slot. Distinct ids colliding is a theoretical risk we
// accept.
func NotificationID(eventID string) int32 {
	var h int32
	for _, c := range eventID {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		h = -h
	}
	if h < 0 { // -MinInt32 overflows back to itself
		h = 0
	}
	return h
}

// Scheduler keeps the pending notification set consistent with the
// current event set. It degrades from the primary platform to the
// fallback when the primary is unavailable or denies permission.
type Scheduler struct {
	primary     Platform
	fallback    Platform
	active      Platform
	enabled     bool
	now         func() time.Time
	loc         *time.Location
	defaultLead int
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the scheduler's clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithLocation sets the timezone used to resolve event dates.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) { s.loc = loc }
}

// WithDefaultLead sets the lead minutes used for events that don't carry
// their own. Non-positive values are ignored.
func WithDefaultLead(minutes int) Option {
	return func(s *Scheduler) {
		if minutes > 0 {
			s.defaultLead = minutes
		}
	}
}

// New builds a scheduler over a primary platform and an optional
// best-effort fallback. Call Initialize before scheduling.
func New(primary, fallback Platform, opts ...Option) *Scheduler {
	s := &Scheduler{
		primary:     primary,
		fallback:    fallback,
		now:         time.Now,
		loc:         time.Local,
		defaultLead: constants.DefaultReminderLeadMin,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize runs the permission flow and picks the active platform. It
// returns false when no platform is available; reminders are then
// silently disabled, never an error.
func (s *Scheduler) Initialize(ctx context.Context) bool {
	if s.tryEnable(ctx, s.primary) {
		s.active = s.primary
		s.enabled = true
	} else if s.fallback != nil && s.tryEnable(ctx, s.fallback) {
		logger.Warn("primary notification platform unavailable, using fallback delivery")
		s.active = s.fallback
		s.enabled = true
	} else {
		logger.Warn("notifications unavailable, reminders disabled")
		s.enabled = false
		return false
	}

	s.active.OnActionPerformed(func(n Notification) {
		logger.Info("notification action performed", "id", n.ID, "title", n.Title)
	})
	return true
}

func (s *Scheduler) tryEnable(ctx context.Context, p Platform) bool {
	if p == nil {
		return false
	}
	state, err := p.CheckPermission(ctx)
	if err != nil {
		logger.Warn("notification permission check failed", "error", err)
		return false
	}
	if state == PermissionPrompt {
		state, err = p.RequestPermission(ctx)
		if err != nil {
			logger.Warn("notification permission request failed", "error", err)
			return false
		}
	}
	return state == PermissionGranted
}

// Enabled reports whether any delivery path is active.
func (s *Scheduler) Enabled() bool {
	return s.enabled
}

// FireTime computes when the event's reminder should fire: the event's
// date at its time (09:00 if none), minus the lead minutes (the
// configured default if the event doesn't set its own).
func (s *Scheduler) FireTime(event models.ClassEvent) (time.Time, error) {
	eventTime := event.Time
	if eventTime == "" {
		eventTime = constants.DefaultEventTime
	}
	at, err := utils.CombineDateAndTime(event.Date, eventTime, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event date/time: %w", err)
	}
	return at.Add(-time.Duration(s.leadFor(event)) * time.Minute), nil
}

// leadFor returns the event's lead minutes, or the scheduler default.
func (s *Scheduler) leadFor(event models.ClassEvent) int {
	if event.ReminderLeadMin > 0 {
		return event.ReminderLeadMin
	}
	return s.defaultLead
}

// ScheduleEvent schedules one notification for a reminder-enabled event
// and reports whether one was queued. A fire time already in the past is
// an expected no-op, not an error. Platform failures are logged and, for
// the primary, retried on the fallback; nothing propagates to the caller.
func (s *Scheduler) ScheduleEvent(ctx context.Context, event models.ClassEvent) bool {
	if !s.enabled || !event.ReminderEnabled {
		return false
	}

	fireTime, err := s.FireTime(event)
	if err != nil {
		logger.Warn("skipping reminder for unparseable event", "event", event.ID, "error", err)
		return false
	}

	if !fireTime.After(s.now()) {
		logger.Debug("reminder fire time already past, not scheduling", "event", event.ID, "at", fireTime)
		return false
	}

	n := Notification{
		ID:    NotificationID(event.ID),
		Title: event.Title,
		Body:  fmt.Sprintf("%s in %d minutes", typeLabel(event.Type), s.leadFor(event)),
		At:    fireTime,
	}

	if err := s.active.ScheduleAt(ctx, n); err != nil {
		logger.Warn("failed to schedule reminder", "event", event.ID, "error", err)
		if s.fallback != nil && s.active != s.fallback {
			if err := s.fallback.ScheduleAt(ctx, n); err != nil {
				logger.Warn("fallback scheduling failed", "event", event.ID, "error", err)
				return false
			}
			return true
		}
		return false
	}
	return true
}

// CancelEvent removes the notification scheduled for the event, if any.
func (s *Scheduler) CancelEvent(ctx context.Context, eventID string) {
	if !s.enabled {
		return
	}
	if err := s.active.Cancel(ctx, NotificationID(eventID)); err != nil {
		logger.Warn("failed to cancel reminder", "event", eventID, "error", err)
	}
}

// RescheduleAll cancels every pending notification and schedules one per
// reminder-enabled event. Full rebuild rather than incremental diffing:
// it is idempotent and safe to run on every restart or bulk edit. Returns
// the number of events scheduled.
func (s *Scheduler) RescheduleAll(ctx context.Context, events []models.ClassEvent) int {
	if !s.enabled {
		return 0
	}

	pending, err := s.active.ListPending(ctx)
	if err != nil {
		logger.Warn("failed to list pending notifications", "error", err)
	}
	for _, n := range pending {
		if err := s.active.Cancel(ctx, n.ID); err != nil {
			logger.Warn("failed to cancel pending notification", "id", n.ID, "error", err)
		}
	}

	scheduled := 0
	for _, event := range events {
		if s.ScheduleEvent(ctx, event) {
			scheduled++
		}
	}
	return scheduled
}

func typeLabel(t models.EventType) string {
	if t == "" {
		return "Event"
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}
