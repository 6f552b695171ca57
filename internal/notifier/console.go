package notifier

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/reminder"
)

// ConsolePlatform is the best-effort fallback when the tray app is
// unavailable: due reminders are printed the next time the notify command
// runs. Only near-term notifications are accepted; anything beyond the
// lookahead window is silently skipped, since a terminal message days
// later helps nobody.
type ConsolePlatform struct {
	registry  *Registry
	out       io.Writer
	lookahead time.Duration
	now       func() time.Time
	onAction  func(reminder.Notification)
}

func NewConsolePlatform(registry *Registry, out io.Writer) *ConsolePlatform {
	return &ConsolePlatform{
		registry:  registry,
		out:       out,
		lookahead: constants.ConsoleLookaheadHours * time.Hour,
		now:       time.Now,
	}
}

func (p *ConsolePlatform) CheckPermission(ctx context.Context) (reminder.PermissionState, error) {
	return reminder.PermissionGranted, nil
}

func (p *ConsolePlatform) RequestPermission(ctx context.Context) (reminder.PermissionState, error) {
	return reminder.PermissionGranted, nil
}

func (p *ConsolePlatform) ScheduleAt(ctx context.Context, n reminder.Notification) error {
	if n.At.After(p.now().Add(p.lookahead)) {
		return nil
	}
	return p.registry.Put(Entry{Notification: n, Channel: ChannelConsole})
}

func (p *ConsolePlatform) Cancel(ctx context.Context, id int32) error {
	return p.registry.Remove(id)
}

func (p *ConsolePlatform) ListPending(ctx context.Context) ([]reminder.Notification, error) {
	entries, err := p.registry.List()
	if err != nil {
		return nil, err
	}
	pending := make([]reminder.Notification, 0, len(entries))
	for _, e := range entries {
		if e.Channel == ChannelConsole {
			pending = append(pending, e.Notification)
		}
	}
	return pending, nil
}

func (p *ConsolePlatform) OnActionPerformed(fn func(reminder.Notification)) {
	p.onAction = fn
}

// Send prints one due notification.
func (p *ConsolePlatform) Send(n reminder.Notification) error {
	_, err := fmt.Fprintf(p.out, "[reminder] %s: %s\n", n.Title, n.Body)
	return err
}
