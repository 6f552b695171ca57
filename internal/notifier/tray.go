package notifier

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/reminder"
)

// TrayPlatform delivers notifications through the classtrack tray app's
// localhost webhook. "Permission granted" means the tray app is running
// and its lockfile checks out; there is no interactive prompt to show, so
// requesting permission just re-checks.
type TrayPlatform struct {
	registry *Registry
	onAction func(reminder.Notification)
}

func NewTrayPlatform(registry *Registry) *TrayPlatform {
	return &TrayPlatform{registry: registry}
}

func (p *TrayPlatform) lockfilePath() (string, error) {
	dir, err := TrayConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.NotifierLockfileName), nil
}

func (p *TrayPlatform) CheckPermission(ctx context.Context) (reminder.PermissionState, error) {
	lockfile, err := p.lockfilePath()
	if err != nil {
		return reminder.PermissionDenied, err
	}
	if _, _, err := findAndValidateTrayProcess(lockfile); err != nil {
		return reminder.PermissionDenied, nil
	}
	return reminder.PermissionGranted, nil
}

func (p *TrayPlatform) RequestPermission(ctx context.Context) (reminder.PermissionState, error) {
	return p.CheckPermission(ctx)
}

func (p *TrayPlatform) ScheduleAt(ctx context.Context, n reminder.Notification) error {
	return p.registry.Put(Entry{Notification: n, Channel: ChannelTray})
}

func (p *TrayPlatform) Cancel(ctx context.Context, id int32) error {
	return p.registry.Remove(id)
}

func (p *TrayPlatform) ListPending(ctx context.Context) ([]reminder.Notification, error) {
	entries, err := p.registry.List()
	if err != nil {
		return nil, err
	}
	pending := make([]reminder.Notification, 0, len(entries))
	for _, e := range entries {
		if e.Channel == ChannelTray {
			pending = append(pending, e.Notification)
		}
	}
	return pending, nil
}

func (p *TrayPlatform) OnActionPerformed(fn func(reminder.Notification)) {
	p.onAction = fn
}

// Send delivers one notification through the tray webhook immediately.
func (p *TrayPlatform) Send(n reminder.Notification) error {
	lockfile, err := p.lockfilePath()
	if err != nil {
		return err
	}
	port, secret, err := findAndValidateTrayProcess(lockfile)
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		Text:       fmt.Sprintf("%s: %s", n.Title, n.Body),
		DurationMs: constants.NotificationDurationMs,
	}
	if err := sendWebhook(port, secret, payload); err != nil {
		return err
	}

	if p.onAction != nil {
		p.onAction(n)
	}
	return nil
}
