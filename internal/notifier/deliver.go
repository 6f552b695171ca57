package notifier

import (
	"time"

	"github.com/classtrack/classtrack/internal/logger"
	"github.com/classtrack/classtrack/internal/reminder"
)

// Sender delivers one notification immediately. TrayPlatform and
// ConsolePlatform both satisfy it.
type Sender interface {
	Send(n reminder.Notification) error
}

// DeliverDue sends every registry entry whose fire time has passed,
// removing delivered entries. A tray delivery failure falls through to
// the console sender rather than leaving the entry queued forever.
// Returns the number delivered.
func DeliverDue(registry *Registry, now time.Time, senders map[Channel]Sender) int {
	due, err := registry.Due(now)
	if err != nil {
		logger.Warn("failed to load due reminders", "error", err)
		return 0
	}

	delivered := 0
	for _, e := range due {
		sender, ok := senders[e.Channel]
		if !ok {
			logger.Warn("no sender for reminder channel", "channel", e.Channel, "id", e.ID)
			continue
		}

		if err := sender.Send(e.Notification); err != nil {
			logger.Warn("reminder delivery failed", "id", e.ID, "channel", e.Channel, "error", err)
			if fallback, ok := senders[ChannelConsole]; ok && e.Channel != ChannelConsole {
				if err := fallback.Send(e.Notification); err != nil {
					logger.Warn("fallback reminder delivery failed", "id", e.ID, "error", err)
					continue
				}
			} else {
				continue
			}
		}

		if err := registry.Remove(e.ID); err != nil {
			logger.Warn("failed to clear delivered reminder", "id", e.ID, "error", err)
		}
		delivered++
	}
	return delivered
}
