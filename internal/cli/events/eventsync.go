package events

import (
	"context"
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
)

// EventSyncCmd rebuilds the pending notification set from scratch so it
// matches the stored events. Safe to run any time; the usual trigger is a
// settings change or a restored backup.
type EventSyncCmd struct{}

func (c *EventSyncCmd) Run(ctx *cli.Context) error {
	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return err
	}

	bg := context.Background()
	scheduler := ctx.Scheduler(bg)
	if !scheduler.Enabled() {
		fmt.Println("Notifications unavailable, nothing to sync.")
		return nil
	}

	scheduled := scheduler.RescheduleAll(bg, events)
	fmt.Printf("Rescheduled %d reminders for %d events\n", scheduled, len(events))
	return nil
}
