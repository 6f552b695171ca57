package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/utils"
)

type EventEditCmd struct {
	ID          string `arg:"" help:"Event id (prefix ok)."`
	Title       string `short:"t" help:"New title."`
	Date        string `short:"d" help:"New date (YYYY-MM-DD)."`
	Time        string `help:"New time (HH:MM)."`
	Type        string `enum:",exam,quiz,presentation,project,holiday,other" default:"" help:"New type."`
	Description string `help:"New description."`
	Reminder    string `enum:",on,off" default:"" help:"Turn the reminder on or off."`
	Lead        int    `short:"l" default:"-1" help:"New reminder lead time in minutes."`
}

func (c *EventEditCmd) Validate() error {
	if c.Title == "" && c.Date == "" && c.Time == "" && c.Type == "" &&
		c.Description == "" && c.Reminder == "" && c.Lead < 0 {
		return fmt.Errorf("nothing to change")
	}
	return nil
}

func (c *EventEditCmd) Run(ctx *cli.Context) error {
	event, err := resolveEvent(ctx, c.ID)
	if err != nil {
		return err
	}

	patch := models.EventPatch{}
	if c.Title != "" {
		patch.Title = &c.Title
	}
	if c.Date != "" {
		if _, err := utils.ParseDateInLocation(c.Date, ctx.Now().Location()); err != nil {
			return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
		}
		patch.Date = &c.Date
	}
	if c.Time != "" {
		if !utils.ValidateTimeFormat(c.Time) {
			return fmt.Errorf("invalid time format (expected HH:MM): %s", c.Time)
		}
		patch.Time = &c.Time
	}
	if c.Type != "" {
		eventType := models.EventType(c.Type)
		patch.Type = &eventType
	}
	if c.Description != "" {
		patch.Description = &c.Description
	}
	if c.Reminder != "" {
		enabled := c.Reminder == "on"
		patch.ReminderEnabled = &enabled
	}
	if c.Lead >= 0 {
		patch.ReminderLeadMin = &c.Lead
	}

	if err := ctx.Store.UpdateEvent(event.ID, patch); err != nil {
		return err
	}
	patch.Apply(&event)
	fmt.Printf("Updated %q on %s\n", event.Title, event.Date)

	// Rebuild the event's notification so the pending set matches the edit.
	bg := context.Background()
	scheduler := ctx.Scheduler(bg)
	scheduler.CancelEvent(bg, event.ID)
	if event.ReminderEnabled {
		if scheduler.ScheduleEvent(bg, event) {
			fmt.Println("Reminder rescheduled.")
		}
	}
	return nil
}

// resolveEvent finds an event by full or shortened id.
func resolveEvent(ctx *cli.Context, id string) (models.ClassEvent, error) {
	if event, err := ctx.Store.GetEvent(id); err == nil {
		return event, nil
	}

	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return models.ClassEvent{}, err
	}
	var matches []models.ClassEvent
	for _, e := range events {
		if strings.HasPrefix(e.ID, id) {
			matches = append(matches, e)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.ClassEvent{}, fmt.Errorf("event not found: %s", id)
	default:
		return models.ClassEvent{}, fmt.Errorf("ambiguous event id: %s matches %d events", id, len(matches))
	}
}
