package events

import (
	"context"
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
	"github.com/classtrack/classtrack/internal/utils"
)

type EventAddCmd struct {
	Title       string `arg:"" help:"Event title."`
	Date        string `short:"d" help:"Event date (YYYY-MM-DD)." required:""`
	Time        string `short:"t" help:"Event time (HH:MM, default 09:00 for reminders)."`
	Type        string `enum:"exam,quiz,presentation,project,holiday,other" default:"other" help:"Event type."`
	Class       string `short:"c" help:"Class this event belongs to (id prefix ok)."`
	Description string `help:"Longer description."`
	NoReminder  bool   `help:"Do not schedule a reminder for this event."`
	Lead        int    `short:"l" default:"0" help:"Reminder lead time in minutes (default 30)."`
}

func (c *EventAddCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()
	if _, err := utils.ParseDateInLocation(c.Date, now.Location()); err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
	}

	classID := ""
	if c.Class != "" {
		class, err := cli.ResolveClass(ctx.Store, c.Class)
		if err != nil {
			return err
		}
		classID = class.ID
	}

	event := models.ClassEvent{
		ID:              cli.NewID(),
		ClassID:         classID,
		Title:           c.Title,
		Description:     c.Description,
		Date:            c.Date,
		Time:            c.Time,
		Type:            models.EventType(c.Type),
		ReminderEnabled: !c.NoReminder,
		ReminderLeadMin: c.Lead,
	}
	if err := event.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddEvent(event); err != nil {
		return err
	}

	fmt.Printf("Added %s %q on %s (%s)\n", event.Type, event.Title, stats.FormatDate(event.Date, now), cli.ShortID(event.ID))

	if event.ReminderEnabled {
		bg := context.Background()
		if ctx.Scheduler(bg).ScheduleEvent(bg, event) {
			fmt.Println("Reminder scheduled.")
		}
	}
	return nil
}
