package classes

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/utils"
)

type ClassAddCmd struct {
	Subject string `arg:"" help:"Subject id or name to schedule."`
	Day     string `arg:"" help:"Weekday (monday..sunday or mon..sun)."`
	Start   string `short:"s" help:"Start time (HH:MM)." required:""`
	End     string `short:"e" help:"End time (HH:MM)." required:""`
	Room    string `short:"r" help:"Room override for this slot."`
}

func (c *ClassAddCmd) Validate() error {
	if !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM): %s", c.Start)
	}
	if !utils.ValidateTimeFormat(c.End) {
		return fmt.Errorf("invalid end time format (expected HH:MM): %s", c.End)
	}
	start, _ := utils.ParseTimeToMinutes(c.Start)
	end, _ := utils.ParseTimeToMinutes(c.End)
	if end <= start {
		return fmt.Errorf("end time must be after start time")
	}
	return nil
}

func (c *ClassAddCmd) Run(ctx *cli.Context) error {
	subject, err := cli.ResolveSubject(ctx.Store, c.Subject)
	if err != nil {
		return err
	}

	day, err := cli.ParseDay(c.Day)
	if err != nil {
		return err
	}

	class := subject.Schedule(cli.NewID(), day, models.TimeSlot{StartTime: c.Start, EndTime: c.End})
	if c.Room != "" {
		class.Room = c.Room
	}
	if err := class.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddClass(class); err != nil {
		return err
	}

	fmt.Printf("Scheduled %s on %s %s-%s (%s)\n", subject.Name, day.Label(), c.Start, c.End, cli.ShortID(class.ID))
	return nil
}
