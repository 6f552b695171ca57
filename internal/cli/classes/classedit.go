package classes

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/utils"
)

type ClassEditCmd struct {
	ID    string `arg:"" help:"Class id (prefix ok)."`
	Day   string `short:"d" help:"New weekday."`
	Start string `short:"s" help:"New start time (HH:MM)."`
	End   string `short:"e" help:"New end time (HH:MM)."`
	Room  string `short:"r" help:"New room."`
}

func (c *ClassEditCmd) Validate() error {
	if c.Day == "" && c.Start == "" && c.End == "" && c.Room == "" {
		return fmt.Errorf("nothing to change, pass at least one of --day, --start, --end, --room")
	}
	for _, t := range []string{c.Start, c.End} {
		if t != "" && !utils.ValidateTimeFormat(t) {
			return fmt.Errorf("invalid time format (expected HH:MM): %s", t)
		}
	}
	return nil
}

func (c *ClassEditCmd) Run(ctx *cli.Context) error {
	class, err := cli.ResolveClass(ctx.Store, c.ID)
	if err != nil {
		return err
	}

	patch := models.ClassPatch{}
	if c.Day != "" {
		day, err := cli.ParseDay(c.Day)
		if err != nil {
			return err
		}
		patch.Day = &day
	}
	if c.Start != "" {
		patch.StartTime = &c.Start
	}
	if c.End != "" {
		patch.EndTime = &c.End
	}
	if c.Room != "" {
		patch.Room = &c.Room
	}

	updated := class
	patch.Apply(&updated)
	start, _ := utils.ParseTimeToMinutes(updated.TimeSlot.StartTime)
	end, _ := utils.ParseTimeToMinutes(updated.TimeSlot.EndTime)
	if end <= start {
		return fmt.Errorf("end time must be after start time")
	}

	if err := ctx.Store.UpdateClass(class.ID, patch); err != nil {
		return err
	}
	fmt.Printf("Updated %s: %s %s-%s\n", updated.SubjectName, updated.Day.Label(), updated.TimeSlot.StartTime, updated.TimeSlot.EndTime)
	return nil
}
