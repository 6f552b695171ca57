package attendance

import (
	"fmt"
	"strings"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/utils"
)

type MarkCmd struct {
	Class  string `arg:"" help:"Class id (prefix ok)."`
	Status string `arg:"" enum:"present,absent,late,excused" help:"Session outcome (present, absent, late, excused)."`
	Date   string `short:"d" help:"Session date (YYYY-MM-DD, default today)."`
	Note   string `short:"n" help:"Free-form note."`
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	class, err := cli.ResolveClass(ctx.Store, c.Class)
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = ctx.Now().Format(constants.DateFormat)
	} else if _, err := utils.ParseDateInLocation(date, ctx.Now().Location()); err != nil {
		return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", date)
	}

	status, ok := models.ParseAttendanceStatus(strings.ToLower(c.Status))
	if !ok {
		return fmt.Errorf("invalid status: %s", c.Status)
	}

	record, err := ctx.Store.MarkAttendance(cli.NewID(), class.ID, date, status, c.Note)
	if err != nil {
		return err
	}

	fmt.Printf("Marked %s %s on %s (%s)\n", class.SubjectName, record.Status, record.Date, cli.ShortID(record.ID))
	return nil
}
