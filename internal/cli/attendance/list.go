package attendance

import (
	"fmt"
	"sort"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
)

type ListCmd struct {
	Class string `short:"c" help:"Only show records for this class (id prefix ok)."`
	Limit int    `short:"l" default:"20" help:"Maximum records to show, newest first."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Store.GetAllAttendance()
	if err != nil {
		return err
	}

	classID := ""
	if c.Class != "" {
		class, err := cli.ResolveClass(ctx.Store, c.Class)
		if err != nil {
			return err
		}
		classID = class.ID
	}

	classes, err := ctx.Store.GetAllClasses()
	if err != nil {
		return err
	}
	names := make(map[string]string, len(classes))
	for _, class := range classes {
		names[class.ID] = class.SubjectName
	}

	filtered := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if classID != "" && r.ClassID != classID {
			continue
		}
		filtered = append(filtered, r)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	if len(filtered) == 0 {
		fmt.Println("No attendance records.")
		return nil
	}
	if c.Limit > 0 && len(filtered) > c.Limit {
		filtered = filtered[:c.Limit]
	}

	now := ctx.Now()
	for _, r := range filtered {
		name := names[r.ClassID]
		if name == "" {
			name = cli.ShortID(r.ClassID)
		}
		line := fmt.Sprintf("%-12s %-8s %s", stats.FormatDate(r.Date, now), r.Status, name)
		if r.Note != "" {
			line += fmt.Sprintf("  (%s)", r.Note)
		}
		fmt.Println(line)
	}
	return nil
}
