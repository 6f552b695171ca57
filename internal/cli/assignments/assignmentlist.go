package assignments

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
)

var overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

type AssignmentListCmd struct {
	Class string `short:"c" help:"Only show assignments for this class (id prefix ok)."`
	All   bool   `short:"a" help:"Include completed assignments."`
}

func (c *AssignmentListCmd) Run(ctx *cli.Context) error {
	assignments, err := ctx.Store.GetAllAssignments()
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

	now := ctx.Now()
	filtered := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if classID != "" && a.ClassID != classID {
			continue
		}
		if !c.All && a.Status == models.AssignmentCompleted {
			continue
		}
		filtered = append(filtered, a)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DueDate < filtered[j].DueDate
	})

	if len(filtered) == 0 {
		fmt.Println("No assignments.")
		return nil
	}

	for _, a := range filtered {
		due := stats.FormatDate(a.DueDate, now)
		status := string(a.Status)
		if a.Status != models.AssignmentCompleted && stats.IsOverdue(a.DueDate, now) {
			status = string(models.AssignmentOverdue)
			due = overdueStyle.Render(due)
		}
		name := names[a.ClassID]
		if name == "" {
			name = cli.ShortID(a.ClassID)
		}
		fmt.Printf("%-12s %-11s %-6s %s: %s (%s)\n", due, status, a.Priority, name, a.Title, cli.ShortID(a.ID))
	}
	return nil
}
