package assignments

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
	"github.com/classtrack/classtrack/internal/utils"
)

type AssignmentAddCmd struct {
	Class       string `arg:"" help:"Class id (prefix ok)."`
	Title       string `arg:"" help:"Assignment title."`
	Due         string `short:"d" help:"Due date (YYYY-MM-DD)." required:""`
	Priority    string `short:"p" enum:"low,medium,high" default:"medium" help:"Priority."`
	Description string `help:"Longer description."`
}

func (c *AssignmentAddCmd) Run(ctx *cli.Context) error {
	class, err := cli.ResolveClass(ctx.Store, c.Class)
	if err != nil {
		return err
	}

	now := ctx.Now()
	if _, err := utils.ParseDateInLocation(c.Due, now.Location()); err != nil {
		return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %s", c.Due)
	}

	assignment := models.Assignment{
		ID:          cli.NewID(),
		ClassID:     class.ID,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.Due,
		Status:      models.AssignmentPending,
		Priority:    models.AssignmentPriority(c.Priority),
		CreatedAt:   now,
	}
	if err := assignment.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddAssignment(assignment); err != nil {
		return err
	}

	fmt.Printf("Added %q for %s, due %s (%s)\n", assignment.Title, class.SubjectName, stats.FormatDate(assignment.DueDate, now), cli.ShortID(assignment.ID))
	return nil
}
