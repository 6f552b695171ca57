package assignments

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/utils"
)

type AssignmentEditCmd struct {
	ID          string `arg:"" help:"Assignment id (prefix ok)."`
	Title       string `short:"t" help:"New title."`
	Due         string `short:"d" help:"New due date (YYYY-MM-DD)."`
	Priority    string `short:"p" enum:",low,medium,high" default:"" help:"New priority."`
	Description string `help:"New description."`
}

func (c *AssignmentEditCmd) Validate() error {
	if c.Title == "" && c.Due == "" && c.Priority == "" && c.Description == "" {
		return fmt.Errorf("nothing to change, pass at least one of --title, --due, --priority, --description")
	}
	return nil
}

func (c *AssignmentEditCmd) Run(ctx *cli.Context) error {
	assignment, err := resolveAssignment(ctx, c.ID)
	if err != nil {
		return err
	}

	patch := models.AssignmentPatch{}
	if c.Title != "" {
		patch.Title = &c.Title
	}
	if c.Due != "" {
		if _, err := utils.ParseDateInLocation(c.Due, ctx.Now().Location()); err != nil {
			return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %s", c.Due)
		}
		patch.DueDate = &c.Due
	}
	if c.Priority != "" {
		priority := models.AssignmentPriority(c.Priority)
		patch.Priority = &priority
	}
	if c.Description != "" {
		patch.Description = &c.Description
	}

	if err := ctx.Store.UpdateAssignment(assignment.ID, patch); err != nil {
		return err
	}
	patch.Apply(&assignment)
	fmt.Printf("Updated %q, due %s\n", assignment.Title, assignment.DueDate)
	return nil
}
