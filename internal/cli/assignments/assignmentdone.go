package assignments

import (
	"fmt"
	"strings"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
)

type AssignmentDoneCmd struct {
	ID     string `arg:"" help:"Assignment id (prefix ok)."`
	Status string `short:"s" enum:"pending,in-progress,completed" default:"completed" help:"Status to set."`
}

func (c *AssignmentDoneCmd) Run(ctx *cli.Context) error {
	assignment, err := resolveAssignment(ctx, c.ID)
	if err != nil {
		return err
	}

	status := models.AssignmentStatus(c.Status)
	if err := ctx.Store.SetAssignmentStatus(assignment.ID, status); err != nil {
		return err
	}

	fmt.Printf("Marked %q %s\n", assignment.Title, status)
	return nil
}

// resolveAssignment finds an assignment by full or shortened id.
func resolveAssignment(ctx *cli.Context, id string) (models.Assignment, error) {
	if assignment, err := ctx.Store.GetAssignment(id); err == nil {
		return assignment, nil
	}

	assignments, err := ctx.Store.GetAllAssignments()
	if err != nil {
		return models.Assignment{}, err
	}
	var matches []models.Assignment
	for _, a := range assignments {
		if strings.HasPrefix(a.ID, id) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Assignment{}, fmt.Errorf("assignment not found: %s", id)
	default:
		return models.Assignment{}, fmt.Errorf("ambiguous assignment id: %s matches %d assignments", id, len(matches))
	}
}
