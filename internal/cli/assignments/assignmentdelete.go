package assignments

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
)

type AssignmentDeleteCmd struct {
	ID  string `arg:"" help:"Assignment id (prefix ok)."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *AssignmentDeleteCmd) Run(ctx *cli.Context) error {
	assignment, err := resolveAssignment(ctx, c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete assignment %q? [y/N] ", assignment.Title)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.DeleteAssignment(assignment.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %q\n", assignment.Title)
	return nil
}
