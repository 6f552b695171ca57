package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Yes {
		confirmed := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Erase all subjects, classes, attendance, assignments and events?").
					Description("A backup of the current data is created first.").
					Value(&confirmed),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ResetApp(); err != nil {
		return err
	}

	fmt.Println("All data erased. Run 'classtrack setup' to start over.")
	return nil
}
