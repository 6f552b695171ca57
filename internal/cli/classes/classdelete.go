package classes

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
)

type ClassDeleteCmd struct {
	ID  string `arg:"" help:"Class id (prefix ok)."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ClassDeleteCmd) Run(ctx *cli.Context) error {
	class, err := cli.ResolveClass(ctx.Store, c.ID)
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Printf("Delete %s %s %s-%s and its attendance and assignments? [y/N] ",
			class.SubjectName, class.Day.Label(), class.TimeSlot.StartTime, class.TimeSlot.EndTime)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteClass(class.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted class %s (%s)\n", class.SubjectName, cli.ShortID(class.ID))
	return nil
}
