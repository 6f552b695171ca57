package subjects

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
)

type SubjectDeleteCmd struct {
	Subject string `arg:"" help:"Subject id or name."`
	Yes     bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *SubjectDeleteCmd) Run(ctx *cli.Context) error {
	subject, err := cli.ResolveSubject(ctx.Store, c.Subject)
	if err != nil {
		return err
	}

	classes, err := ctx.Store.GetAllClasses()
	if err != nil {
		return err
	}
	linked := 0
	for _, class := range classes {
		if class.SubjectID == subject.ID {
			linked++
		}
	}

	if !c.Yes {
		fmt.Printf("Delete subject %q and its %d scheduled classes? [y/N] ", subject.Name, linked)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.DeleteSubject(subject.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted subject %q (%d classes removed)\n", subject.Name, linked)
	return nil
}
