package subjects

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/validation"
)

type SubjectEditCmd struct {
	Subject    string `arg:"" help:"Subject id or name."`
	Name       string `help:"New subject name."`
	Code       string `short:"c" help:"New course code."`
	Instructor string `short:"i" help:"New instructor name."`
	Room       string `short:"r" help:"New default room."`
	Color      string `help:"New hex color tag."`
}

func (c *SubjectEditCmd) Validate() error {
	if c.Name == "" && c.Code == "" && c.Instructor == "" && c.Room == "" && c.Color == "" {
		return fmt.Errorf("nothing to change: pass at least one field flag")
	}
	if c.Color != "" && !validation.IsHexColor(c.Color) {
		return fmt.Errorf("invalid color (expected #RGB or #RRGGBB): %s", c.Color)
	}
	return nil
}

func (c *SubjectEditCmd) Run(ctx *cli.Context) error {
	subject, err := cli.ResolveSubject(ctx.Store, c.Subject)
	if err != nil {
		return err
	}

	var patch models.SubjectPatch
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if c.Code != "" {
		patch.Code = &c.Code
	}
	if c.Instructor != "" {
		patch.Instructor = &c.Instructor
	}
	if c.Room != "" {
		patch.Room = &c.Room
	}
	if c.Color != "" {
		patch.Color = &c.Color
	}

	// The store syncs the denormalized fields on every class of this
	// subject in the same operation.
	if err := ctx.Store.UpdateSubjectAndClasses(subject.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated subject %q and its scheduled classes\n", subject.Name)
	return nil
}
