package subjects

import (
	"fmt"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
)

type SubjectAddCmd struct {
	Name       string `arg:"" help:"Subject name."`
	Code       string `short:"c" help:"Course code (e.g. CS101)."`
	Instructor string `short:"i" help:"Instructor name."`
	Room       string `short:"r" help:"Default room."`
	Color      string `help:"Hex color tag (e.g. #6366f1). Defaults to the next palette color."`
}

func (c *SubjectAddCmd) Run(ctx *cli.Context) error {
	color := c.Color
	if color == "" {
		subjects, err := ctx.Store.GetAllSubjects()
		if err != nil {
			return err
		}
		color = constants.SubjectColors[len(subjects)%len(constants.SubjectColors)]
	}

	subject := models.Subject{
		ID:         cli.NewID(),
		Name:       c.Name,
		Code:       c.Code,
		Instructor: c.Instructor,
		Room:       c.Room,
		Color:      color,
	}
	if err := subject.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddSubject(subject); err != nil {
		return err
	}

	fmt.Printf("Added subject %q (%s)\n", subject.Name, cli.ShortID(subject.ID))
	return nil
}
