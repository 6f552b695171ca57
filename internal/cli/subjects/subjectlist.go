package subjects

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/classtrack/classtrack/internal/cli"
)

type SubjectListCmd struct{}

func (c *SubjectListCmd) Run(ctx *cli.Context) error {
	subjects, err := ctx.Store.GetAllSubjects()
	if err != nil {
		return err
	}

	if len(subjects) == 0 {
		fmt.Println("No subjects yet. Add one with 'classtrack subject add'.")
		return nil
	}

	for _, subject := range subjects {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(subject.Color)).Render("●")
		line := fmt.Sprintf("%s %s", dot, subject.Name)
		if subject.Code != "" {
			line += fmt.Sprintf(" [%s]", subject.Code)
		}
		if subject.Instructor != "" {
			line += fmt.Sprintf(" - %s", subject.Instructor)
		}
		fmt.Printf("%s  (%s)\n", line, cli.ShortID(subject.ID))
	}
	return nil
}
