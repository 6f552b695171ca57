package classes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/classtrack/classtrack/internal/cli"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
)

type ClassListCmd struct {
	Day string `short:"d" help:"Only show classes on this weekday."`
}

func (c *ClassListCmd) Run(ctx *cli.Context) error {
	classes, err := ctx.Store.GetAllClasses()
	if err != nil {
		return err
	}

	if c.Day != "" {
		day, err := cli.ParseDay(c.Day)
		if err != nil {
			return err
		}
		classes = stats.ClassesForDay(classes, day)
	}

	if len(classes) == 0 {
		fmt.Println("No scheduled classes.")
		return nil
	}

	currentDay := models.DayOfWeek("")
	for _, class := range classes {
		if class.Day != currentDay {
			currentDay = class.Day
			fmt.Printf("\n%s\n", class.Day.Label())
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(class.Color)).Render("●")
		line := fmt.Sprintf("  %s %s-%s  %s", dot, class.TimeSlot.StartTime, class.TimeSlot.EndTime, class.SubjectName)
		if class.Room != "" {
			line += fmt.Sprintf("  @%s", class.Room)
		}
		fmt.Printf("%s  (%s)\n", line, cli.ShortID(class.ID))
	}
	return nil
}
