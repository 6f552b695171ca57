package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
)

var weekDayStyle = lipgloss.NewStyle().Bold(true)

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	classes, err := ctx.Store.GetAllClasses()
	if err != nil {
		return err
	}

	if len(classes) == 0 {
		fmt.Println("No scheduled classes. Add one with 'classtrack class add'.")
		return nil
	}

	today := models.DayFromWeekday(ctx.Now().Weekday())
	for _, day := range models.DaysOfWeek {
		scheduled := stats.ClassesForDay(classes, day)
		if len(scheduled) == 0 {
			continue
		}

		label := day.Label()
		if day == today {
			label += " (today)"
		}
		fmt.Printf("\n%s\n", weekDayStyle.Render(label))

		for _, class := range scheduled {
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(class.Color)).Render("●")
			line := fmt.Sprintf("  %s %s-%s  %s", dot, class.TimeSlot.StartTime, class.TimeSlot.EndTime, class.SubjectName)
			if class.Room != "" {
				line += fmt.Sprintf("  @%s", class.Room)
			}
			fmt.Println(line)
		}
	}
	return nil
}
