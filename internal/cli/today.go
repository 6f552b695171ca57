package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
	"github.com/classtrack/classtrack/internal/utils"
)

type TodayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, default today)."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	now := ctx.Now()
	day := now
	if c.Date != "" {
		parsed, err := utils.ParseDateInLocation(c.Date, now.Location())
		if err != nil {
			return fmt.Errorf("invalid date (expected YYYY-MM-DD): %s", c.Date)
		}
		day = parsed
	}
	dateStr := day.Format(constants.DateFormat)

	classes, err := ctx.Store.GetAllClasses()
	if err != nil {
		return err
	}
	scheduled := stats.TodaysClasses(classes, day)

	fmt.Printf("%s, %s\n\n", models.DayFromWeekday(day.Weekday()).Label(), stats.FormatDate(dateStr, now))

	if len(scheduled) == 0 {
		fmt.Println("  No classes scheduled.")
	} else {
		records, err := ctx.Store.GetAllAttendance()
		if err != nil {
			return err
		}
		marked := make(map[string]models.AttendanceStatus, len(records))
		for _, r := range records {
			if r.Date == dateStr {
				marked[r.ClassID] = r.Status
			}
		}

		for _, class := range scheduled {
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(class.Color)).Render("●")
			line := fmt.Sprintf("  %s %s-%s  %s", dot,
				stats.FormatTimeOfDay(class.TimeSlot.StartTime), stats.FormatTimeOfDay(class.TimeSlot.EndTime), class.SubjectName)
			if class.Room != "" {
				line += fmt.Sprintf("  @%s", class.Room)
			}
			if status, ok := marked[class.ID]; ok {
				line += fmt.Sprintf("  [%s]", status)
			}
			fmt.Println(line)
		}
	}

	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return err
	}
	printed := false
	for _, e := range events {
		if e.Date != dateStr {
			continue
		}
		if !printed {
			fmt.Println("\nEvents:")
			printed = true
		}
		line := fmt.Sprintf("  [%s] %s", e.Type, e.Title)
		if e.Time != "" {
			line += fmt.Sprintf(" at %s", stats.FormatTimeOfDay(e.Time))
		}
		fmt.Println(line)
	}

	assignments, err := ctx.Store.GetAllAssignments()
	if err != nil {
		return err
	}
	printed = false
	for _, a := range assignments {
		if a.DueDate != dateStr || a.Status == models.AssignmentCompleted {
			continue
		}
		if !printed {
			fmt.Println("\nDue today:")
			printed = true
		}
		fmt.Printf("  %s (%s)\n", a.Title, a.Priority)
	}
	return nil
}
