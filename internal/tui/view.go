package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return docStyle.Render(fmt.Sprintf("Failed to load data: %v\n\nPress r to retry, q to quit.", m.loadErr))
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateWeek:
		content = m.viewWeek()
	case StateStats:
		content = m.viewStats()
	case StateAssignments:
		content = m.viewAssignments()
	case StateEvents:
		content = m.viewEvents()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, statusStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Week", "Stats", "Assignments", "Events"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	now := m.now()
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s\n\n", models.DayFromWeekday(now.Weekday()).Label(), now.Format("Jan 2"))

	if len(m.todays) == 0 {
		b.WriteString(dimStyle.Render("No classes today."))
		return docStyle.Render(b.String())
	}

	for i, class := range m.todays {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(class.Color)).Render("●")
		line := fmt.Sprintf("%s %s-%s  %s", dot,
			stats.FormatTimeOfDay(class.TimeSlot.StartTime), stats.FormatTimeOfDay(class.TimeSlot.EndTime), class.SubjectName)
		if status, ok := m.marked[class.ID]; ok {
			line += dimStyle.Render(fmt.Sprintf("  [%s]", status))
		}
		if i == m.cursor {
			line = selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("p/a/l/x mark attendance for the selected class"))
	return docStyle.Render(b.String())
}

func (m Model) viewWeek() string {
	if len(m.classes) == 0 {
		return docStyle.Render(dimStyle.Render("No scheduled classes."))
	}

	today := models.DayFromWeekday(m.now().Weekday())
	var b strings.Builder
	for _, day := range models.DaysOfWeek {
		scheduled := stats.ClassesForDay(m.classes, day)
		if len(scheduled) == 0 {
			continue
		}
		label := day.Label()
		if day == today {
			label = selectedStyle.Render(label + " (today)")
		}
		b.WriteString(label + "\n")
		for _, class := range scheduled {
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(class.Color)).Render("●")
			fmt.Fprintf(&b, "  %s %s-%s  %s\n", dot, class.TimeSlot.StartTime, class.TimeSlot.EndTime, class.SubjectName)
		}
		b.WriteString("\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewStats() string {
	s := stats.Calculate(m.records, "")
	var b strings.Builder
	if s.Total == 0 {
		b.WriteString(dimStyle.Render("No attendance recorded yet."))
		return docStyle.Render(b.String())
	}

	fmt.Fprintf(&b, "%d%% attended across %d sessions\n", s.Percentage, s.Total)
	fmt.Fprintf(&b, "present %d  late %d  absent %d  excused %d\n\n", s.Present, s.Late, s.Absent, s.Excused)

	trend := stats.WeeklyData(m.records, stats.DefaultWeeks, m.now())
	for _, bucket := range trend {
		attended := bucket.Present + bucket.Late
		bar := strings.Repeat("█", attended) + strings.Repeat("░", bucket.Absent)
		if attended+bucket.Absent == 0 {
			bar = dimStyle.Render("-")
		}
		fmt.Fprintf(&b, "%-7s %s\n", bucket.Week, bar)
	}

	b.WriteString("\nPer class:\n")
	for _, class := range m.classes {
		cs := stats.Calculate(m.records, class.ID)
		if cs.Total == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %-25s %3d%% (%d sessions)\n", class.SubjectName, cs.Percentage, cs.Total)
	}
	return docStyle.Render(b.String())
}

func (m Model) viewAssignments() string {
	now := m.now()
	pending := make([]models.Assignment, 0, len(m.assignments))
	for _, a := range m.assignments {
		if a.Status != models.AssignmentCompleted {
			pending = append(pending, a)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate < pending[j].DueDate
	})

	if len(pending) == 0 {
		return docStyle.Render(dimStyle.Render("Nothing due. Nice."))
	}

	var b strings.Builder
	for _, a := range pending {
		due := stats.FormatDate(a.DueDate, now)
		if stats.IsOverdue(a.DueDate, now) {
			due = overdueStyle.Render(due)
		}
		fmt.Fprintf(&b, "%-14s %-6s %s\n", due, a.Priority, a.Title)
	}
	return docStyle.Render(b.String())
}

func (m Model) viewEvents() string {
	now := m.now()
	today := now.Format(constants.DateFormat)
	upcoming := make([]models.ClassEvent, 0, len(m.events))
	for _, e := range m.events {
		if e.Date >= today {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		if upcoming[i].Date != upcoming[j].Date {
			return upcoming[i].Date < upcoming[j].Date
		}
		return upcoming[i].Time < upcoming[j].Time
	})

	if len(upcoming) == 0 {
		return docStyle.Render(dimStyle.Render("No upcoming events."))
	}

	var b strings.Builder
	for _, e := range upcoming {
		line := fmt.Sprintf("%-14s [%s] %s", stats.FormatDate(e.Date, now), e.Type, e.Title)
		if e.Time != "" {
			line += " at " + stats.FormatTimeOfDay(e.Time)
		}
		if e.ReminderEnabled {
			line += dimStyle.Render("  (reminder)")
		}
		b.WriteString(line + "\n")
	}
	return docStyle.Render(b.String())
}
