package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.cursor = 0
			m.statusMsg = ""
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.cursor = 0
			m.statusMsg = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			m.statusMsg = "Reloaded."
		case key.Matches(msg, m.keys.Up):
			if m.state == StateToday && m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.state == StateToday && m.cursor < len(m.todays)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Present):
			m.mark(models.StatusPresent)
		case key.Matches(msg, m.keys.Absent):
			m.mark(models.StatusAbsent)
		case key.Matches(msg, m.keys.Late):
			m.mark(models.StatusLate)
		case key.Matches(msg, m.keys.Excused):
			m.mark(models.StatusExcused)
		}
	}

	return m, nil
}

func (m *Model) mark(status models.AttendanceStatus) {
	if m.state != StateToday || m.cursor >= len(m.todays) {
		return
	}
	class := m.todays[m.cursor]
	date := m.now().Format(constants.DateFormat)

	if _, err := m.store.MarkAttendance(uuid.New().String(), class.ID, date, status, ""); err != nil {
		m.statusMsg = fmt.Sprintf("Failed to mark attendance: %v", err)
		return
	}
	m.refresh()
	m.statusMsg = fmt.Sprintf("%s marked %s", class.SubjectName, status)
}
