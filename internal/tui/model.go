package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/classtrack/classtrack/internal/constants"
	"github.com/classtrack/classtrack/internal/models"
	"github.com/classtrack/classtrack/internal/stats"
	"github.com/classtrack/classtrack/internal/storage"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateWeek
	StateStats
	StateAssignments
	StateEvents

	tabCount = 5
)

// Model is the dashboard root. All store reads happen in refresh; key
// handlers mutate the store and refresh, so the view never goes stale.
type Model struct {
	store storage.Provider
	now   func() time.Time

	keys KeyMap
	help help.Model

	state    SessionState
	cursor   int
	width    int
	height   int
	quitting bool

	todays      []models.ClassSchedule
	classes     []models.ClassSchedule
	records     []models.AttendanceRecord
	assignments []models.Assignment
	events      []models.ClassEvent
	marked      map[string]models.AttendanceStatus

	statusMsg string
	loadErr   error
}

func NewModel(store storage.Provider, now func() time.Time) Model {
	m := Model{
		store: store,
		now:   now,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	m.loadErr = nil
	now := m.now()
	today := now.Format(constants.DateFormat)

	classes, err := m.store.GetAllClasses()
	if err != nil {
		m.loadErr = err
		return
	}
	m.classes = classes
	m.todays = stats.TodaysClasses(classes, now)

	records, err := m.store.GetAllAttendance()
	if err != nil {
		m.loadErr = err
		return
	}
	m.records = records
	m.marked = make(map[string]models.AttendanceStatus)
	for _, r := range records {
		if r.Date == today {
			m.marked[r.ClassID] = r.Status
		}
	}

	if m.assignments, err = m.store.GetAllAssignments(); err != nil {
		m.loadErr = err
		return
	}
	if m.events, err = m.store.GetAllEvents(); err != nil {
		m.loadErr = err
		return
	}

	if m.cursor >= len(m.todays) {
		m.cursor = 0
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
