package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Help     key.Binding
	Present  key.Binding
	Absent   key.Binding
	Late     key.Binding
	Excused  key.Binding
	Refresh  key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit},
		{k.Up, k.Down, k.Present, k.Absent, k.Late, k.Excused, k.Refresh, k.Help},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Present: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "mark present"),
		),
		Absent: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "mark absent"),
		),
		Late: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "mark late"),
		),
		Excused: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "mark excused"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}
