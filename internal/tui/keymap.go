package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	StartPause key.Binding
	Reset      key.Binding
	Homeoffice key.Binding
	Answer     key.Binding
	ResetAll   key.Binding
	Quit       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		StartPause: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset timer"),
		),
		Homeoffice: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "mark homeoffice"),
		),
		Answer: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show answer"),
		),
		ResetAll: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset all data"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
