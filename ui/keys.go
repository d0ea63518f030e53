package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/codevol/internal/navigation"
)

// KeyMap binds keys to navigation commands
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Parent key.Binding
	Child  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the arrow-key bindings with vim aliases
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "select"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "select"),
		),
		Parent: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "parent"),
		),
		Child: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "child"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command maps a key press to its navigation command
func (k KeyMap) Command(msg tea.KeyMsg) (navigation.Command, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return navigation.SelectPrev, true
	case key.Matches(msg, k.Down):
		return navigation.SelectNext, true
	case key.Matches(msg, k.Parent):
		return navigation.MoveToParent, true
	case key.Matches(msg, k.Child):
		return navigation.MoveToChild, true
	case key.Matches(msg, k.Quit):
		return navigation.Exit, true
	}
	return 0, false
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Parent, k.Child, k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Parent, k.Child},
		{k.Quit},
	}
}
