package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cheerioskun/codevol/internal/navigation"
	"github.com/cheerioskun/codevol/internal/utils"
	"github.com/cheerioskun/codevol/ui/listing"
)

// AppModel represents the main application model
type AppModel struct {
	// Core state
	state *navigation.State

	// Components
	list *listing.Model
	keys KeyMap
	help help.Model

	// UI state
	width  int
	height int

	// Status
	status   string
	failed   bool
	quitting bool

	// Styles
	statusStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewAppModel creates a new application model
func NewAppModel(state *navigation.State) *AppModel {
	m := &AppModel{
		state:  state,
		list:   listing.NewModel(),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,

		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
	}
	m.resize()
	m.sync()
	return m
}

// Init implements tea.Model
func (m *AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		cmd, ok := m.keys.Command(msg)
		if !ok {
			return m, nil
		}
		return m, m.apply(cmd)
	}

	return m, nil
}

// apply runs exactly one navigation command and refreshes the view
func (m *AppModel) apply(cmd navigation.Command) tea.Cmd {
	changed, err := m.state.Apply(cmd)
	if err != nil {
		utils.Warning("%s refused: %v", cmd, err)
		m.status = err.Error()
		m.failed = true
	} else {
		m.failed = false
		m.status = ""
	}

	if m.state.Exited() {
		m.quitting = true
		return tea.Quit
	}

	if changed {
		m.sync()
	}
	return nil
}

// sync pushes the navigation state into the listing component
func (m *AppModel) sync() {
	selected, ok := m.state.Selected()
	if !ok {
		selected = -1
	}
	m.list.SetData(m.state.Current(), m.state.Listing(), selected)
}

func (m *AppModel) resize() {
	// Status and help lines
	m.list.SetSize(m.width, m.height-2)
}

// State returns the navigation state driven by this model
func (m *AppModel) State() *navigation.State {
	return m.state
}

// Status returns the current status line text
func (m *AppModel) Status() string {
	return m.status
}

// View implements tea.Model
func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

func (m *AppModel) renderStatus() string {
	if m.failed {
		return m.errorStyle.Render(m.status)
	}

	n := len(m.state.Listing())
	pos := 0
	if i, ok := m.state.Selected(); ok {
		pos = i + 1
	}

	if m.state.AtRoot() {
		return m.statusStyle.Render(fmt.Sprintf("%d/%d • at root", pos, n))
	}
	return m.statusStyle.Render(fmt.Sprintf("%d/%d • root: %s", pos, n, m.state.Root()))
}
