package listing

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/cheerioskun/codevol/internal/models"
	"github.com/dustin/go-humanize"
)

const highlightSymbol = ">> "

// Model renders a directory listing with the selected row kept in view
type Model struct {
	// Data
	current  string
	entries  models.Listing
	selected int
	total    int64

	// UI state
	width    int
	height   int
	viewport viewport.Model

	// Styles
	titleStyle    lipgloss.Style
	dirStyle      lipgloss.Style
	fileStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	summaryStyle  lipgloss.Style
	emptyStyle    lipgloss.Style
}

// NewModel creates a new listing model
func NewModel() *Model {
	vp := viewport.New(40, 6) // Initial size, will be updated in SetSize
	vp.SetContent("")

	return &Model{
		selected: -1,
		width:    40,
		height:   10,
		viewport: vp,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),

		dirStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")),

		fileStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")),

		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Reverse(true),

		summaryStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		emptyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true),
	}
}

// SetData replaces what is shown. selected is -1 when nothing is selected.
func (m *Model) SetData(current string, entries models.Listing, selected int) {
	m.current = current
	m.entries = entries
	m.selected = selected
	m.total = entries.Total()
	m.updateViewportContent()
}

// SetSize sets the area available to the listing
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	// Title and summary take one line each
	viewportHeight := height - 2
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = viewportHeight

	m.updateViewportContent()
}

// Selected returns the highlighted row index
func (m *Model) Selected() int {
	return m.selected
}

// YOffset returns the first visible row
func (m *Model) YOffset() int {
	return m.viewport.YOffset
}

// View renders the component
func (m *Model) View() string {
	header := m.titleStyle.Render(fmt.Sprintf("Code Volume - %s", m.current))

	var content string
	if len(m.entries) == 0 {
		content = m.emptyStyle.Render("No matching files")
	} else {
		content = m.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, m.renderSummary())
}

func (m *Model) updateViewportContent() {
	if len(m.entries) == 0 {
		m.viewport.SetContent("")
		m.viewport.GotoTop()
		return
	}
	m.viewport.SetContent(m.renderRows())
	m.keepSelectionVisible()
}

func (m *Model) keepSelectionVisible() {
	if m.selected < 0 {
		m.viewport.GotoTop()
		return
	}
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	switch {
	case m.selected < top:
		m.viewport.SetYOffset(m.selected)
	case m.selected > bottom:
		m.viewport.SetYOffset(m.selected - m.viewport.Height + 1)
	}
}

func (m *Model) renderRows() string {
	lines := make([]string, 0, len(m.entries))

	for i, e := range m.entries {
		name := e.Name
		style := m.fileStyle
		if e.IsDir() {
			name += "/"
			style = m.dirStyle
		}

		prefix := strings.Repeat(" ", len(highlightSymbol))
		if i == m.selected {
			prefix = highlightSymbol
			style = style.Inherit(m.selectedStyle)
		}

		line := fmt.Sprintf("%s%9s %5.1f%%  %s",
			prefix,
			humanize.Comma(e.Count),
			models.Share(e.Count, m.total),
			name,
		)
		lines = append(lines, style.Render(line))
	}

	return strings.Join(lines, "\n")
}

func (m *Model) renderSummary() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.summaryStyle.Render(fmt.Sprintf("Total: %s lines • %d entries",
		humanize.Comma(m.total), len(m.entries)))
}
