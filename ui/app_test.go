package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/codevol/internal/navigation"
	"github.com/cheerioskun/codevol/internal/scanner"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path string, lines int) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(strings.Repeat("x\n", lines)), 0644))
}

func newApp(t *testing.T) *AppModel {
	t.Helper()
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/p/a.ts", 3)
	writeFile(t, fs, "/p/sub/b.ts", 5)
	writeFile(t, fs, "/p/sub/c.txt", 2)

	agg := scanner.NewAggregator(fs, scanner.NewExtensionFilter(nil), nil)
	state, err := navigation.New(agg, navigation.NewResolver(fs), "/p")
	require.NoError(t, err)
	return NewAppModel(state)
}

func press(m *AppModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapCommands(t *testing.T) {
	keys := DefaultKeyMap()
	cases := []struct {
		msg  tea.KeyMsg
		want navigation.Command
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, navigation.SelectPrev},
		{runes("k"), navigation.SelectPrev},
		{tea.KeyMsg{Type: tea.KeyDown}, navigation.SelectNext},
		{runes("j"), navigation.SelectNext},
		{tea.KeyMsg{Type: tea.KeyLeft}, navigation.MoveToParent},
		{runes("h"), navigation.MoveToParent},
		{tea.KeyMsg{Type: tea.KeyRight}, navigation.MoveToChild},
		{runes("l"), navigation.MoveToChild},
		{runes("q"), navigation.Exit},
		{tea.KeyMsg{Type: tea.KeyEsc}, navigation.Exit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, navigation.Exit},
	}
	for _, c := range cases {
		got, ok := keys.Command(c.msg)
		require.True(t, ok, c.msg.String())
		assert.Equal(t, c.want, got, c.msg.String())
	}

	_, ok := keys.Command(runes("x"))
	assert.False(t, ok)
}

func TestNavigateAndRender(t *testing.T) {
	m := newApp(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})

	out := m.View()
	assert.Contains(t, out, "Code Volume - /p")
	assert.Contains(t, out, "sub/")
	assert.Contains(t, out, "1/2 • at root")

	// Down then up returns to the directory row
	assert.Nil(t, press(m, tea.KeyMsg{Type: tea.KeyDown}))
	assert.Contains(t, m.View(), "2/2")
	press(m, tea.KeyMsg{Type: tea.KeyUp})

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "/p/sub", m.State().Current())
	out = m.View()
	assert.Contains(t, out, "Code Volume - /p/sub")
	assert.Contains(t, out, "b.ts")
	assert.Contains(t, out, "root: /p")

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "/p", m.State().Current())

	// Refused at the root, nothing changes
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "/p", m.State().Current())
	assert.Empty(t, m.Status())
}

func TestUnboundKeyIgnored(t *testing.T) {
	m := newApp(t)
	before := m.View()
	assert.Nil(t, press(m, runes("x")))
	assert.Equal(t, before, m.View())
}

func TestQuit(t *testing.T) {
	m := newApp(t)
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.State().Exited())
	assert.Empty(t, m.View())
}

func TestRebuildFailureShowsStatus(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/p/sub/b.ts", 5)
	agg := scanner.NewAggregator(fs, nil, nil)
	state, err := navigation.New(agg, navigation.NewResolver(fs), "/p")
	require.NoError(t, err)
	m := NewAppModel(state)

	require.NoError(t, fs.RemoveAll("/p/sub"))
	assert.Nil(t, press(m, tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, "/p", m.State().Current())
	assert.Contains(t, m.Status(), "/p/sub")
	assert.Contains(t, m.View(), m.Status())
}
