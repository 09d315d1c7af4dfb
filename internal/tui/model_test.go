package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/marbleid/termdesk/internal/config"
	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/theme"
	"github.com/marbleid/termdesk/internal/wm"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(config.DefaultConfig(), theme.Default(), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestModel_WindowSizeInitializesViewport(t *testing.T) {
	m := NewModel(config.DefaultConfig(), theme.Default(), nil)
	assert.Equal(t, "initializing...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	w, h := m.mgr.Viewport()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
	assert.NotEqual(t, "initializing...", m.View())
}

func TestModel_KeyCreatesWindowAndTracksContent(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	require.Len(t, m.mgr.Windows(), 1)
	assert.Equal(t, 1, m.contents.Len(), "creation hook allocates content")

	id := m.mgr.Windows()[0].ID
	require.NoError(t, m.mgr.CloseWindow(id))
	assert.Zero(t, m.contents.Len(), "destruction hook releases content")
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_MouseDrivesManager(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	w := m.mgr.Windows()[0]
	start := w.Rect

	// Grab the title bar and drag right.
	m.Update(tea.MouseMsg{X: start.X + 1, Y: start.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.mgr.DragActive())
	m.Update(tea.MouseMsg{X: start.X + 11, Y: start.Y, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: start.X + 11, Y: start.Y, Action: tea.MouseActionRelease})

	assert.Equal(t, start.X+10, w.Rect.X)
	assert.False(t, m.mgr.DragActive())
}

func TestModel_RightClickOpensMenu(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	w := m.mgr.Windows()[0]

	m.Update(tea.MouseMsg{X: w.Rect.X + 2, Y: w.Rect.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	assert.NotNil(t, m.mgr.ActiveMenu())
}

func TestModel_SnapshotWritesYAML(t *testing.T) {
	m := newTestModel(t)
	dir := t.TempDir()
	m.cfg.Layout.Path = filepath.Join(dir, "layout.yaml")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	msg := cmd()
	st, ok := msg.(statusMsg)
	require.True(t, ok)
	assert.False(t, st.isErr, st.text)

	data, err := os.ReadFile(m.cfg.Layout.Path)
	require.NoError(t, err)

	var snap wm.Snapshot
	require.NoError(t, yaml.Unmarshal(data, &snap))
	assert.Equal(t, 120, snap.ViewportW)
	require.Len(t, snap.Windows, 1)
	assert.Equal(t, "Window 1", snap.Windows[0].Title)
}

func TestModel_SnapshotKeyIgnoredWhileEditing(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	id, _ := m.mgr.FocusedID()
	w, err := m.mgr.Window(id)
	require.NoError(t, err)

	// Open the menu and click "New Option" to get the editor popup.
	require.NoError(t, m.mgr.OpenMenu(geometry.Point{X: w.Rect.X + 2, Y: w.Rect.Y + 2}, id))
	b := m.mgr.ActiveMenu().Bounds()
	m.Update(tea.MouseMsg{X: b.X + 1, Y: b.Y + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, m.mgr.ActivePopup())

	// Ctrl+S now belongs to the editor, not the snapshot writer.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Nil(t, m.mgr.ActivePopup(), "editor saved and closed")
}

func TestModel_ThemeReload(t *testing.T) {
	ch := make(chan *theme.Theme, 1)
	m := NewModel(config.DefaultConfig(), theme.Default(), ch)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	th := theme.Default()
	th.Desktop.Background = "#000000"
	_, cmd := m.Update(themeMsg{theme: th})
	require.NotNil(t, cmd)
	assert.Equal(t, th, m.comp.th)
}

func TestTranslateMouse(t *testing.T) {
	ev, ok := translateMouse(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	assert.Equal(t, wm.EventPointerDown, ev.Kind)
	assert.Equal(t, wm.ButtonLeft, ev.Button)
	assert.Equal(t, 3, ev.Pos.X)

	ev, ok = translateMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.True(t, ok)
	assert.Equal(t, wm.ButtonRight, ev.Button)

	ev, ok = translateMouse(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	require.True(t, ok)
	assert.Equal(t, wm.EventPointerMove, ev.Kind)

	_, ok = translateMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle})
	assert.False(t, ok)
}
