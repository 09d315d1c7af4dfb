package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/theme"
	"github.com/marbleid/termdesk/internal/wm"
)

func newRenderFixture(t *testing.T) (*wm.Manager, *Compositor, *contentStore) {
	t.Helper()
	mgr := wm.NewManager(wm.Options{
		ViewportW: 80, ViewportH: 24,
		MinWindowW: 20, MinWindowH: 6,
		DefaultWindowW: 40, DefaultWindowH: 10,
		TaskbarHeight: 1, MenuPageSize: 5,
	}, nil)

	contents := newContentStore()
	contents.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	mgr.OnWindowCreated = func(id string) { contents.Allocate(id) }
	mgr.OnWindowDestroyed = func(id string) { contents.Release(id) }

	comp := NewCompositor(theme.Default())
	comp.Resize(80, 24)
	return mgr, comp, contents
}

func TestRender_FrameShape(t *testing.T) {
	mgr, comp, contents := newRenderFixture(t)

	frame := comp.Render(mgr, contents, "", false)
	lines := strings.Split(frame, "\n")
	assert.Len(t, lines, 24)
}

func TestRender_ShowsWindowChrome(t *testing.T) {
	mgr, comp, contents := newRenderFixture(t)
	_, err := mgr.CreateWindow("Notes", geometry.Rect{X: 5, Y: 3, W: 30, H: 10})
	require.NoError(t, err)

	frame := comp.Render(mgr, contents, "", false)
	assert.Contains(t, frame, "Notes")
	assert.Contains(t, frame, string(glyphClose))
	assert.Contains(t, frame, string(glyphMaximize))
	assert.Contains(t, frame, string(glyphResize))
	assert.Contains(t, frame, "opened 2 minutes ago")
}

func TestRender_TaskbarSummaryAndButtons(t *testing.T) {
	mgr, comp, contents := newRenderFixture(t)
	id, err := mgr.CreateWindow("Scratch", geometry.Rect{X: 5, Y: 3, W: 30, H: 10})
	require.NoError(t, err)

	frame := comp.Render(mgr, contents, "", false)
	assert.Contains(t, frame, "no windows minimized")

	require.NoError(t, mgr.Minimize(id))
	frame = comp.Render(mgr, contents, "", false)
	assert.Contains(t, frame, "1 window minimized")
	assert.Contains(t, frame, "Scratch", "minimized window keeps a taskbar button")
	assert.NotContains(t, frame, string(glyphResize), "minimized window body is not drawn")
}

func TestRender_StatusMessageWins(t *testing.T) {
	mgr, comp, contents := newRenderFixture(t)

	frame := comp.Render(mgr, contents, "layout saved", false)
	assert.Contains(t, frame, "layout saved")
	assert.NotContains(t, frame, "no windows minimized")
}

func TestRender_MenuRowsAndPagination(t *testing.T) {
	mgr, comp, contents := newRenderFixture(t)
	id, err := mgr.CreateWindow("w", geometry.Rect{X: 2, Y: 2, W: 40, H: 12})
	require.NoError(t, err)

	w, err := mgr.Window(id)
	require.NoError(t, err)
	for i := 0; i < 7; i++ {
		w.Options.AddNumbered()
	}
	require.NoError(t, mgr.OpenMenu(geometry.Point{X: 10, Y: 4}, id))

	frame := comp.Render(mgr, contents, "", false)
	assert.Contains(t, frame, "RGB")
	assert.Contains(t, frame, "Help")
	assert.Contains(t, frame, "New Option")
	assert.Contains(t, frame, "Option 1")
	assert.Contains(t, frame, "1/2")
	assert.NotContains(t, frame, "Option 6", "second page entries are hidden")
}

func TestRender_TopmostWindowOwnsOverlap(t *testing.T) {
	mgr, comp, contents := newRenderFixture(t)
	_, err := mgr.CreateWindow("Under", geometry.Rect{X: 2, Y: 2, W: 30, H: 10})
	require.NoError(t, err)
	// Fully covers the first window's title.
	_, err = mgr.CreateWindow("Over", geometry.Rect{X: 0, Y: 0, W: 40, H: 14})
	require.NoError(t, err)

	frame := comp.Render(mgr, contents, "", false)
	assert.Contains(t, frame, "Over")
	// "Under" appears only in the occluded window's content, which the
	// covering window hides entirely.
	count := strings.Count(frame, "Under")
	assert.Zero(t, count)
}

func TestPlaceOverlay_PlainStrings(t *testing.T) {
	bg := strings.Join([]string{
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := placeOverlay(3, 1, "XX", bg)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "...XX.....", lines[1])
	assert.Equal(t, "..........", lines[2])
}

func TestPlaceOverlay_MultilineForeground(t *testing.T) {
	bg := strings.Join([]string{"aaaaaa", "bbbbbb", "cccccc"}, "\n")
	got := placeOverlay(1, 0, "12\n34", bg)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "a12aaa", lines[0])
	assert.Equal(t, "b34bbb", lines[1])
	assert.Equal(t, "cccccc", lines[2])
}
