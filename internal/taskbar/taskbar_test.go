package taskbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marbleid/termdesk/internal/geometry"
)

func newBar() *Taskbar {
	return New(geometry.Rect{X: 0, Y: 27, W: 120, H: 3})
}

func TestTaskbar_FIFOOrder(t *testing.T) {
	tb := newBar()
	tb.Add("a")
	tb.Add("b")
	tb.Add("c")
	tb.Add("b") // duplicate keeps its slot

	assert.Equal(t, []string{"a", "b", "c"}, tb.IDs())

	assert.True(t, tb.Remove("b"))
	assert.False(t, tb.Remove("b"))
	assert.Equal(t, []string{"a", "c"}, tb.IDs())
}

func TestTaskbar_ButtonAt(t *testing.T) {
	tb := newBar()
	tb.Add("a")
	tb.Add("b")

	// First button starts one cell in.
	id, ok := tb.ButtonAt(geometry.Point{X: 1, Y: 28})
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	id, ok = tb.ButtonAt(geometry.Point{X: 1 + ButtonWidth + ButtonGap, Y: 28})
	assert.True(t, ok)
	assert.Equal(t, "b", id)

	// Gap between buttons hits nothing.
	_, ok = tb.ButtonAt(geometry.Point{X: 1 + ButtonWidth, Y: 28})
	assert.False(t, ok)

	// Outside the bar entirely.
	_, ok = tb.ButtonAt(geometry.Point{X: 1, Y: 5})
	assert.False(t, ok)
}

func TestTaskbar_Rescale(t *testing.T) {
	tb := newBar()
	tb.Rescale(200, 60)
	assert.Equal(t, geometry.Rect{X: 0, Y: 57, W: 200, H: 3}, tb.Bounds())
}

func TestTaskbar_Summary(t *testing.T) {
	tb := newBar()
	assert.Equal(t, "no windows minimized", tb.Summary())
	tb.Add("a")
	assert.Equal(t, "1 window minimized", tb.Summary())
	tb.Add("b")
	assert.Equal(t, "2 windows minimized", tb.Summary())
}
