// Package taskbar implements the strip of buttons mirroring minimized
// windows. The bar owns only window ids, in the order the windows were
// minimized; restoring is the window manager's job, the bar just maps
// clicks back to ids.
package taskbar

import (
	"github.com/dustin/go-humanize/english"

	"github.com/marbleid/termdesk/internal/geometry"
)

// Button layout, in cells.
const (
	ButtonWidth = 14
	ButtonGap   = 1
)

// Taskbar is the minimized-window strip pinned to the bottom of the
// viewport.
type Taskbar struct {
	bounds geometry.Rect
	ids    []string
}

// New creates a taskbar occupying the given bounds.
func New(bounds geometry.Rect) *Taskbar {
	return &Taskbar{bounds: bounds}
}

// Bounds returns the bar's rectangle.
func (t *Taskbar) Bounds() geometry.Rect { return t.bounds }

// Contains reports whether p falls inside the bar.
func (t *Taskbar) Contains(p geometry.Point) bool { return t.bounds.Contains(p) }

// Rescale pins the bar to the bottom of a resized viewport, keeping its
// height.
func (t *Taskbar) Rescale(viewW, viewH int) {
	t.bounds = geometry.Rect{X: 0, Y: viewH - t.bounds.H, W: viewW, H: t.bounds.H}
}

// Add appends a window id to the end of the strip. Ids already present keep
// their slot, so the order stays FIFO by minimize time.
func (t *Taskbar) Add(id string) {
	for _, have := range t.ids {
		if have == id {
			return
		}
	}
	t.ids = append(t.ids, id)
}

// Remove drops a window id from the strip. It reports whether the id was
// present.
func (t *Taskbar) Remove(id string) bool {
	for i, have := range t.ids {
		if have == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			return true
		}
	}
	return false
}

// IDs returns the ids in minimize order. Callers must not mutate the slice.
func (t *Taskbar) IDs() []string { return t.ids }

// Len returns the number of minimized windows on the bar.
func (t *Taskbar) Len() int { return len(t.ids) }

// ButtonRect returns the rectangle of the i-th button.
func (t *Taskbar) ButtonRect(i int) geometry.Rect {
	x := t.bounds.X + ButtonGap + i*(ButtonWidth+ButtonGap)
	return geometry.Rect{X: x, Y: t.bounds.Y, W: ButtonWidth, H: t.bounds.H}
}

// ButtonAt maps a point to the window id of the button under it.
func (t *Taskbar) ButtonAt(p geometry.Point) (string, bool) {
	if !t.bounds.Contains(p) {
		return "", false
	}
	for i, id := range t.ids {
		if t.ButtonRect(i).Contains(p) {
			return id, true
		}
	}
	return "", false
}

// Summary describes the bar's occupancy, e.g. "2 windows minimized".
func (t *Taskbar) Summary() string {
	if len(t.ids) == 0 {
		return "no windows minimized"
	}
	return english.Plural(len(t.ids), "window", "") + " minimized"
}
