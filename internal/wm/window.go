package wm

import (
	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/menu"
)

// RGB is a window's chrome color, each channel in [0, 255].
type RGB struct {
	R, G, B uint8
}

// DefaultChrome is the chrome color new windows start with.
var DefaultChrome = RGB{R: 100, G: 100, B: 250}

// Window is one manageable surface. The manager owns the collection and all
// geometry/focus invariants. Content is an opaque handle positioned on the
// window's behalf and never dereferenced here; its lifecycle belongs to
// whoever registered the creation hooks.
type Window struct {
	// ID is stable and unique for the session.
	ID string

	Rect  geometry.Rect
	Title string

	// Minimized windows keep their slot in the paint order but are
	// excluded from z-ranking, hit-testing and rendering.
	Minimized bool

	// Maximized windows remember the rect to restore to.
	Maximized bool
	prevRect  geometry.Rect

	// Chrome is the window's body color, edited by the RGB dialog.
	Chrome RGB

	// Content is the caller-owned opaque handle.
	Content int

	// Options are the window's dynamic context-menu entries. Menus hold a
	// reference to this list so edits survive menu dismissal.
	Options *menu.List
}

// PrevRect returns the geometry saved when the window was maximized.
func (w *Window) PrevRect() geometry.Rect { return w.prevRect }
