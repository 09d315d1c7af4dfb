package wm

import "github.com/marbleid/termdesk/internal/geometry"

// dragMode is the state of the drag/resize machine. At most one window is
// manipulated at a time.
type dragMode int

const (
	dragNone dragMode = iota
	dragMove
	dragResize
)

// dragState exists only during an active manipulation. grabOffset is the
// pointer-to-origin delta captured at grab time; originSize the window size
// at grab time (resize only).
type dragState struct {
	mode       dragMode
	windowID   string
	grabOffset geometry.Point
	grabPoint  geometry.Point
	originSize geometry.Point
}

// DragActive reports whether a drag or resize is in progress.
func (m *Manager) DragActive() bool { return m.drag.mode != dragNone }

// CancelDrag forces the state machine back to idle. Called on overlay open
// and whenever the manipulated window is destroyed or loses focus, so a
// manipulation is never left dangling.
func (m *Manager) CancelDrag() {
	m.drag = dragState{}
}

// startMove enters the dragging state. An already active manipulation is
// forced to idle first; with single-pointer routing that should not occur.
func (m *Manager) startMove(w *Window, p geometry.Point) {
	m.CancelDrag()
	m.drag = dragState{
		mode:       dragMove,
		windowID:   w.ID,
		grabOffset: geometry.Point{X: p.X - w.Rect.X, Y: p.Y - w.Rect.Y},
	}
}

// startResize enters the resizing state, anchored at the window's top-left.
func (m *Manager) startResize(w *Window, p geometry.Point) {
	m.CancelDrag()
	m.drag = dragState{
		mode:       dragResize,
		windowID:   w.ID,
		grabPoint:  p,
		originSize: geometry.Point{X: w.Rect.W, Y: w.Rect.H},
	}
}

// handleDragEvent consumes pointer events while a manipulation is active.
func (m *Manager) handleDragEvent(ev Event) {
	w, ok := m.byID[m.drag.windowID]
	if !ok {
		m.CancelDrag()
		return
	}

	switch ev.Kind {
	case EventPointerMove:
		switch m.drag.mode {
		case dragMove:
			m.applyMove(w, ev.Pos)
		case dragResize:
			m.applyResize(w, ev.Pos)
		}
	case EventPointerUp:
		m.CancelDrag()
	case EventPointerDown:
		// A second press mid-drag means the release was lost; re-grab
		// cleanly on the next hit-test pass.
		m.CancelDrag()
		m.routeDesktop(ev)
	}
}

// applyMove repositions the window from the current pointer position. The
// position is always pointer minus grab offset, so the final rect depends
// only on the total pointer delta, not the event path. Clamps keep the
// title bar reachable: it can never leave the top of the viewport or sink
// under the taskbar, and at least one column stays on screen.
func (m *Manager) applyMove(w *Window, p geometry.Point) {
	x := p.X - m.drag.grabOffset.X
	y := p.Y - m.drag.grabOffset.Y

	x = geometry.Clamp(x, -(w.Rect.W - 1), m.viewW-1)
	y = geometry.Clamp(y, 0, m.usableHeight()-1)

	w.Rect.X = x
	w.Rect.Y = y
}

// applyResize grows or shrinks the window from its anchored top-left
// corner, clamped to the configured minimum. Requests below the minimum
// yield exactly the minimum, never an error.
func (m *Manager) applyResize(w *Window, p geometry.Point) {
	nw := m.drag.originSize.X + (p.X - m.drag.grabPoint.X)
	nh := m.drag.originSize.Y + (p.Y - m.drag.grabPoint.Y)

	if nw < m.opts.MinWindowW {
		nw = m.opts.MinWindowW
	}
	if nh < m.opts.MinWindowH {
		nh = m.opts.MinWindowH
	}

	w.Rect.W = nw
	w.Rect.H = nh
}
