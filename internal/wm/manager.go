// Package wm implements the window manager core: the ordered window
// collection, z-order and focus, the per-event routing policy, the
// drag/resize state machine and the minimize/restore lifecycle. Rendering
// and the event pump live elsewhere; the manager consumes abstract events
// and mutates state synchronously before the next frame is drawn.
package wm

import (
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/menu"
	"github.com/marbleid/termdesk/internal/taskbar"
)

// Options configures a Manager.
type Options struct {
	ViewportW, ViewportH int
	MinWindowW           int
	MinWindowH           int
	DefaultWindowW       int
	DefaultWindowH       int
	TaskbarHeight        int
	MenuPageSize         int
}

// PopupFactory builds the popup dialogs the manager opens from menu
// selections. The manager stays ignorant of how dialogs render or edit;
// it only owns the slot they occupy.
type PopupFactory interface {
	RGBEditor(target *Window) Overlay
	HelpViewer() Overlay
	TextEditor(entry *menu.Entry) Overlay
}

// Manager owns the window collection, the single overlay slot and the
// top-level routing policy. Windows are kept in paint order, bottom to top;
// the z-index of a visible window is its rank among visible windows in that
// slice, which keeps ranks dense with no extra bookkeeping.
type Manager struct {
	opts    Options
	factory PopupFactory

	viewW, viewH int
	windows      []*Window
	byID         map[string]*Window
	focused      string

	taskbar *taskbar.Taskbar

	// At most one overlay is live; menu and popup never coexist.
	menu  *menu.Menu
	popup Overlay

	drag dragState

	fullscreen           bool
	windowedW, windowedH int
	fullW, fullH         int

	lastPointer geometry.Point
	titleSeq    int

	// Lifecycle hooks let an external owner allocate and free window
	// content; the manager never looks at content itself.
	OnWindowCreated   func(id string)
	OnWindowDestroyed func(id string)
}

// NewManager creates a manager for the given viewport. factory may be nil,
// in which case menu selections that would open a dialog simply close the
// menu (useful in tests).
func NewManager(opts Options, factory PopupFactory) *Manager {
	if opts.MenuPageSize < 1 {
		opts.MenuPageSize = 5
	}
	m := &Manager{
		opts:    opts,
		factory: factory,
		viewW:   opts.ViewportW,
		viewH:   opts.ViewportH,
		byID:    make(map[string]*Window),
		fullW:   opts.ViewportW,
		fullH:   opts.ViewportH,
	}
	m.taskbar = taskbar.New(geometry.Rect{
		X: 0, Y: opts.ViewportH - opts.TaskbarHeight,
		W: opts.ViewportW, H: opts.TaskbarHeight,
	})
	return m
}

// SetFactory installs the popup factory after construction. Factories often
// need the manager's viewport, so they cannot always exist first.
func (m *Manager) SetFactory(f PopupFactory) { m.factory = f }

// Viewport returns the current viewport size.
func (m *Manager) Viewport() (w, h int) { return m.viewW, m.viewH }

// usableHeight is the viewport height minus the taskbar strip.
func (m *Manager) usableHeight() int { return m.viewH - m.opts.TaskbarHeight }

// Taskbar returns the minimized-window strip.
func (m *Manager) Taskbar() *taskbar.Taskbar { return m.taskbar }

// ActiveMenu returns the open context menu, or nil.
func (m *Manager) ActiveMenu() *menu.Menu { return m.menu }

// ActivePopup returns the open popup dialog, or nil.
func (m *Manager) ActivePopup() Overlay { return m.popup }

// Window looks up a window by id.
func (m *Manager) Window(id string) (*Window, error) {
	w, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, id)
	}
	return w, nil
}

// Windows returns all windows in paint order, bottom to top.
func (m *Manager) Windows() []*Window { return m.windows }

// VisibleWindows returns the non-minimized windows in paint order.
func (m *Manager) VisibleWindows() []*Window {
	visible := make([]*Window, 0, len(m.windows))
	for _, w := range m.windows {
		if !w.Minimized {
			visible = append(visible, w)
		}
	}
	return visible
}

// FocusedID returns the focused window id, if any window is focused.
func (m *Manager) FocusedID() (string, bool) {
	return m.focused, m.focused != ""
}

// ZIndex returns the window's rank among visible windows, topmost highest.
// Minimized windows have no rank and yield -1.
func (m *Manager) ZIndex(id string) (int, error) {
	if _, err := m.Window(id); err != nil {
		return 0, err
	}
	z := 0
	for _, w := range m.windows {
		if w.Minimized {
			continue
		}
		if w.ID == id {
			return z, nil
		}
		z++
	}
	return -1, nil
}

// CreateWindow appends a new window with the given title and geometry,
// raises it above all others and focuses it. The creation hook fires after
// the window is registered.
func (m *Manager) CreateWindow(title string, r geometry.Rect) (string, error) {
	if r.W < m.opts.MinWindowW || r.H < m.opts.MinWindowH {
		return "", fmt.Errorf("%w: %dx%d < %dx%d",
			ErrInvalidGeometry, r.W, r.H, m.opts.MinWindowW, m.opts.MinWindowH)
	}

	w := &Window{
		ID:      ulid.Make().String(),
		Rect:    r,
		Title:   title,
		Chrome:  DefaultChrome,
		Options: menu.NewList(),
	}
	m.windows = append(m.windows, w)
	m.byID[w.ID] = w
	// The new window takes focus; a drag live on the old focus must not
	// keep tracking the pointer.
	m.CancelDrag()
	m.focused = w.ID

	slog.Debug("window created", "id", w.ID, "title", title, "rect", r)
	if m.OnWindowCreated != nil {
		m.OnWindowCreated(w.ID)
	}
	return w.ID, nil
}

// CreateWindowAuto opens a window with an auto-generated title at the last
// pointer position, clamped so it stays on screen.
func (m *Manager) CreateWindowAuto() (string, error) {
	m.titleSeq++
	r := geometry.Rect{
		X: m.lastPointer.X, Y: m.lastPointer.Y,
		W: m.opts.DefaultWindowW, H: m.opts.DefaultWindowH,
	}
	r.X = geometry.Clamp(r.X, 0, max(0, m.viewW-r.W))
	r.Y = geometry.Clamp(r.Y, 0, max(0, m.usableHeight()-r.H))
	return m.CreateWindow(fmt.Sprintf("Window %d", m.titleSeq), r)
}

// CloseWindow destroys a window. A drag targeting it is cancelled, a menu
// opened on it is closed, and focus moves to the next topmost visible
// window. The destruction hook fires after the window is gone.
func (m *Manager) CloseWindow(id string) error {
	w, err := m.Window(id)
	if err != nil {
		return err
	}

	if m.drag.windowID == id {
		m.CancelDrag()
	}
	if m.menu != nil && m.menu.WindowID() == id {
		m.menu = nil
	}
	m.taskbar.Remove(id)

	for i, have := range m.windows {
		if have == w {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			break
		}
	}
	delete(m.byID, id)

	if m.focused == id {
		m.focusTopmost()
	}

	slog.Debug("window closed", "id", id)
	if m.OnWindowDestroyed != nil {
		m.OnWindowDestroyed(id)
	}
	return nil
}

// raise moves the window to the top of the paint order and focuses it. A
// drag targeting a different window loses focus and is cancelled.
func (m *Manager) raise(w *Window) {
	if m.drag.mode != dragNone && m.drag.windowID != w.ID {
		m.CancelDrag()
	}
	for i, have := range m.windows {
		if have == w {
			m.windows = append(m.windows[:i], m.windows[i+1:]...)
			m.windows = append(m.windows, w)
			break
		}
	}
	m.focused = w.ID
}

// Focus raises the window and gives it focus.
func (m *Manager) Focus(id string) error {
	w, err := m.Window(id)
	if err != nil {
		return err
	}
	m.raise(w)
	return nil
}

// focusTopmost transfers focus to the highest visible window, or to none.
func (m *Manager) focusTopmost() {
	for i := len(m.windows) - 1; i >= 0; i-- {
		if !m.windows[i].Minimized {
			m.focused = m.windows[i].ID
			return
		}
	}
	m.focused = ""
}

// Minimize hides the window and appends it to the taskbar. If it was
// focused, focus transfers to the next topmost visible window. Ranks among
// the remaining visible windows stay dense because rank is positional.
func (m *Manager) Minimize(id string) error {
	w, err := m.Window(id)
	if err != nil {
		return err
	}
	if w.Minimized {
		return nil
	}

	if m.drag.windowID == id {
		m.CancelDrag()
	}

	w.Minimized = true
	m.taskbar.Add(id)
	if m.focused == id {
		m.focusTopmost()
	}
	slog.Debug("window minimized", "id", id)
	return nil
}

// Restore takes the window off the taskbar, raises it to the top and
// focuses it.
func (m *Manager) Restore(id string) error {
	w, err := m.Window(id)
	if err != nil {
		return err
	}
	if !w.Minimized {
		return nil
	}

	w.Minimized = false
	m.taskbar.Remove(id)
	m.raise(w)
	slog.Debug("window restored", "id", id)
	return nil
}

// ToggleMaximize grows the window to the usable viewport, or restores the
// geometry saved when it was maximized. Either way the window is raised and
// focused.
func (m *Manager) ToggleMaximize(id string) error {
	w, err := m.Window(id)
	if err != nil {
		return err
	}

	if w.Maximized {
		w.Rect = w.prevRect
		w.Maximized = false
	} else {
		w.prevRect = w.Rect
		w.Rect = geometry.Rect{X: 0, Y: 0, W: m.viewW, H: m.usableHeight()}
		w.Maximized = true
	}
	m.raise(w)
	return nil
}

// ResizeViewport rescales every window and the taskbar by the ratio of the
// new viewport to the old, clamping so no window's origin leaves the
// visible area and no window drops below the minimum size.
func (m *Manager) ResizeViewport(newW, newH int) {
	if newW <= 0 || newH <= 0 || (newW == m.viewW && newH == m.viewH) {
		return
	}
	oldW, oldH := m.viewW, m.viewH

	for _, w := range m.windows {
		w.Rect = w.Rect.Scale(oldW, oldH, newW, newH)
		if w.Rect.W < m.opts.MinWindowW {
			w.Rect.W = m.opts.MinWindowW
		}
		if w.Rect.H < m.opts.MinWindowH {
			w.Rect.H = m.opts.MinWindowH
		}
		w.Rect.X = geometry.Clamp(w.Rect.X, 0, newW-1)
		w.Rect.Y = geometry.Clamp(w.Rect.Y, 0, newH-m.opts.TaskbarHeight-1)
		if w.Maximized {
			w.prevRect = w.prevRect.Scale(oldW, oldH, newW, newH)
		}
	}

	m.viewW, m.viewH = newW, newH
	m.taskbar.Rescale(newW, newH)
	slog.Debug("viewport resized", "w", newW, "h", newH)
}

// SetFullscreenSize records the size the viewport grows to when fullscreen
// toggles on. The driver updates it when the terminal resizes.
func (m *Manager) SetFullscreenSize(w, h int) {
	m.fullW, m.fullH = w, h
	if m.fullscreen {
		m.ResizeViewport(w, h)
	}
}

// Fullscreen reports whether the fullscreen flag is set.
func (m *Manager) Fullscreen() bool { return m.fullscreen }

// ToggleFullscreen flips the fullscreen flag and rescales the viewport:
// entering saves the windowed size and grows to the fullscreen size,
// leaving restores it.
func (m *Manager) ToggleFullscreen() {
	if m.fullscreen {
		m.fullscreen = false
		m.ResizeViewport(m.windowedW, m.windowedH)
		return
	}
	m.windowedW, m.windowedH = m.viewW, m.viewH
	m.fullscreen = true
	m.ResizeViewport(m.fullW, m.fullH)
}

// OpenMenu opens a context menu for the window at the anchor point. Any
// active drag is cancelled and any other overlay replaced; the menu
// references the window's dynamic entries so edits persist after it closes.
func (m *Manager) OpenMenu(at geometry.Point, windowID string) error {
	w, err := m.Window(windowID)
	if err != nil {
		return err
	}
	m.CancelDrag()
	m.popup = nil
	m.menu = menu.New(at, windowID, w.Options, m.opts.MenuPageSize)
	return nil
}

// SetPopup installs a popup dialog in the overlay slot, displacing any menu
// and cancelling any active drag.
func (m *Manager) SetPopup(p Overlay) {
	m.CancelDrag()
	m.menu = nil
	m.popup = p
}

// CloseOverlay empties the overlay slot.
func (m *Manager) CloseOverlay() {
	m.menu = nil
	m.popup = nil
}

// RouteEvent is the single entry point for one input event. Routing
// priority: live popup first (it owns all input), then the context menu,
// then global keyboard shortcuts, then an in-progress drag, and finally
// hit-testing over visible windows top to bottom.
func (m *Manager) RouteEvent(ev Event) {
	if ev.Kind == EventPointerDown || ev.Kind == EventPointerMove {
		m.lastPointer = ev.Pos
	}

	if m.popup != nil {
		if !m.popup.HandleEvent(ev) {
			m.popup = nil
		}
		return
	}

	if m.menu != nil {
		m.routeMenu(ev)
		return
	}

	if ev.Kind == EventKeyDown {
		m.handleShortcut(ev)
		return
	}

	if m.drag.mode != dragNone {
		m.handleDragEvent(ev)
		return
	}

	m.routeDesktop(ev)
}

// handleShortcut applies the global keyboard contract. Keys that are not
// shortcuts are dropped: with no overlay live there is nothing to type
// into.
func (m *Manager) handleShortcut(ev Event) {
	switch ev.Key {
	case "ctrl+n":
		if _, err := m.CreateWindowAuto(); err != nil {
			slog.Warn("create window failed", "error", err)
		}
	case "ctrl+w":
		// No focused window is a silent no-op by contract.
		if id, ok := m.FocusedID(); ok {
			if err := m.Minimize(id); err != nil {
				slog.Warn("minimize failed", "id", id, "error", err)
			}
		}
	case "ctrl+f":
		m.ToggleFullscreen()
	}
}

// routeMenu forwards an event to the open context menu. A click outside the
// menu bounds dismisses it; selections mutate the entry list in place or
// open the matching popup, which replaces the menu in the overlay slot.
func (m *Manager) routeMenu(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		switch ev.Key {
		case "esc":
			m.menu = nil
		case "left":
			m.menu.PrevPage()
		case "right":
			m.menu.NextPage()
		}
		return
	case EventPointerDown:
		// fall through to hit-testing
	default:
		return
	}

	mn := m.menu
	click := mn.HitTest(ev.Pos)
	switch click.Kind {
	case menu.ClickNone:
		m.menu = nil

	case menu.ClickRGB:
		target, err := m.Window(mn.WindowID())
		m.menu = nil
		if err == nil && m.factory != nil {
			m.popup = m.factory.RGBEditor(target)
		}

	case menu.ClickHelp:
		m.menu = nil
		if m.factory != nil {
			m.popup = m.factory.HelpViewer()
		}

	case menu.ClickNewEntry:
		target, err := m.Window(mn.WindowID())
		m.menu = nil
		if err != nil {
			return
		}
		entry := target.Options.AddNumbered()
		if m.factory != nil {
			m.popup = m.factory.TextEditor(entry)
		}

	case menu.ClickEntry:
		m.menu = nil
		if m.factory != nil {
			m.popup = m.factory.TextEditor(click.Entry)
		}

	case menu.ClickDeleteEntry:
		if target, err := m.Window(mn.WindowID()); err == nil {
			target.Options.Remove(click.Entry)
		}
		mn.Reclamp()

	case menu.ClickPrevPage:
		mn.PrevPage()
	case menu.ClickNextPage:
		mn.NextPage()
	}
}

// routeDesktop hit-tests a pointer event against the taskbar and the
// visible windows, topmost first. The first window containing the point
// wins, so occluded windows never steal input.
func (m *Manager) routeDesktop(ev Event) {
	if ev.Kind != EventPointerDown {
		return
	}

	if ev.Button == ButtonLeft && m.taskbar.Contains(ev.Pos) {
		if id, ok := m.taskbar.ButtonAt(ev.Pos); ok {
			if err := m.Restore(id); err != nil {
				slog.Warn("restore failed", "id", id, "error", err)
			}
		}
		return
	}

	for i := len(m.windows) - 1; i >= 0; i-- {
		w := m.windows[i]
		if w.Minimized || !w.Rect.Contains(ev.Pos) {
			continue
		}
		m.dispatchToWindow(w, ev)
		return
	}
}

// dispatchToWindow applies a pointer-down that hit the window.
func (m *Manager) dispatchToWindow(w *Window, ev Event) {
	if ev.Button == ButtonRight {
		if err := m.OpenMenu(ev.Pos, w.ID); err != nil {
			slog.Warn("open menu failed", "id", w.ID, "error", err)
		}
		return
	}
	if ev.Button != ButtonLeft {
		return
	}

	switch geometry.HitTest(w.Rect, ev.Pos) {
	case geometry.RegionCloseButton:
		if err := m.CloseWindow(w.ID); err != nil {
			slog.Warn("close failed", "id", w.ID, "error", err)
		}
	case geometry.RegionMinimizeButton:
		if err := m.Minimize(w.ID); err != nil {
			slog.Warn("minimize failed", "id", w.ID, "error", err)
		}
	case geometry.RegionMaximizeButton:
		if err := m.ToggleMaximize(w.ID); err != nil {
			slog.Warn("maximize failed", "id", w.ID, "error", err)
		}
	case geometry.RegionTitleBar:
		m.raise(w)
		m.startMove(w, ev.Pos)
	case geometry.RegionResizeHandle:
		m.raise(w)
		m.startResize(w, ev.Pos)
	default:
		m.raise(w)
	}
}
