package wm

import "github.com/marbleid/termdesk/internal/geometry"

// EventKind discriminates the input events the manager routes.
type EventKind int

const (
	EventPointerDown EventKind = iota
	EventPointerMove
	EventPointerUp
	EventKeyDown
)

// Button identifies the pointer button of a pointer event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Event is one discrete input event from the driver. Key is the driver's
// key name ("ctrl+n", "enter", "a", ...). Raw carries the driver's original
// message so overlays built on driver components can consume it unchanged;
// the manager itself never inspects Raw.
type Event struct {
	Kind   EventKind
	Pos    geometry.Point
	Button Button
	Key    string
	Raw    any
}

// PointerDown builds a button-press event at p.
func PointerDown(p geometry.Point, b Button) Event {
	return Event{Kind: EventPointerDown, Pos: p, Button: b}
}

// PointerMove builds a motion event at p.
func PointerMove(p geometry.Point) Event {
	return Event{Kind: EventPointerMove, Pos: p}
}

// PointerUp builds a button-release event at p.
func PointerUp(p geometry.Point) Event {
	return Event{Kind: EventPointerUp, Pos: p, Button: ButtonLeft}
}

// KeyDown builds a key event for the named key.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// Overlay is a transient surface (context menu or popup dialog) occupying
// the manager's single overlay slot. While present it receives events ahead
// of windows. HandleEvent reports whether the overlay is still open.
type Overlay interface {
	Bounds() geometry.Rect
	HandleEvent(ev Event) bool
	View() string
}
