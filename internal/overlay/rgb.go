package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/wm"
)

// Dialog dimensions in cells.
const (
	rgbEditorW = 44
	rgbEditorH = 8
)

// Slider layout inside the dialog: rows 2..4 hold the R, G and B tracks.
const (
	sliderFirstRow = 2
	sliderTrackX   = 3
)

// RGBEditor edits a window's chrome color with three 0..255 sliders. Every
// change is written straight to the target so the window previews live;
// esc puts the value captured at open back, enter keeps the current one.
type RGBEditor struct {
	bounds geometry.Rect
	target *wm.Window
	saved  wm.RGB

	active   int // selected slider, 0=R 1=G 2=B
	tracking bool
}

// NewRGBEditor opens an editor for the window's chrome color at the given
// bounds.
func NewRGBEditor(target *wm.Window, bounds geometry.Rect) *RGBEditor {
	return &RGBEditor{
		bounds: bounds,
		target: target,
		saved:  target.Chrome,
	}
}

// Bounds returns the dialog rectangle.
func (e *RGBEditor) Bounds() geometry.Rect { return e.bounds }

func (e *RGBEditor) trackWidth() int { return e.bounds.W - sliderTrackX - 7 }

// channel returns a pointer to the i-th color channel of the target.
func (e *RGBEditor) channel(i int) *uint8 {
	switch i {
	case 0:
		return &e.target.Chrome.R
	case 1:
		return &e.target.Chrome.G
	default:
		return &e.target.Chrome.B
	}
}

// adjust shifts the active channel by delta, clamped to 0..255.
func (e *RGBEditor) adjust(delta int) {
	ch := e.channel(e.active)
	*ch = uint8(geometry.Clamp(int(*ch)+delta, 0, 255))
}

// setFromPointer maps a pointer column on the track to a channel value.
func (e *RGBEditor) setFromPointer(x int) {
	tw := e.trackWidth()
	rel := geometry.Clamp(x-(e.bounds.X+sliderTrackX), 0, tw-1)
	*e.channel(e.active) = uint8(rel * 255 / (tw - 1))
}

// sliderAt returns the slider index under the point, or -1.
func (e *RGBEditor) sliderAt(p geometry.Point) int {
	row := p.Y - e.bounds.Y
	if i := row - sliderFirstRow; i >= 0 && i < 3 && e.bounds.Contains(p) {
		return i
	}
	return -1
}

// HandleEvent consumes one event. It returns false once the dialog is done:
// enter keeps the edited color, esc restores the saved one.
func (e *RGBEditor) HandleEvent(ev wm.Event) bool {
	switch ev.Kind {
	case wm.EventKeyDown:
		switch ev.Key {
		case "esc":
			e.target.Chrome = e.saved
			return false
		case "enter":
			return false
		case "up", "k", "shift+tab":
			e.active = geometry.Clamp(e.active-1, 0, 2)
		case "down", "j", "tab":
			e.active = geometry.Clamp(e.active+1, 0, 2)
		case "left", "h":
			e.adjust(-1)
		case "right", "l":
			e.adjust(1)
		case "pgdown":
			e.adjust(-16)
		case "pgup":
			e.adjust(16)
		}

	case wm.EventPointerDown:
		if i := e.sliderAt(ev.Pos); i >= 0 {
			e.active = i
			e.tracking = true
			e.setFromPointer(ev.Pos.X)
		}

	case wm.EventPointerMove:
		if e.tracking {
			e.setFromPointer(ev.Pos.X)
		}

	case wm.EventPointerUp:
		e.tracking = false
	}
	return true
}

// hex returns the current color as "#rrggbb".
func (e *RGBEditor) hex() string {
	c := e.target.Chrome
	return colorful.Color{
		R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255,
	}.Hex()
}

// View renders the dialog.
func (e *RGBEditor) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Window Color") + "\n\n")

	labels := [3]string{"R", "G", "B"}
	values := [3]uint8{e.target.Chrome.R, e.target.Chrome.G, e.target.Chrome.B}
	tw := e.trackWidth()
	for i := 0; i < 3; i++ {
		filled := int(values[i]) * (tw - 1) / 255
		track := strings.Repeat("█", filled+1) + strings.Repeat("─", tw-filled-1)
		line := fmt.Sprintf(" %s %s %3d", labels[i], track, values[i])
		if i == e.active {
			line = activeStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	swatch := lipgloss.NewStyle().Background(lipgloss.Color(e.hex())).Render("    ")
	b.WriteString("\n " + swatch + " " + labelStyle.Render(e.hex()))
	b.WriteString("\n" + labelStyle.Render(" enter keep · esc revert"))
	return b.String()
}
