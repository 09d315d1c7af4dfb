package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/wm"
)

// helpEntries is the keyboard and mouse reference shown by the Help dialog.
var helpEntries = []struct{ key, desc string }{
	{"ctrl+n", "Open a new window"},
	{"ctrl+w", "Minimize the focused window"},
	{"ctrl+f", "Toggle fullscreen"},
	{"left drag", "Move a window by its title bar"},
	{"right click", "Open a window's context menu"},
	{"left/right", "Flip menu pages"},
	{"esc", "Dismiss a menu or dialog"},
}

const helpWidth = 46

// helpSize returns the dialog dimensions: title, blank line, one row per
// entry, blank line, footer.
func helpSize() (w, h int) {
	return helpWidth, len(helpEntries) + 4
}

// HelpViewer is the read-only shortcut reference. Any key or click inside
// the dialog dismisses it.
type HelpViewer struct {
	bounds geometry.Rect
}

// NewHelpViewer opens the reference at the given bounds.
func NewHelpViewer(bounds geometry.Rect) *HelpViewer {
	return &HelpViewer{bounds: bounds}
}

// Bounds returns the dialog rectangle.
func (v *HelpViewer) Bounds() geometry.Rect { return v.bounds }

// HandleEvent dismisses on any key press or any click inside the dialog.
// Pointer motion and clicks outside do nothing.
func (v *HelpViewer) HandleEvent(ev wm.Event) bool {
	switch ev.Kind {
	case wm.EventKeyDown:
		return false
	case wm.EventPointerDown:
		return !v.bounds.Contains(ev.Pos)
	}
	return true
}

// View renders the dialog.
func (v *HelpViewer) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Shortcuts") + "\n\n")
	for _, e := range helpEntries {
		key := e.key
		pad := strings.Repeat(" ", max(1, 14-len(key)))
		for _, line := range Wrap(e.desc, v.bounds.W-16) {
			b.WriteString(" " + keyStyle.Render(key) + pad + line + "\n")
			// Continuation lines align under the description.
			key, pad = "", strings.Repeat(" ", 15)
		}
	}
	b.WriteString("\n" + dimStyle.Render(" press any key to close"))
	return b.String()
}
