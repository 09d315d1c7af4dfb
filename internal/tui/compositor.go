// Package tui provides the BubbleTea-based terminal desktop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/menu"
	"github.com/marbleid/termdesk/internal/theme"
	"github.com/marbleid/termdesk/internal/wm"
)

// Chrome glyphs.
const (
	glyphMinimize = '─'
	glyphMaximize = '□'
	glyphClose    = '✕'
	glyphResize   = '◢'
	glyphDelete   = '✕'
)

// cell is one screen position. A zero rune marks the continuation column of
// a wide rune and is skipped when the frame is emitted.
type cell struct {
	r      rune
	fg, bg string
}

// Compositor paints the desktop bottom to top into a cell grid and emits it
// as a styled frame. Overlap is resolved by paint order, so whatever is
// drawn last owns the cell.
type Compositor struct {
	w, h  int
	cells []cell
	th    *theme.Theme
}

// NewCompositor creates a compositor for the given palette.
func NewCompositor(th *theme.Theme) *Compositor {
	return &Compositor{th: th}
}

// SetTheme swaps the palette for subsequent frames.
func (c *Compositor) SetTheme(th *theme.Theme) { c.th = th }

// Resize adjusts the grid to the viewport.
func (c *Compositor) Resize(w, h int) {
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
}

func (c *Compositor) set(x, y int, cl cell) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cl
}

// fill paints a rect with spaces in the given background.
func (c *Compositor) fill(r geometry.Rect, fg, bg string) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.set(x, y, cell{r: ' ', fg: fg, bg: bg})
		}
	}
}

// text draws a string from (x, y), clipped to maxW cells. Wide runes take
// two columns; the continuation column keeps a zero rune.
func (c *Compositor) text(x, y int, s, fg, bg string, maxW int) {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if col+w > x+maxW {
			break
		}
		c.set(col, y, cell{r: r, fg: fg, bg: bg})
		for i := 1; i < w; i++ {
			c.set(col+i, y, cell{fg: fg, bg: bg})
		}
		col += w
	}
}

// chromeHex converts a window's body color to a hex string.
func chromeHex(rgb wm.RGB) string {
	return colorful.Color{
		R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255,
	}.Hex()
}

// Render paints one frame: desktop, windows in paint order, the context
// menu, the taskbar and the status text. Popups are overlaid by the caller
// since they render themselves.
func (c *Compositor) Render(m *wm.Manager, contents *contentStore, status string, statusErr bool) string {
	if c.w == 0 || c.h == 0 {
		return ""
	}
	c.fill(geometry.Rect{W: c.w, H: c.h}, c.th.Window.TitleText, c.th.Desktop.Background)

	focused, _ := m.FocusedID()
	for _, w := range m.VisibleWindows() {
		c.drawWindow(w, w.ID == focused, contents)
	}

	if mn := m.ActiveMenu(); mn != nil {
		c.drawMenu(mn)
	}

	c.drawTaskbar(m, status, statusErr)
	return c.frame()
}

func (c *Compositor) drawWindow(w *wm.Window, focused bool, contents *contentStore) {
	body := chromeHex(w.Chrome)
	c.fill(w.Rect, c.th.Window.TitleText, body)

	// Title bar.
	barBg := c.th.Window.TitleBar
	if focused {
		barBg = c.th.Window.TitleBarActive
	}
	bar := geometry.Rect{X: w.Rect.X, Y: w.Rect.Y, W: w.Rect.W, H: 1}
	c.fill(bar, c.th.Window.TitleText, barBg)

	titleMax := w.Rect.W - 3*geometry.ButtonWidth - 2
	c.text(w.Rect.X+1, w.Rect.Y, w.Title, c.th.Window.TitleText, barBg, max(0, titleMax))

	for _, b := range []struct {
		r  geometry.Rect
		g  rune
		fg string
	}{
		{geometry.MinimizeButtonRect(w.Rect), glyphMinimize, c.th.Window.TitleText},
		{geometry.MaximizeButtonRect(w.Rect), glyphMaximize, c.th.Window.TitleText},
		{geometry.CloseButtonRect(w.Rect), glyphClose, c.th.Menu.Delete},
	} {
		c.set(b.r.X+1, b.r.Y, cell{r: b.g, fg: b.fg, bg: barBg})
	}

	// Body content.
	if contents != nil {
		lines := contents.Lines(w.ID, w.Title)
		for i, line := range lines {
			y := w.Rect.Y + 2 + i
			if y >= w.Rect.Bottom()-1 {
				break
			}
			c.text(w.Rect.X+2, y, line, c.th.Window.TitleText, body, max(0, w.Rect.W-4))
		}
	}

	// Resize handle.
	h := geometry.ResizeHandleRect(w.Rect)
	for x := h.X; x < h.Right(); x++ {
		c.set(x, h.Y, cell{r: glyphResize, fg: c.th.Window.ResizeHandle, bg: body})
	}
}

func (c *Compositor) drawMenu(mn *menu.Menu) {
	b := mn.Bounds()
	c.fill(b, c.th.Menu.Text, c.th.Menu.Background)

	for i, label := range menu.StaticLabels {
		c.text(b.X+1, b.Y+i, label, c.th.Menu.StaticText, c.th.Menu.Background, b.W-2)
	}

	entries := mn.PageEntries()
	for i, e := range entries {
		y := b.Y + len(menu.StaticLabels) + i
		c.text(b.X+1, y, e.Title, c.th.Menu.Text, c.th.Menu.Background, b.W-4)
		c.set(b.Right()-2, y, cell{r: glyphDelete, fg: c.th.Menu.Delete, bg: c.th.Menu.Background})
	}

	if mn.PageCount() > 1 {
		y := b.Bottom() - 1
		prev, next := "  prev", "next  "
		prevFg, nextFg := c.th.Menu.StaticText, c.th.Menu.StaticText
		if !mn.HasPrev() {
			prevFg = c.th.Menu.Background
		}
		if !mn.HasNext() {
			nextFg = c.th.Menu.Background
		}
		c.text(b.X, y, prev, prevFg, c.th.Menu.Background, b.W/2)
		indicator := fmt.Sprintf("%d/%d", mn.Page()+1, mn.PageCount())
		c.text(b.X+(b.W-len(indicator))/2, y, indicator, c.th.Menu.Text, c.th.Menu.Background, len(indicator))
		c.text(b.Right()-len(next), y, next, nextFg, c.th.Menu.Background, len(next))
	}
}

func (c *Compositor) drawTaskbar(m *wm.Manager, status string, statusErr bool) {
	tb := m.Taskbar()
	b := tb.Bounds()
	c.fill(b, c.th.Taskbar.ButtonText, c.th.Taskbar.Background)

	for i, id := range tb.IDs() {
		w, err := m.Window(id)
		if err != nil {
			continue
		}
		br := tb.ButtonRect(i)
		c.fill(br, c.th.Taskbar.ButtonText, c.th.Taskbar.Button)
		c.text(br.X+1, br.Y, w.Title, c.th.Taskbar.ButtonText, c.th.Taskbar.Button, br.W-2)
	}

	// The right end of the bar carries the status message, falling back to
	// the occupancy summary.
	msg := status
	fg := c.th.Popup.Accent
	if statusErr {
		fg = c.th.Menu.Delete
	}
	if msg == "" {
		msg = tb.Summary()
		fg = c.th.Taskbar.ButtonText
	}
	x := b.Right() - runewidth.StringWidth(msg) - 1
	c.text(x, b.Y, msg, fg, c.th.Taskbar.Background, b.W)
}

// frame joins the grid into a styled string, batching runs of equal colors
// into single style invocations.
func (c *Compositor) frame() string {
	var out strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		var run strings.Builder
		var curFg, curBg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(curFg)).
				Background(lipgloss.Color(curBg))
			out.WriteString(st.Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			if cl.r == 0 {
				continue
			}
			if cl.fg != curFg || cl.bg != curBg {
				flush()
				curFg, curBg = cl.fg, cl.bg
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return out.String()
}
