// Package overlay implements the modal popup dialogs opened from context
// menus: the window color editor, the help viewer and the entry text editor.
// Each dialog is a self-contained wm.Overlay; the window manager only owns
// the slot it occupies. Dialogs are modal: while one is live it consumes all
// input, and only its own controls dismiss it.
package overlay

import (
	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/menu"
	"github.com/marbleid/termdesk/internal/wm"
)

// Factory builds popup dialogs centered in the current viewport. It
// satisfies wm.PopupFactory.
type Factory struct {
	viewport  func() (w, h int)
	wrapWidth int
}

// NewFactory returns a factory placing dialogs inside the viewport reported
// by the given function. wrapWidth is the editor's body wrap column; values
// below 10 fall back to 40.
func NewFactory(viewport func() (w, h int), wrapWidth int) *Factory {
	if wrapWidth < 10 {
		wrapWidth = 40
	}
	return &Factory{viewport: viewport, wrapWidth: wrapWidth}
}

// center returns a w-by-h rect centered in the viewport, clamped to origin
// zero on viewports smaller than the dialog.
func (f *Factory) center(w, h int) geometry.Rect {
	vw, vh := f.viewport()
	return geometry.Rect{
		X: max(0, (vw-w)/2),
		Y: max(0, (vh-h)/2),
		W: w, H: h,
	}
}

// RGBEditor opens the color editor for the window's chrome.
func (f *Factory) RGBEditor(target *wm.Window) wm.Overlay {
	return NewRGBEditor(target, f.center(rgbEditorW, rgbEditorH))
}

// HelpViewer opens the keyboard and mouse reference.
func (f *Factory) HelpViewer() wm.Overlay {
	w, h := helpSize()
	return NewHelpViewer(f.center(w, h))
}

// TextEditor opens the title and body editor for a menu entry.
func (f *Factory) TextEditor(entry *menu.Entry) wm.Overlay {
	return NewTextEditor(entry, f.center(f.wrapWidth+4, textEditorH), f.wrapWidth)
}
