package overlay

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/menu"
	"github.com/marbleid/termdesk/internal/wm"
)

// ErrEmptyTitle rejects saving an entry whose title is blank.
var ErrEmptyTitle = errors.New("entry title must not be empty")

// textEditorH is the dialog height: header, title field, a separator, the
// body area and a footer.
const textEditorH = 12

const bodyRows = 6

// TextEditor edits a menu entry's title and body. Edits are buffered in the
// input components and written back to the entry only on ctrl+s; esc
// discards them. Manual line breaks typed in the body survive the
// round-trip, soft wrapping is display-only.
type TextEditor struct {
	bounds geometry.Rect
	entry  *menu.Entry

	title textinput.Model
	body  textarea.Model

	focusBody bool
	errMsg    string
}

// NewTextEditor opens an editor for the entry at the given bounds, wrapping
// the body display at wrapWidth cells.
func NewTextEditor(entry *menu.Entry, bounds geometry.Rect, wrapWidth int) *TextEditor {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 100
	ti.SetValue(entry.Title)
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Body"
	ta.SetWidth(wrapWidth)
	ta.SetHeight(bodyRows)
	ta.SetValue(entry.Body)

	return &TextEditor{
		bounds: bounds,
		entry:  entry,
		title:  ti,
		body:   ta,
	}
}

// Bounds returns the dialog rectangle.
func (e *TextEditor) Bounds() geometry.Rect { return e.bounds }

// focusTitle moves focus to the title field.
func (e *TextEditor) focusTitle() {
	e.focusBody = false
	e.body.Blur()
	e.title.Focus()
}

// focusBodyField moves focus to the body area.
func (e *TextEditor) focusBodyField() {
	e.focusBody = true
	e.title.Blur()
	e.body.Focus()
}

// save writes the buffered values back to the entry. A blank title is
// rejected and the dialog stays open.
func (e *TextEditor) save() error {
	title := strings.TrimSpace(e.title.Value())
	if title == "" {
		return ErrEmptyTitle
	}
	e.entry.Title = title
	e.entry.Body = e.body.Value()
	return nil
}

// HandleEvent consumes one event. ctrl+s saves and closes, esc closes
// without saving, enter in the title field jumps to the body, tab toggles
// between the fields. Everything else feeds the focused input component.
func (e *TextEditor) HandleEvent(ev wm.Event) bool {
	if ev.Kind != wm.EventKeyDown {
		return true
	}

	switch ev.Key {
	case "esc":
		return false
	case "ctrl+s":
		if err := e.save(); err != nil {
			e.errMsg = err.Error()
			return true
		}
		return false
	case "tab":
		if e.focusBody {
			e.focusTitle()
		} else {
			e.focusBodyField()
		}
		return true
	case "enter":
		if !e.focusBody {
			e.focusBodyField()
			return true
		}
		// Enter inside the body inserts a manual line break below.
	}

	e.errMsg = ""
	msg, ok := ev.Raw.(tea.Msg)
	if !ok {
		return true
	}
	if e.focusBody {
		e.body, _ = e.body.Update(msg)
	} else {
		e.title, _ = e.title.Update(msg)
	}
	return true
}

// View renders the dialog.
func (e *TextEditor) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Edit Option") + "\n\n")
	b.WriteString(" " + e.title.View() + "\n\n")
	b.WriteString(e.body.View() + "\n")

	if e.errMsg != "" {
		b.WriteString(errStyle.Render(" " + e.errMsg))
	} else {
		b.WriteString(dimStyle.Render(" ctrl+s save · esc cancel"))
	}
	return b.String()
}
