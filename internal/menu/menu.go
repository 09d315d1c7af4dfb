// Package menu models right-click context menus: a fixed set of static
// actions followed by user-editable dynamic entries, paginated with a fixed
// page size. The package is pure state; rendering lives in the TUI layer.
package menu

import (
	"fmt"

	"github.com/marbleid/termdesk/internal/geometry"
)

// Kind tags an entry as a built-in action or a user-editable one.
type Kind int

const (
	KindStatic Kind = iota
	KindDynamic
)

// Entry is a single menu entry. Static entries are immutable; dynamic
// entries carry an editable title and body.
type Entry struct {
	Kind  Kind
	Title string
	Body  string
}

// DefaultBody is the placeholder body for freshly created entries.
const DefaultBody = "Editable body text."

// List owns the ordered dynamic entries of one window. Menus reference the
// list rather than copying it, so edits made through an open menu persist
// after the menu closes. Entries are held by pointer so an editor can hold a
// stable reference across removals.
type List struct {
	entries []*Entry
}

// NewList returns an empty dynamic entry list.
func NewList() *List {
	return &List{}
}

// Add appends a new dynamic entry and returns it.
func (l *List) Add(title, body string) *Entry {
	e := &Entry{Kind: KindDynamic, Title: title, Body: body}
	l.entries = append(l.entries, e)
	return e
}

// AddNumbered appends an entry titled "Option N" with placeholder body,
// where N is the next ordinal.
func (l *List) AddNumbered() *Entry {
	return l.Add(fmt.Sprintf("Option %d", len(l.entries)+1), DefaultBody)
}

// Remove deletes the entry from the list. It reports whether the entry was
// present.
func (l *List) Remove(e *Entry) bool {
	for i, have := range l.entries {
		if have == e {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of dynamic entries.
func (l *List) Len() int { return len(l.entries) }

// At returns the i-th dynamic entry.
func (l *List) At(i int) *Entry { return l.entries[i] }

// Entries returns the backing slice in order. Callers must not mutate it.
func (l *List) Entries() []*Entry { return l.entries }

// Static menu rows, always shown above the dynamic page.
const (
	rowRGB = iota
	rowHelp
	rowNewEntry
	staticRows
)

// Static row labels, exported for rendering.
var StaticLabels = [staticRows]string{"RGB", "Help", "New Option"}

// Width is the fixed menu width in cells.
const Width = 24

// deleteGlyphWidth is the clickable "✕" area at the right edge of a dynamic
// row.
const deleteGlyphWidth = 2

// Menu is one open context menu: an anchor point, the owning window id, the
// referenced dynamic list and the current page.
type Menu struct {
	anchor   geometry.Point
	windowID string
	list     *List
	page     int
	pageSize int
}

// New opens a menu anchored at p for the window owning list. pageSize must
// be positive.
func New(p geometry.Point, windowID string, list *List, pageSize int) *Menu {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Menu{anchor: p, windowID: windowID, list: list, pageSize: pageSize}
}

// WindowID returns the id of the window the menu was opened on. The menu
// only holds the id, never the window itself, so dismissing the menu cannot
// affect window lifetime.
func (m *Menu) WindowID() string { return m.windowID }

// Anchor returns the click point the menu was opened at.
func (m *Menu) Anchor() geometry.Point { return m.anchor }

// Page returns the current zero-based page.
func (m *Menu) Page() int { return m.page }

// PageSize returns the fixed page size.
func (m *Menu) PageSize() int { return m.pageSize }

// PageCount returns ceil(dynamic entries / page size), at least 1.
func (m *Menu) PageCount() int {
	n := (m.list.Len() + m.pageSize - 1) / m.pageSize
	if n < 1 {
		n = 1
	}
	return n
}

// Paging clamps at the boundaries: NextPage on the last page and PrevPage on
// the first are no-ops. Both report whether the page changed.

// NextPage advances one page.
func (m *Menu) NextPage() bool {
	if m.page >= m.PageCount()-1 {
		return false
	}
	m.page++
	return true
}

// PrevPage goes back one page.
func (m *Menu) PrevPage() bool {
	if m.page <= 0 {
		return false
	}
	m.page--
	return true
}

// HasPrev reports whether a previous page exists.
func (m *Menu) HasPrev() bool { return m.page > 0 }

// HasNext reports whether a further page exists.
func (m *Menu) HasNext() bool { return m.page < m.PageCount()-1 }

// PageEntries returns the dynamic entries visible on the current page.
func (m *Menu) PageEntries() []*Entry {
	start := m.page * m.pageSize
	if start >= m.list.Len() {
		return nil
	}
	end := start + m.pageSize
	if end > m.list.Len() {
		end = m.list.Len()
	}
	return m.list.Entries()[start:end]
}

// Reclamp pulls the current page back into range after entries were
// removed. When the tail page empties this lands on the new last page.
func (m *Menu) Reclamp() {
	m.page = geometry.Clamp(m.page, 0, m.PageCount()-1)
}

// Bounds returns the menu's on-screen rectangle: one row per visible entry
// plus a navigation row when there is more than one page.
func (m *Menu) Bounds() geometry.Rect {
	h := staticRows + len(m.PageEntries())
	if m.PageCount() > 1 {
		h++
	}
	return geometry.Rect{X: m.anchor.X, Y: m.anchor.Y, W: Width, H: h}
}

// ClickKind classifies what a click inside the menu landed on.
type ClickKind int

const (
	ClickNone ClickKind = iota
	ClickRGB
	ClickHelp
	ClickNewEntry
	ClickEntry
	ClickDeleteEntry
	ClickPrevPage
	ClickNextPage
)

// Click is the result of hit-testing a point against the menu.
type Click struct {
	Kind  ClickKind
	Entry *Entry
}

// HitTest maps a point to the menu row it falls on. Points outside the menu
// bounds yield ClickNone; the caller treats that as a dismiss.
func (m *Menu) HitTest(p geometry.Point) Click {
	b := m.Bounds()
	if !b.Contains(p) {
		return Click{Kind: ClickNone}
	}

	row := p.Y - b.Y
	switch row {
	case rowRGB:
		return Click{Kind: ClickRGB}
	case rowHelp:
		return Click{Kind: ClickHelp}
	case rowNewEntry:
		return Click{Kind: ClickNewEntry}
	}

	entries := m.PageEntries()
	if i := row - staticRows; i < len(entries) {
		if p.X >= b.Right()-deleteGlyphWidth {
			return Click{Kind: ClickDeleteEntry, Entry: entries[i]}
		}
		return Click{Kind: ClickEntry, Entry: entries[i]}
	}

	// Navigation row: left half previous, right half next.
	if p.X < b.X+b.W/2 {
		return Click{Kind: ClickPrevPage}
	}
	return Click{Kind: ClickNextPage}
}
