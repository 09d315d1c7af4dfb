package menu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marbleid/termdesk/internal/geometry"
)

func listOf(n int) *List {
	l := NewList()
	for i := 0; i < n; i++ {
		l.Add(fmt.Sprintf("Option %d", i+1), DefaultBody)
	}
	return l
}

func TestList_AddRemove(t *testing.T) {
	l := NewList()
	a := l.AddNumbered()
	b := l.AddNumbered()

	assert.Equal(t, "Option 1", a.Title)
	assert.Equal(t, "Option 2", b.Title)
	assert.Equal(t, KindDynamic, a.Kind)
	assert.Equal(t, DefaultBody, a.Body)

	assert.True(t, l.Remove(a))
	assert.False(t, l.Remove(a)) // already gone
	assert.Equal(t, 1, l.Len())
	assert.Same(t, b, l.At(0))
}

func TestMenu_PageCount(t *testing.T) {
	// 12 dynamic entries at page size 5 paginate into 3 pages.
	m := New(geometry.Point{}, "w", listOf(12), 5)
	assert.Equal(t, 3, m.PageCount())

	// An empty list still has one page.
	m = New(geometry.Point{}, "w", NewList(), 5)
	assert.Equal(t, 1, m.PageCount())

	// Exact multiple.
	m = New(geometry.Point{}, "w", listOf(10), 5)
	assert.Equal(t, 2, m.PageCount())
}

func TestMenu_PagingClamps(t *testing.T) {
	m := New(geometry.Point{}, "w", listOf(12), 5)

	assert.False(t, m.PrevPage(), "first page clamps")
	assert.True(t, m.NextPage())
	assert.True(t, m.NextPage())
	assert.Equal(t, 2, m.Page())
	assert.False(t, m.NextPage(), "last page clamps")
	assert.Equal(t, 2, m.Page())

	assert.False(t, m.HasNext())
	assert.True(t, m.HasPrev())
}

func TestMenu_PageEntries(t *testing.T) {
	l := listOf(12)
	m := New(geometry.Point{}, "w", l, 5)

	assert.Len(t, m.PageEntries(), 5)
	m.NextPage()
	m.NextPage()
	got := m.PageEntries()
	require.Len(t, got, 2)
	assert.Equal(t, "Option 11", got[0].Title)
	assert.Equal(t, "Option 12", got[1].Title)
}

func TestMenu_DeleteLastPageEntryFallsBack(t *testing.T) {
	l := listOf(11)
	m := New(geometry.Point{}, "w", l, 5)
	m.NextPage()
	m.NextPage()
	require.Equal(t, 2, m.Page())

	// Delete the sole entry on the last page; the menu moves to the
	// second-to-last page.
	sole := m.PageEntries()[0]
	require.True(t, l.Remove(sole))
	m.Reclamp()
	assert.Equal(t, 1, m.Page())
	assert.Equal(t, 2, m.PageCount())
}

func TestMenu_HitTest(t *testing.T) {
	l := listOf(12)
	m := New(geometry.Point{X: 10, Y: 4}, "w", l, 5)

	// Outside.
	assert.Equal(t, ClickNone, m.HitTest(geometry.Point{X: 0, Y: 0}).Kind)

	// Static rows come first.
	assert.Equal(t, ClickRGB, m.HitTest(geometry.Point{X: 11, Y: 4}).Kind)
	assert.Equal(t, ClickHelp, m.HitTest(geometry.Point{X: 11, Y: 5}).Kind)
	assert.Equal(t, ClickNewEntry, m.HitTest(geometry.Point{X: 11, Y: 6}).Kind)

	// First dynamic entry.
	c := m.HitTest(geometry.Point{X: 11, Y: 7})
	assert.Equal(t, ClickEntry, c.Kind)
	assert.Same(t, l.At(0), c.Entry)

	// Delete glyph on the same row.
	c = m.HitTest(geometry.Point{X: 10 + Width - 1, Y: 7})
	assert.Equal(t, ClickDeleteEntry, c.Kind)
	assert.Same(t, l.At(0), c.Entry)

	// Navigation row sits under the page entries.
	navY := 4 + 3 + 5
	assert.Equal(t, ClickPrevPage, m.HitTest(geometry.Point{X: 11, Y: navY}).Kind)
	assert.Equal(t, ClickNextPage, m.HitTest(geometry.Point{X: 10 + Width - 2, Y: navY}).Kind)
}

func TestMenu_BoundsGrowWithEntries(t *testing.T) {
	// Single page, no navigation row.
	m := New(geometry.Point{X: 0, Y: 0}, "w", listOf(2), 5)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: Width, H: 5}, m.Bounds())

	// Multiple pages add the navigation row.
	m = New(geometry.Point{X: 0, Y: 0}, "w", listOf(12), 5)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: Width, H: 9}, m.Bounds())
}
