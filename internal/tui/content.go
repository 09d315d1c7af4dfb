package tui

import (
	"time"

	"github.com/dustin/go-humanize"
)

// windowContent is the body text shown inside a window. Windows in this
// desktop carry only informational content; the interesting state lives in
// their context menus.
type windowContent struct {
	createdAt time.Time
}

// contentStore owns window body content, keyed by window id. The window
// manager's lifecycle hooks drive allocation and release.
type contentStore struct {
	byID map[string]*windowContent
	now  func() time.Time
}

func newContentStore() *contentStore {
	return &contentStore{
		byID: make(map[string]*windowContent),
		now:  time.Now,
	}
}

// Allocate registers content for a newly created window.
func (s *contentStore) Allocate(id string) {
	s.byID[id] = &windowContent{createdAt: s.now()}
}

// Release drops the content of a destroyed window.
func (s *contentStore) Release(id string) {
	delete(s.byID, id)
}

// Len returns the number of tracked windows.
func (s *contentStore) Len() int { return len(s.byID) }

// Lines returns the body text for a window.
func (s *contentStore) Lines(id, title string) []string {
	wc, ok := s.byID[id]
	if !ok {
		return nil
	}
	return []string{
		title,
		"opened " + humanize.Time(wc.createdAt),
		"",
		"right click for options",
	}
}
