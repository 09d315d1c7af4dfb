package wm

// WindowSnapshot is one window's layout state in a desktop snapshot.
// Minimized windows carry Z = -1.
type WindowSnapshot struct {
	ID        string `yaml:"id"`
	Title     string `yaml:"title"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	W         int    `yaml:"w"`
	H         int    `yaml:"h"`
	Z         int    `yaml:"z"`
	Minimized bool   `yaml:"minimized"`
	Maximized bool   `yaml:"maximized"`
	Focused   bool   `yaml:"focused"`
}

// Snapshot is a serializable description of the current desktop layout. It
// is export-only: nothing in the manager ever reads one back.
type Snapshot struct {
	ViewportW  int              `yaml:"viewport_w"`
	ViewportH  int              `yaml:"viewport_h"`
	Fullscreen bool             `yaml:"fullscreen"`
	Windows    []WindowSnapshot `yaml:"windows"`
	Taskbar    []string         `yaml:"taskbar"`
}

// Snapshot captures the desktop layout in paint order.
func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{
		ViewportW:  m.viewW,
		ViewportH:  m.viewH,
		Fullscreen: m.fullscreen,
		Taskbar:    append([]string(nil), m.taskbar.IDs()...),
	}
	z := 0
	for _, w := range m.windows {
		ws := WindowSnapshot{
			ID:        w.ID,
			Title:     w.Title,
			X:         w.Rect.X,
			Y:         w.Rect.Y,
			W:         w.Rect.W,
			H:         w.Rect.H,
			Z:         -1,
			Minimized: w.Minimized,
			Maximized: w.Maximized,
			Focused:   w.ID == m.focused,
		}
		if !w.Minimized {
			ws.Z = z
			z++
		}
		s.Windows = append(s.Windows, ws)
	}
	return s
}
