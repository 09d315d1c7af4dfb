package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings handled by the outer model. Window
// shortcuts (new, minimize, fullscreen) are routed through the window
// manager and listed here only for the help bar.
type KeyMap struct {
	NewWindow  key.Binding
	Minimize   key.Binding
	Fullscreen key.Binding
	Snapshot   key.Binding
	Quit       key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewWindow, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewWindow, k.Minimize, k.Fullscreen},
		{k.Snapshot, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings. snapshotKey is the
// configurable layout snapshot chord.
func DefaultKeyMap(snapshotKey string) KeyMap {
	return KeyMap{
		NewWindow: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new window"),
		),
		Minimize: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "minimize"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "fullscreen"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys(snapshotKey),
			key.WithHelp(snapshotKey, "save layout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}
