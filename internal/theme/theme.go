// Package theme handles color palette loading and hot-reload. Palettes are
// TOML files of hex colors; an embedded default is used when no file is
// configured.
package theme

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Theme is the full color palette. Every value is a "#rrggbb" hex string.
type Theme struct {
	Desktop DesktopColors `toml:"desktop"`
	Window  WindowColors  `toml:"window"`
	Menu    MenuColors    `toml:"menu"`
	Popup   PopupColors   `toml:"popup"`
	Taskbar TaskbarColors `toml:"taskbar"`
}

// DesktopColors styles the root surface behind all windows.
type DesktopColors struct {
	Background string `toml:"background"`
}

// WindowColors styles window chrome. The body color comes from each
// window's own RGB value, not the theme.
type WindowColors struct {
	TitleText      string `toml:"title_text"`
	TitleBar       string `toml:"title_bar"`
	TitleBarActive string `toml:"title_bar_active"`
	Border         string `toml:"border"`
	ResizeHandle   string `toml:"resize_handle"`
}

// MenuColors styles context menus.
type MenuColors struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	StaticText string `toml:"static_text"`
	Delete     string `toml:"delete"`
}

// PopupColors styles modal dialogs.
type PopupColors struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Accent     string `toml:"accent"`
}

// TaskbarColors styles the minimized-window strip.
type TaskbarColors struct {
	Background string `toml:"background"`
	Button     string `toml:"button"`
	ButtonText string `toml:"button_text"`
}

// colors returns every palette field with its TOML-ish name for
// validation messages.
func (t *Theme) colors() map[string]string {
	return map[string]string{
		"desktop.background":      t.Desktop.Background,
		"window.title_text":       t.Window.TitleText,
		"window.title_bar":        t.Window.TitleBar,
		"window.title_bar_active": t.Window.TitleBarActive,
		"window.border":           t.Window.Border,
		"window.resize_handle":    t.Window.ResizeHandle,
		"menu.background":         t.Menu.Background,
		"menu.text":               t.Menu.Text,
		"menu.static_text":        t.Menu.StaticText,
		"menu.delete":             t.Menu.Delete,
		"popup.background":        t.Popup.Background,
		"popup.text":              t.Popup.Text,
		"popup.accent":            t.Popup.Accent,
		"taskbar.background":      t.Taskbar.Background,
		"taskbar.button":          t.Taskbar.Button,
		"taskbar.button_text":     t.Taskbar.ButtonText,
	}
}

// Validate checks that every palette entry is a parseable hex color.
func (t *Theme) Validate() error {
	for name, value := range t.colors() {
		if value == "" {
			return fmt.Errorf("theme color %s is missing", name)
		}
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("theme color %s: %w", name, err)
		}
	}
	return nil
}

// Load reads and validates a palette from path. An empty path yields the
// embedded default. Missing fields fall back to the default palette, so a
// partial file only overrides what it names.
func Load(path string) (*Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
