// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultMinWindowW  = 20
	DefaultMinWindowH  = 6
	DefaultWindowW     = 48
	DefaultWindowH     = 14
	DefaultMenuPage    = 5
	DefaultTaskbarH    = 1
	DefaultWrapWidth   = 40
	DefaultSnapshotKey = "ctrl+s"
)

// Config represents the termdesk configuration.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Menu    MenuConfig    `toml:"menu"`
	Taskbar TaskbarConfig `toml:"taskbar"`
	Editor  EditorConfig  `toml:"editor"`
	Theme   ThemeConfig   `toml:"theme"`
	Layout  LayoutConfig  `toml:"layout"`
}

// WindowConfig holds window geometry defaults.
type WindowConfig struct {
	MinWidth      int `toml:"min_width"`      // Smallest resizable width
	MinHeight     int `toml:"min_height"`     // Smallest resizable height
	DefaultWidth  int `toml:"default_width"`  // Width of new windows
	DefaultHeight int `toml:"default_height"` // Height of new windows
}

// MenuConfig holds context menu settings.
type MenuConfig struct {
	PageSize int `toml:"page_size"` // Dynamic entries per menu page
}

// TaskbarConfig holds taskbar settings.
type TaskbarConfig struct {
	Height int `toml:"height"` // Bar height in rows
}

// EditorConfig holds entry editor settings.
type EditorConfig struct {
	WrapWidth int `toml:"wrap_width"` // Body soft-wrap column
}

// ThemeConfig holds theme settings.
type ThemeConfig struct {
	Path  string `toml:"path"`  // Theme file (empty = built-in)
	Watch bool   `toml:"watch"` // Reload the theme file on change
}

// LayoutConfig holds layout snapshot settings.
type LayoutConfig struct {
	Path string `toml:"path"` // Snapshot file (empty = XDG data dir)
	Key  string `toml:"key"`  // Keybinding that writes a snapshot
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			MinWidth:      DefaultMinWindowW,
			MinHeight:     DefaultMinWindowH,
			DefaultWidth:  DefaultWindowW,
			DefaultHeight: DefaultWindowH,
		},
		Menu: MenuConfig{
			PageSize: DefaultMenuPage,
		},
		Taskbar: TaskbarConfig{
			Height: DefaultTaskbarH,
		},
		Editor: EditorConfig{
			WrapWidth: DefaultWrapWidth,
		},
		Theme: ThemeConfig{
			Path:  "", // Built-in theme
			Watch: true,
		},
		Layout: LayoutConfig{
			Path: "", // XDG data dir
			Key:  DefaultSnapshotKey,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "termdesk", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "termdesk")
}

// SnapshotPath returns the path layout snapshots are written to.
func (c *Config) SnapshotPath() string {
	if c.Layout.Path != "" {
		return c.Layout.Path
	}
	return filepath.Join(DataPath(), "layout.yaml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// Parse TOML
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the window manager cannot run with.
func (c *Config) Validate() error {
	if c.Window.MinWidth < 8 || c.Window.MinHeight < 3 {
		return fmt.Errorf("window minimum %dx%d too small",
			c.Window.MinWidth, c.Window.MinHeight)
	}
	if c.Window.DefaultWidth < c.Window.MinWidth ||
		c.Window.DefaultHeight < c.Window.MinHeight {
		return fmt.Errorf("default window %dx%d below minimum %dx%d",
			c.Window.DefaultWidth, c.Window.DefaultHeight,
			c.Window.MinWidth, c.Window.MinHeight)
	}
	if c.Menu.PageSize < 1 {
		return fmt.Errorf("menu page size %d must be positive", c.Menu.PageSize)
	}
	if c.Taskbar.Height < 1 {
		return fmt.Errorf("taskbar height %d must be positive", c.Taskbar.Height)
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
