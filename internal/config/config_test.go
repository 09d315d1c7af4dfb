package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 20, cfg.Window.MinWidth)
	assert.Equal(t, 6, cfg.Window.MinHeight)
	assert.Equal(t, 48, cfg.Window.DefaultWidth)
	assert.Equal(t, 14, cfg.Window.DefaultHeight)
	assert.Equal(t, 5, cfg.Menu.PageSize)
	assert.Equal(t, 1, cfg.Taskbar.Height)
	assert.Equal(t, 40, cfg.Editor.WrapWidth)
	assert.True(t, cfg.Theme.Watch)
	assert.Equal(t, "ctrl+s", cfg.Layout.Key)

	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	// Use a path that doesn't exist
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Menu.PageSize, cfg.Menu.PageSize)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	// Create a temporary config file
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[window]
min_width = 24
min_height = 8
default_width = 60
default_height = 18

[menu]
page_size = 7

[taskbar]
height = 2

[editor]
wrap_width = 60

[theme]
path = "/tmp/theme.toml"
watch = false

[layout]
path = "/tmp/layout.yaml"
key = "ctrl+y"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Window.MinWidth)
	assert.Equal(t, 8, cfg.Window.MinHeight)
	assert.Equal(t, 60, cfg.Window.DefaultWidth)
	assert.Equal(t, 18, cfg.Window.DefaultHeight)
	assert.Equal(t, 7, cfg.Menu.PageSize)
	assert.Equal(t, 2, cfg.Taskbar.Height)
	assert.Equal(t, 60, cfg.Editor.WrapWidth)
	assert.Equal(t, "/tmp/theme.toml", cfg.Theme.Path)
	assert.False(t, cfg.Theme.Watch)
	assert.Equal(t, "/tmp/layout.yaml", cfg.Layout.Path)
	assert.Equal(t, "ctrl+y", cfg.Layout.Key)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu]\npage_size = 3\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Menu.PageSize)
	assert.Equal(t, DefaultMinWindowW, cfg.Window.MinWidth)
	assert.Equal(t, DefaultWrapWidth, cfg.Editor.WrapWidth)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu]\npage_size = 0\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.DefaultWidth = 10 // Below the 20-cell minimum
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Taskbar.Height = 0
	assert.Error(t, cfg.Validate())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Menu.PageSize = 9
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, loaded.Menu.PageSize)
}

func TestSnapshotPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Path = "/tmp/custom.yaml"
	assert.Equal(t, "/tmp/custom.yaml", cfg.SnapshotPath())

	cfg.Layout.Path = ""
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	assert.Equal(t, "/xdg/data/termdesk/layout.yaml", cfg.SnapshotPath())
}
