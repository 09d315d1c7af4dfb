package tui

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/marbleid/termdesk/internal/config"
	"github.com/marbleid/termdesk/internal/geometry"
	"github.com/marbleid/termdesk/internal/overlay"
	"github.com/marbleid/termdesk/internal/theme"
	"github.com/marbleid/termdesk/internal/wm"
)

// Model is the main TUI model.
type Model struct {
	cfg *config.Config

	mgr      *wm.Manager
	comp     *Compositor
	contents *contentStore

	// Key bindings
	keys KeyMap

	width  int
	height int
	ready  bool

	// Status message
	statusMsg string
	statusErr bool

	// Theme reloads arrive on this channel from the file watcher.
	themeCh <-chan *theme.Theme
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type themeMsg struct{ theme *theme.Theme }

// NewModel wires the window manager, popup factory, compositor and content
// store together. themeCh may be nil when hot reload is disabled.
func NewModel(cfg *config.Config, th *theme.Theme, themeCh <-chan *theme.Theme) *Model {
	m := &Model{
		cfg:      cfg,
		comp:     NewCompositor(th),
		contents: newContentStore(),
		keys:     DefaultKeyMap(cfg.Layout.Key),
		themeCh:  themeCh,
	}

	mgr := wm.NewManager(wm.Options{
		MinWindowW:     cfg.Window.MinWidth,
		MinWindowH:     cfg.Window.MinHeight,
		DefaultWindowW: cfg.Window.DefaultWidth,
		DefaultWindowH: cfg.Window.DefaultHeight,
		TaskbarHeight:  cfg.Taskbar.Height,
		MenuPageSize:   cfg.Menu.PageSize,
	}, nil)

	factory := overlay.NewFactory(mgr.Viewport, cfg.Editor.WrapWidth)
	mgr.SetFactory(factory)

	mgr.OnWindowCreated = func(id string) { m.contents.Allocate(id) }
	mgr.OnWindowDestroyed = func(id string) { m.contents.Release(id) }

	m.mgr = mgr
	return m
}

// Manager exposes the window manager, mainly for tests.
func (m *Model) Manager() *wm.Manager { return m.mgr }

// Init requests the initial terminal size implicitly and starts listening
// for theme reloads.
func (m *Model) Init() tea.Cmd {
	return m.waitForTheme()
}

// waitForTheme blocks on the reload channel in a Cmd.
func (m *Model) waitForTheme() tea.Cmd {
	if m.themeCh == nil {
		return nil
	}
	return func() tea.Msg {
		th, ok := <-m.themeCh
		if !ok {
			return nil
		}
		return themeMsg{theme: th}
	}
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := translateMouse(msg); ok {
			m.mgr.RouteEvent(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.comp.Resize(msg.Width, msg.Height)

		// The terminal is the fullscreen extent; the first size also
		// becomes the windowed viewport.
		m.mgr.SetFullscreenSize(msg.Width, msg.Height)
		if !m.ready || !m.mgr.Fullscreen() {
			m.mgr.ResizeViewport(msg.Width, msg.Height)
		}
		m.ready = true
		return m, nil

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case themeMsg:
		m.comp.SetTheme(msg.theme)
		return m, tea.Batch(m.waitForTheme(), func() tea.Msg {
			return statusMsg{text: "theme reloaded"}
		})
	}

	return m, nil
}

// handleKey routes a key press. Quit always wins; the snapshot chord only
// applies when no overlay could want the keystroke; everything else goes to
// the window manager.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	overlayLive := m.mgr.ActivePopup() != nil || m.mgr.ActiveMenu() != nil
	if !overlayLive && key.Matches(msg, m.keys.Snapshot) {
		return m, m.saveSnapshot()
	}

	m.mgr.RouteEvent(wm.Event{
		Kind: wm.EventKeyDown,
		Key:  msg.String(),
		Raw:  tea.Msg(msg),
	})
	return m, nil
}

// saveSnapshot writes the current layout as YAML to the configured path.
func (m *Model) saveSnapshot() tea.Cmd {
	path := m.cfg.SnapshotPath()
	return func() tea.Msg {
		data, err := yaml.Marshal(m.mgr.Snapshot())
		if err == nil {
			if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr == nil {
				err = os.WriteFile(path, data, 0644)
			} else {
				err = mkErr
			}
		}
		if err != nil {
			slog.Warn("failed to save layout", "path", path, "error", err)
			return statusMsg{text: "save failed: " + err.Error(), isErr: true}
		}
		return statusMsg{text: "layout saved"}
	}
}

// translateMouse converts a BubbleTea mouse message to a routing event.
func translateMouse(msg tea.MouseMsg) (wm.Event, bool) {
	p := geometry.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return wm.PointerDown(p, wm.ButtonLeft), true
		case tea.MouseButtonRight:
			return wm.PointerDown(p, wm.ButtonRight), true
		}
		return wm.Event{}, false
	case tea.MouseActionMotion:
		return wm.PointerMove(p), true
	case tea.MouseActionRelease:
		return wm.PointerUp(p), true
	}
	return wm.Event{}, false
}

// View renders the current frame.
func (m *Model) View() string {
	if !m.ready {
		return "initializing..."
	}

	frame := m.comp.Render(m.mgr, m.contents, m.statusMsg, m.statusErr)
	if p := m.mgr.ActivePopup(); p != nil {
		b := p.Bounds()
		frame = placeOverlay(b.X, b.Y, p.View(), frame)
	}
	return frame
}

// RunOptions configures Run.
type RunOptions struct {
	Config *config.Config
	Theme  *theme.Theme
}

// Run starts the desktop and blocks until the user quits.
func Run(opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}

	var themeCh chan *theme.Theme
	var watcher *theme.FileWatcher
	if cfg.Theme.Watch && cfg.Theme.Path != "" {
		themeCh = make(chan *theme.Theme, 1)
		var err error
		watcher, err = theme.NewFileWatcher(cfg.Theme.Path, func(t *theme.Theme) {
			select {
			case themeCh <- t:
			default:
			}
		})
		if err != nil {
			slog.Warn("theme watcher unavailable", "error", err)
		} else if err := watcher.Start(); err != nil {
			slog.Warn("theme watcher failed to start", "error", err)
		}
	}
	if watcher != nil {
		defer watcher.Stop()
	}

	m := NewModel(cfg, th, themeCh)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
