// Package main provides the CLI entrypoint for termdesk.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marbleid/termdesk/internal/config"
	"github.com/marbleid/termdesk/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	palette    *theme.Theme
	globalOpts struct {
		verbose    bool
		configPath string
		themePath  string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "termdesk",
	Short: "Desktop environment for the terminal",
	Long: `termdesk is a desktop environment that runs inside a terminal.

It provides overlapping, draggable and resizable windows, a taskbar for
minimized windows, per-window context menus with editable entries, and
modal dialogs for color editing and help.

Running termdesk without a subcommand launches the desktop.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// A --theme flag overrides the configured palette path
		if globalOpts.themePath != "" {
			cfg.Theme.Path = globalOpts.themePath
		}

		palette, err = theme.Load(cfg.Theme.Path)
		if err != nil {
			return fmt.Errorf("failed to load theme: %w", err)
		}

		return nil
	},
	// Default to the desktop when no subcommand is provided
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDesktop(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/termdesk/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themePath, "theme", "",
		"Path to theme file (default: built-in palette)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout stays clean for the alt screen
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
