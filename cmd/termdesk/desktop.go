package main

import (
	"github.com/spf13/cobra"

	"github.com/marbleid/termdesk/internal/tui"
)

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Launch the terminal desktop",
	Long: `Launch the interactive terminal desktop.

The desktop provides:
  - Overlapping windows, dragged by their title bar
  - Resize from the bottom-right corner handle
  - A taskbar holding minimized windows
  - Right-click context menus with editable entries
  - Color, help and text-editor dialogs

Key bindings:
  ctrl+n      Open a new window
  ctrl+w      Minimize the focused window
  ctrl+f      Toggle fullscreen
  ctrl+s      Save the window layout
  ctrl+q      Quit`,
	RunE: runDesktop,
}

func init() {
	rootCmd.AddCommand(desktopCmd)
}

func runDesktop(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.RunOptions{
		Config: cfg,
		Theme:  palette,
	})
}
