package cli

import (
	"github.com/spf13/cobra"
	"github.com/ytakei/taskwarden/internal/app"
	"github.com/ytakei/taskwarden/internal/tui"
)

// launchTUIFunc is a function variable so tests can stub the TUI launch.
var launchTUIFunc = tui.Run

// newTUICommand creates the tui command launching the progress viewer.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Short:   "Browse requests in a read-only terminal UI",
		GroupID: groupInspect,
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
