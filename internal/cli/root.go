// Package cli provides the command-line interface for taskwarden.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytakei/taskwarden/internal/app"
	"github.com/ytakei/taskwarden/internal/infra/jsonstore"
)

// Command group IDs.
const (
	groupServer  = "server"
	groupInspect = "inspect"
)

// NewRootCommand creates the root command for taskwarden.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var storePath string

	root := &cobra.Command{
		Use:   "taskwarden",
		Short: "Task tracker MCP server with an approval workflow",
		Long: `taskwarden tracks user requests as ordered tasks with optional subtasks.
Agents drive it over MCP (taskwarden serve); the other commands inspect
and export the same store from the terminal.

Tasks must be marked done, then approved by the user; a request closes
only when every task is done and approved.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			if storePath != "" {
				store := jsonstore.New(storePath)
				c.Store = store
				c.StoreInitializer = store
			}
			if c.Config != nil {
				for _, w := range c.Config.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&storePath, "store", "", "Path to the JSON store file (overrides config)")

	root.AddGroup(
		&cobra.Group{ID: groupServer, Title: "Server Commands:"},
		&cobra.Group{ID: groupInspect, Title: "Inspection Commands:"},
	)

	root.AddCommand(
		newServeCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newExportCommand(c),
		newTUICommand(c),
	)

	return root
}
