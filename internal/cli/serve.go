package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytakei/taskwarden/internal/app"
	"github.com/ytakei/taskwarden/internal/mcptool"
)

// newServeCommand creates the serve command running the MCP server on stdio.
func newServeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Run the MCP server over stdio",
		GroupID: groupServer,
		Long: `Run the MCP server over stdin/stdout until the client disconnects.

Register it with an MCP client, for example:
  { "command": "taskwarden", "args": ["serve"] }

Stdout carries the protocol, so all logging goes to the configured
log file, never to the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.StoreInitializer.Initialize(); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}

			c.Logger.Info("server", "serving MCP over stdio")
			s := mcptool.NewServer(cmd.Root().Version, c.Store, c.Clock, c.Logger)
			if err := mcptool.ServeStdio(s); err != nil {
				c.Logger.Error("server", fmt.Sprintf("stdio server stopped: %v", err))
				return err
			}
			return nil
		},
	}
}
