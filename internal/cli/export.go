package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytakei/taskwarden/internal/app"
	"gopkg.in/yaml.v3"
)

// newExportCommand creates the export command dumping the whole document.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Dump the whole store for backup or reporting",
		GroupID: groupInspect,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := c.Store.Load()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "yaml":
				// Round-trip through JSON so the YAML keys match the wire
				// format (yaml.Marshal would lowercase the field names).
				jsonData, err := json.Marshal(doc)
				if err != nil {
					return err
				}
				var generic any
				if err := json.Unmarshal(jsonData, &generic); err != nil {
					return err
				}
				data, err := yaml.Marshal(generic)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}
