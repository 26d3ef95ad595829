package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ytakei/taskwarden/internal/app"
)

// newListCommand creates the list command showing all requests.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List all requests",
		GroupID: groupInspect,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListRequestsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			if len(out.Requests) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No requests yet.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tREQUEST\tTASKS\tDONE\tAPPROVED\tCOMPLETED")
			for _, r := range out.Requests {
				completed := ""
				if r.Completed {
					completed = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
					r.RequestID, r.OriginalRequest, r.TotalTasks, r.DoneTasks, r.ApprovedTasks, completed)
			}
			return w.Flush()
		},
	}
}
