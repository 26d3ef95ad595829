package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ytakei/taskwarden/internal/app"
	"github.com/ytakei/taskwarden/internal/render"
	"github.com/ytakei/taskwarden/internal/usecase"
)

// newShowCommand creates the show command for one request.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "show <request-id>",
		Short:   "Show one request with its tasks and subtasks",
		GroupID: groupInspect,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowRequestUseCase().Execute(cmd.Context(),
				usecase.ShowRequestInput{RequestID: args[0]})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), render.StyledRequest(render.DefaultStyles(), out.Request, out.Tasks))
			return nil
		},
	}
}
