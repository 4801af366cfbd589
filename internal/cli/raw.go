package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRawCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <prompt>",
		Short: "Send an arbitrary prompt to the agent",
		Long: `Send an arbitrary prompt directly to the agent, bypassing workflow
document parsing. Useful for testing the agent connection.

Example:
  scenarioflow raw "Summarize the repository layout"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			app.Printer.Header("raw", prompt)

			response, err := app.Agent.Run(cmd.Context(), prompt)
			if err != nil {
				app.Printer.Error(fmt.Sprintf("agent run failed: %s", err))
				return NewExitError(1)
			}

			app.Printer.Line(response.Result.Text)
			return nil
		},
	}
}
