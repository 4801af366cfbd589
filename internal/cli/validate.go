package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scenarioflow/internal/scenario"
)

func newValidateCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <workflow-file>",
		Short: "Check that a workflow document parses",
		Long: `Parse a workflow document without executing it, reporting the
extracted scenario name and domain. No agent is involved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				app.Printer.Error(fmt.Sprintf("failed to read workflow file: %s", err))
				return NewExitError(1)
			}

			doc, err := scenario.Parse(string(data))
			if err != nil {
				app.Printer.Error(err.Error())
				return NewExitError(1)
			}

			app.Printer.Success(fmt.Sprintf("%s: scenario %q, domain %q", args[0], doc.ScenarioName, doc.Domain))
			return nil
		},
	}
}
