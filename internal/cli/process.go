package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scenarioflow/internal/processor"
)

func newProcessCommand(app *App) *cobra.Command {
	var (
		paramPairs []string
		paramsFile string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "process <workflow-file>",
		Short: "Process a workflow document through the agent",
		Long: `Process a YAML workflow document by handing it to the agent for
step-by-step execution.

Parameters referenced by {params.X} placeholders in the document can be
supplied with repeated --param flags or a JSON --params-file.

Example:
  scenarioflow process refund.yaml --param amount=50 --param customer=acme`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(paramsFile, paramPairs)
			if err != nil {
				app.Printer.Error(err.Error())
				return NewExitError(1)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				app.Printer.Error(fmt.Sprintf("failed to read workflow file: %s", err))
				return NewExitError(1)
			}

			app.Printer.Header("process: "+args[0], "")

			outcome := app.Processor.Process(cmd.Context(), string(data), params)

			if asJSON {
				encoded, err := json.MarshalIndent(outcome, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode outcome: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			} else {
				renderOutcome(app, outcome)
			}

			if outcome.Status != processor.StatusSuccess {
				return NewExitError(1)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&paramPairs, "param", nil, "workflow parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&paramsFile, "params-file", "", "JSON file of workflow parameters")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")

	return cmd
}

func renderOutcome(app *App, outcome processor.Outcome) {
	if outcome.Status == processor.StatusSuccess {
		app.Printer.Line(outcome.Result)
		app.Printer.Line("")
		app.Printer.Success(outcome.Message)
		return
	}
	app.Printer.Error(outcome.Message)
}
