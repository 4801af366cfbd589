package cli

import (
	"github.com/spf13/cobra"
)

func newQueueCommand(app *App) *cobra.Command {
	var (
		paramPairs []string
		paramsFile string
	)

	cmd := &cobra.Command{
		Use:   "queue <workflow-file> [workflow-file...]",
		Short: "Process multiple workflow documents in sequence",
		Long: `Process multiple workflow documents in order, sharing the same
parameters. The queue stops on the first failure.

Example:
  scenarioflow queue intake.yaml triage.yaml refund.yaml --param region=emea`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(paramsFile, paramPairs)
			if err != nil {
				app.Printer.Error(err.Error())
				return NewExitError(1)
			}

			records := app.Queue.RunQueue(cmd.Context(), args, params)
			for _, record := range records {
				if !record.Succeeded() {
					return NewExitError(1)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&paramPairs, "param", nil, "workflow parameter as key=value (repeatable)")
	cmd.Flags().StringVar(&paramsFile, "params-file", "", "JSON file of workflow parameters")

	return cmd
}
