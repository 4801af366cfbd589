package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"scenarioflow/internal/scenario"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List workflow documents in the scenario library",
		Long: `Scan a directory for YAML workflow documents and print their
scenario names and domains. Defaults to the configured library directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			library := app.Library
			if len(args) == 1 {
				library = scenario.NewLibrary(args[0])
			}

			entries, err := library.Scan()
			if err != nil {
				app.Printer.Error(err.Error())
				return NewExitError(1)
			}

			if len(entries) == 0 {
				app.Printer.Info("no workflow documents found")
				return nil
			}

			for _, entry := range entries {
				if entry.Err != nil {
					app.Printer.Error(fmt.Sprintf("%s: %s", entry.Path, entry.Err))
					continue
				}
				app.Printer.Line(fmt.Sprintf("%-40s %-30s %s", entry.Path, entry.ScenarioName, entry.Domain))
			}
			return nil
		},
	}
}
