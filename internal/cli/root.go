package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scenarioflow/internal/config"
)

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "scenarioflow",
		Short: "Execute declarative workflow scenarios through an agent",
		Long: `scenarioflow processes YAML workflow documents by delegating their
execution to a natural-language agent. The document text is embedded verbatim
in an instruction; the agent interprets and executes the workflow steps.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newProcessCommand(app))
	root.AddCommand(newQueueCommand(app))
	root.AddCommand(newValidateCommand(app))
	root.AddCommand(newListCommand(app))
	root.AddCommand(newRawCommand(app))

	return root
}

// Execute is the main entry point: it loads configuration, wires the app,
// runs the root command, and exits with the appropriate code.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := NewApp(cfg)
	root := NewRootCommand(app)

	if err := root.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
