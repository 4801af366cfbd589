// Package cli provides the scenarioflow command-line interface.
//
// Commands are built with Cobra around an [App] container that carries the
// shared dependencies (config, printer, processor, agent, queue runner,
// scenario library). Production wiring happens in [NewApp]; tests construct
// an App directly with mocks.
package cli

import (
	"log/slog"
	"os"

	"scenarioflow/internal/agent"
	"scenarioflow/internal/batch"
	"scenarioflow/internal/config"
	"scenarioflow/internal/output"
	"scenarioflow/internal/processor"
	"scenarioflow/internal/scenario"
)

// App bundles the dependencies shared by all commands.
type App struct {
	Config    *config.Config
	Printer   *output.Printer
	Agent     agent.Agent
	Processor *processor.Processor
	Queue     *batch.Runner
	Library   *scenario.Library
}

// NewApp wires the production dependency graph from a loaded config.
//
// The Claude agent's live events are rendered through the printer so users
// see session progress, agent text, and tool activity as they happen.
func NewApp(cfg *config.Config) *App {
	printer := output.NewPrinter()
	printer.SetTruncation(cfg.Output.TruncateLines, cfg.Output.TruncateLength)

	claudeAgent := agent.NewClaudeAgent(
		cfg.Agent.BinaryPath,
		cfg.Agent.OutputFormat,
		agent.WithModel(cfg.Agent.Model),
		agent.WithEventHandler(renderEvent(printer)),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	proc := processor.New(claudeAgent, logger)

	return &App{
		Config:    cfg,
		Printer:   printer,
		Agent:     claudeAgent,
		Processor: proc,
		Queue:     batch.NewRunner(proc, printer),
		Library:   scenario.NewLibrary(cfg.Library.Dir),
	}
}

// renderEvent adapts agent events onto printer calls.
func renderEvent(printer *output.Printer) agent.EventHandler {
	return func(e agent.Event) {
		switch {
		case e.SessionStarted:
			printer.SessionStarted()
		case e.SessionComplete:
			printer.SessionComplete()
		case e.IsText():
			printer.AgentText(e.Text)
		case e.IsToolUse():
			printer.ToolUse(e.ToolName, e.ToolDescription, e.ToolCommand, e.ToolFilePath)
		case e.IsToolResult():
			printer.ToolResult(e.ToolStdout, e.ToolStderr)
		}
	}
}
