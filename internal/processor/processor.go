// Package processor implements the workflow adapter at the heart of
// scenarioflow.
//
// The adapter does not interpret workflow semantics itself. It parses a
// workflow document for descriptive metadata, assembles a natural-language
// instruction around the verbatim document text, hands the instruction to an
// [agent.Agent] backend, and repackages the agent's free-text reply as a
// structured [Outcome]. Step sequencing, placeholder substitution, and tool
// invocation are all delegated to the agent via the instruction.
//
// Key types:
//   - [Processor] holds the (optionally late-bound) agent backend
//   - [Outcome] is the structured success/error record returned by Process
package processor

import (
	"context"
	"fmt"
	"log/slog"

	"scenarioflow/internal/agent"
	"scenarioflow/internal/scenario"
)

// Status tags an [Outcome] as success or error.
type Status string

const (
	// StatusSuccess indicates the workflow was executed by the agent.
	StatusSuccess Status = "success"

	// StatusError indicates processing failed before or during execution.
	StatusError Status = "error"
)

// Outcome is the structured result of one processing attempt.
//
// On success all fields are populated; on error only Status and Message are.
// The zero values of the optional fields are omitted from JSON output.
type Outcome struct {
	// Status is "success" or "error".
	Status Status `json:"status"`

	// ScenarioName restates the document's scenario name.
	ScenarioName string `json:"scenario_name,omitempty"`

	// Domain restates the document's domain.
	Domain string `json:"domain,omitempty"`

	// Result is the agent's textual payload.
	Result string `json:"result,omitempty"`

	// Message is a human-readable summary of the attempt.
	Message string `json:"message"`
}

// Processor is the workflow adapter.
//
// The agent backend may be supplied at construction or bound later via
// [Processor.SetAgent]; late binding supports hosts where the agent depends
// on subsystems initialized after the processor. SetAgent is expected to be
// called at most once, before any concurrent Process calls begin — no
// synchronization guards rebinding.
type Processor struct {
	agent  agent.Agent
	logger *slog.Logger
}

// New creates a [Processor].
//
// The agent may be nil; [Processor.Process] returns an error [Outcome] until
// one is bound. A nil logger falls back to [slog.Default].
func New(a agent.Agent, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("workflow processor initialized")
	return &Processor{
		agent:  a,
		logger: logger,
	}
}

// SetAgent binds the agent backend after construction.
func (p *Processor) SetAgent(a agent.Agent) {
	p.agent = a
}

// Process executes a workflow document through the agent backend.
//
// Process never panics and never returns an error value: every failure is
// converted into an error [Outcome]. The recognized failure kinds are a
// missing agent binding, a malformed document (the parser diagnostic is
// embedded in the message), and an agent execution failure.
//
// The agent call is the sole blocking point; ctx is passed through to it for
// cancellation. Each call is independent — nothing is persisted or mutated.
func (p *Processor) Process(ctx context.Context, workflowYAML string, params map[string]any) Outcome {
	if p.agent == nil {
		return Outcome{
			Status:  StatusError,
			Message: "No agent set for workflow processing",
		}
	}

	p.logger.Info("processing workflow")

	doc, err := scenario.Parse(workflowYAML)
	if err != nil {
		p.logger.Error("workflow parse failed", "error", err)
		return Outcome{
			Status:  StatusError,
			Message: err.Error(),
		}
	}

	p.logger.Info("executing scenario",
		"scenario", doc.ScenarioName,
		"domain", doc.Domain,
	)

	instruction, err := BuildInstruction(doc.Domain, workflowYAML, params)
	if err != nil {
		return Outcome{
			Status:  StatusError,
			Message: fmt.Sprintf("Error assembling instruction: %s", err),
		}
	}

	response, err := p.agent.Run(ctx, instruction)
	if err != nil {
		return Outcome{
			Status:  StatusError,
			Message: fmt.Sprintf("workflow execution failed: %s", err),
		}
	}

	return Outcome{
		Status:       StatusSuccess,
		ScenarioName: doc.ScenarioName,
		Domain:       doc.Domain,
		Result:       response.Result.Text,
		Message:      fmt.Sprintf("Successfully executed workflow '%s' using agent", doc.ScenarioName),
	}
}
