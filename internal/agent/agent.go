// Package agent defines the execution backend contract for scenarioflow and
// provides the Claude CLI implementation of it.
//
// An agent accepts a single natural-language instruction and returns a textual
// result. Nothing further is assumed about how the agent performs the work;
// scenarioflow treats it as an opaque executor. The production implementation,
// [ClaudeAgent], spawns the Claude CLI as a subprocess and parses its
// stream-json output into [Event] values, accumulating assistant text into the
// response.
//
// For testing, use [MockAgent], which implements [Agent] without spawning
// real processes.
package agent

import "context"

// Agent is the execution backend contract.
//
// Run submits one instruction and blocks until the agent completes, returning
// the structured [Response]. The context is honored for cancellation; a
// canceled context terminates the underlying work.
type Agent interface {
	Run(ctx context.Context, prompt string) (*Response, error)
}

// Response is the structured reply from an agent run.
type Response struct {
	// Result carries the agent's textual payload.
	Result Result
}

// Result holds the textual payload of an agent response.
type Result struct {
	// Text is the accumulated free-text output of the agent.
	Text string
}
