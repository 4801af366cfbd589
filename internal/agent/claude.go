package agent

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EventHandler receives parsed events as they arrive from a running agent.
// Handlers are invoked sequentially from the run loop; a nil handler is
// permitted and disables live event delivery.
type EventHandler func(Event)

// ClaudeAgent implements [Agent] by spawning the Claude CLI as a subprocess.
//
// The CLI is invoked in non-interactive mode with stream-json output. Text
// blocks from assistant events are accumulated into [Response.Result.Text];
// all events are additionally forwarded to the configured [EventHandler] so
// callers can render live progress.
//
// Create instances with [NewClaudeAgent]. The zero value is not usable.
type ClaudeAgent struct {
	binaryPath   string
	outputFormat string
	model        string
	parser       Parser
	handler      EventHandler
}

// Option configures a [ClaudeAgent].
type Option func(*ClaudeAgent)

// WithModel selects the model passed to the CLI via --model.
// An empty value leaves model selection to the CLI's own default.
func WithModel(model string) Option {
	return func(a *ClaudeAgent) { a.model = model }
}

// WithEventHandler registers a handler for live event delivery.
func WithEventHandler(handler EventHandler) Option {
	return func(a *ClaudeAgent) { a.handler = handler }
}

// WithParser overrides the stream parser. Primarily for tests.
func WithParser(parser Parser) Option {
	return func(a *ClaudeAgent) { a.parser = parser }
}

// NewClaudeAgent creates a [ClaudeAgent] for the given CLI binary and output
// format. Pass empty strings to use "claude" from PATH and "stream-json".
func NewClaudeAgent(binaryPath, outputFormat string, opts ...Option) *ClaudeAgent {
	a := &ClaudeAgent{
		binaryPath:   binaryPath,
		outputFormat: outputFormat,
		parser:       NewParser(),
	}
	if a.binaryPath == "" {
		a.binaryPath = "claude"
	}
	if a.outputFormat == "" {
		a.outputFormat = "stream-json"
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// buildArgs assembles the CLI argument list for a prompt.
func (a *ClaudeAgent) buildArgs(prompt string) []string {
	args := []string{
		"--dangerously-skip-permissions",
		"-p", prompt,
		"--output-format", a.outputFormat,
	}
	if a.model != "" {
		args = append(args, "--model", a.model)
	}
	return args
}

// Run executes the prompt via the Claude CLI and blocks until the session
// completes, returning the accumulated text response.
//
// The subprocess inherits the context: cancellation kills the process. Spawn
// failures and non-zero exit codes are returned as errors; stderr output is
// mirrored to the host process stderr for diagnosis.
func (a *ClaudeAgent) Run(ctx context.Context, prompt string) (*Response, error) {
	cmd := exec.CommandContext(ctx, a.binaryPath, a.buildArgs(prompt)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start agent process: %w", err)
	}

	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			fmt.Fprintf(os.Stderr, "[agent stderr] %s\n", scanner.Text())
		}
	}()

	var text strings.Builder
	for event := range a.parser.Parse(stdout) {
		if event.IsText() {
			if text.Len() > 0 {
				text.WriteString("\n")
			}
			text.WriteString(event.Text)
		}
		if a.handler != nil {
			a.handler(event)
		}
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("agent exited with code %d", exitErr.ExitCode())
		}
		return nil, fmt.Errorf("agent execution failed: %w", err)
	}

	return &Response{Result: Result{Text: text.String()}}, nil
}
