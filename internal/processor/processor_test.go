package processor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenarioflow/internal/agent"
	"scenarioflow/internal/scenario"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessor_Process_Success(t *testing.T) {
	mock := &agent.MockAgent{ResultText: "done"}
	p := New(mock, testLogger())

	outcome := p.Process(context.Background(), `scenario_name: "Refund"
domain: "finance"`, map[string]any{"amount": 50})

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, "Refund", outcome.ScenarioName)
	assert.Equal(t, "finance", outcome.Domain)
	assert.Equal(t, "done", outcome.Result)
	assert.Equal(t, "Successfully executed workflow 'Refund' using agent", outcome.Message)
}

func TestProcessor_Process_DefaultsApplied(t *testing.T) {
	mock := &agent.MockAgent{ResultText: "ok"}
	p := New(mock, testLogger())

	outcome := p.Process(context.Background(), "some_key: some_value", nil)

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, scenario.DefaultScenarioName, outcome.ScenarioName)
	assert.Equal(t, scenario.DefaultDomain, outcome.Domain)
	assert.Equal(t, "Successfully executed workflow 'Unnamed Scenario' using agent", outcome.Message)
}

func TestProcessor_Process_NoAgent(t *testing.T) {
	p := New(nil, testLogger())

	outcome := p.Process(context.Background(), `scenario_name: "Refund"`, nil)

	assert.Equal(t, StatusError, outcome.Status)
	assert.Equal(t, "No agent set for workflow processing", outcome.Message)
	assert.Empty(t, outcome.ScenarioName)
	assert.Empty(t, outcome.Result)
}

func TestProcessor_Process_NoAgent_NeverInvokesBackend(t *testing.T) {
	// Bind, unbind via a fresh processor, and confirm no prompt was recorded.
	mock := &agent.MockAgent{ResultText: "should not run"}
	p := New(nil, testLogger())

	p.Process(context.Background(), "scenario_name: X", map[string]any{"k": "v"})

	assert.Empty(t, mock.RecordedPrompts)
}

func TestProcessor_Process_InvalidYAML(t *testing.T) {
	mock := &agent.MockAgent{ResultText: "ok"}
	p := New(mock, testLogger())

	outcome := p.Process(context.Background(), "scenario_name: [unclosed", nil)

	assert.Equal(t, StatusError, outcome.Status)
	assert.Contains(t, outcome.Message, "Error parsing workflow YAML")
	assert.Contains(t, outcome.Message, "yaml")
	assert.Empty(t, mock.RecordedPrompts)
}

func TestProcessor_Process_AgentFailureWrapped(t *testing.T) {
	mock := &agent.MockAgent{Err: errors.New("agent exited with code 1")}
	p := New(mock, testLogger())

	outcome := p.Process(context.Background(), `scenario_name: "Refund"`, nil)

	assert.Equal(t, StatusError, outcome.Status)
	assert.Contains(t, outcome.Message, "workflow execution failed")
	assert.Contains(t, outcome.Message, "agent exited with code 1")
}

func TestProcessor_SetAgent_LateBinding(t *testing.T) {
	p := New(nil, testLogger())

	outcome := p.Process(context.Background(), "scenario_name: X", nil)
	require.Equal(t, StatusError, outcome.Status)

	mock := &agent.MockAgent{ResultText: "bound"}
	p.SetAgent(mock)

	outcome = p.Process(context.Background(), "scenario_name: X", nil)
	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, "bound", outcome.Result)
}

func TestProcessor_Process_DocumentTextVerbatimInPrompt(t *testing.T) {
	workflowYAML := `scenario_name: "Refund"
domain: "finance"
steps:
  - type: EXECUTE
    item_type: TOOL
    name: refund_tool
    input: "{params.amount}"`

	mock := &agent.MockAgent{ResultText: "ok"}
	p := New(mock, testLogger())

	p.Process(context.Background(), workflowYAML, nil)

	require.Len(t, mock.RecordedPrompts, 1)
	assert.Contains(t, mock.RecordedPrompts[0], workflowYAML)
}

func TestProcessor_Process_ParamsSection(t *testing.T) {
	tests := []struct {
		name       string
		params     map[string]any
		wantParams bool
	}{
		{name: "nil params omit section", params: nil, wantParams: false},
		{name: "empty params omit section", params: map[string]any{}, wantParams: false},
		{name: "params render section", params: map[string]any{"amount": 50, "customer": "acme"}, wantParams: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &agent.MockAgent{ResultText: "ok"}
			p := New(mock, testLogger())

			p.Process(context.Background(), "scenario_name: X", tt.params)

			require.Len(t, mock.RecordedPrompts, 1)
			prompt := mock.RecordedPrompts[0]

			if tt.wantParams {
				assert.Contains(t, prompt, "Parameters:")
				assert.Contains(t, prompt, `"amount": 50`)
				assert.Contains(t, prompt, `"customer": "acme"`)
			} else {
				assert.NotContains(t, prompt, "Parameters:")
			}
		})
	}
}

func TestProcessor_Process_Idempotent(t *testing.T) {
	workflowYAML := `scenario_name: "Refund"
domain: "finance"`
	params := map[string]any{"amount": 50, "reason": "damaged"}

	mock := &agent.MockAgent{ResultText: "done"}
	p := New(mock, testLogger())

	first := p.Process(context.Background(), workflowYAML, params)
	second := p.Process(context.Background(), workflowYAML, params)

	assert.Equal(t, first, second)

	// The deterministic agent also received identical instructions.
	require.Len(t, mock.RecordedPrompts, 2)
	assert.Equal(t, mock.RecordedPrompts[0], mock.RecordedPrompts[1])
}

func TestProcessor_Process_NilLoggerFallsBack(t *testing.T) {
	mock := &agent.MockAgent{ResultText: "ok"}
	p := New(mock, nil)

	outcome := p.Process(context.Background(), "scenario_name: X", nil)

	assert.Equal(t, StatusSuccess, outcome.Status)
}
