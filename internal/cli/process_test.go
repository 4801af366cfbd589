package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenarioflow/internal/agent"
	"scenarioflow/internal/processor"
)

func TestProcessCommand_Success(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeWorkflowFile(t, tmpDir, "refund.yaml", `scenario_name: "Refund"
domain: "finance"`)

	mock := &agent.MockAgent{ResultText: "done"}
	app, buf := newTestApp(mock)

	root := NewRootCommand(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process", path, "--param", "amount=50"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "done")
	assert.Contains(t, buf.String(), "Successfully executed workflow 'Refund' using agent")

	require.Len(t, mock.RecordedPrompts, 1)
	assert.Contains(t, mock.RecordedPrompts[0], `"amount": 50`)
	assert.Contains(t, mock.RecordedPrompts[0], "domain 'finance'")
}

func TestProcessCommand_JSONOutput(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeWorkflowFile(t, tmpDir, "refund.yaml", `scenario_name: "Refund"
domain: "finance"`)

	mock := &agent.MockAgent{ResultText: "done"}
	app, _ := newTestApp(mock)

	outBuf := &bytes.Buffer{}
	root := NewRootCommand(app)
	root.SetOut(outBuf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process", path, "--json"})

	err := root.Execute()
	require.NoError(t, err)

	var outcome processor.Outcome
	require.NoError(t, json.Unmarshal(outBuf.Bytes(), &outcome))
	assert.Equal(t, processor.StatusSuccess, outcome.Status)
	assert.Equal(t, "Refund", outcome.ScenarioName)
	assert.Equal(t, "finance", outcome.Domain)
	assert.Equal(t, "done", outcome.Result)
}

func TestProcessCommand_InvalidDocument(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeWorkflowFile(t, tmpDir, "bad.yaml", "scenario_name: [unclosed")

	mock := &agent.MockAgent{ResultText: "done"}
	app, buf := newTestApp(mock)

	root := NewRootCommand(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process", path})

	err := root.Execute()

	require.Error(t, err)
	code, ok := IsExitError(err)
	assert.True(t, ok)
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "Error parsing workflow YAML")
	assert.Empty(t, mock.RecordedPrompts)
}

func TestProcessCommand_MissingFile(t *testing.T) {
	mock := &agent.MockAgent{ResultText: "done"}
	app, buf := newTestApp(mock)

	root := NewRootCommand(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process", "/does/not/exist.yaml"})

	err := root.Execute()

	require.Error(t, err)
	_, ok := IsExitError(err)
	assert.True(t, ok)
	assert.Contains(t, buf.String(), "failed to read workflow file")
}

func TestProcessCommand_AgentFailure(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeWorkflowFile(t, tmpDir, "refund.yaml", `scenario_name: "Refund"`)

	mock := &agent.MockAgent{Err: errors.New("agent exited with code 1")}
	app, buf := newTestApp(mock)

	root := NewRootCommand(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process", path})

	err := root.Execute()

	require.Error(t, err)
	code, ok := IsExitError(err)
	assert.True(t, ok)
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "workflow execution failed")
}

func TestProcessCommand_ParamsFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeWorkflowFile(t, tmpDir, "refund.yaml", `scenario_name: "Refund"`)
	paramsPath := writeWorkflowFile(t, tmpDir, "params.json", `{"amount": 50, "customer": "acme"}`)

	mock := &agent.MockAgent{ResultText: "done"}
	app, _ := newTestApp(mock)

	root := NewRootCommand(app)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"process", path, "--params-file", paramsPath, "--param", "amount=75"})

	err := root.Execute()
	require.NoError(t, err)

	require.Len(t, mock.RecordedPrompts, 1)
	// Flag pairs override file entries.
	assert.Contains(t, mock.RecordedPrompts[0], `"amount": 75`)
	assert.Contains(t, mock.RecordedPrompts[0], `"customer": "acme"`)
}
