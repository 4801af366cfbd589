package batch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenarioflow/internal/agent"
	"scenarioflow/internal/output"
	"scenarioflow/internal/processor"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeWorkflow(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunner_RunQueue_AllSucceed(t *testing.T) {
	tmpDir := t.TempDir()
	first := writeWorkflow(t, tmpDir, "a.yaml", `scenario_name: "A"`)
	second := writeWorkflow(t, tmpDir, "b.yaml", `scenario_name: "B"
domain: "finance"`)

	mock := &agent.MockAgent{ResultText: "done"}
	buf := &bytes.Buffer{}
	runner := NewRunner(processor.New(mock, testLogger()), output.NewPrinterWithWriter(buf))

	records := runner.RunQueue(context.Background(), []string{first, second}, nil)

	require.Len(t, records, 2)
	assert.True(t, records[0].Succeeded())
	assert.Equal(t, "A", records[0].ScenarioName)
	assert.True(t, records[1].Succeeded())
	assert.Equal(t, "B", records[1].ScenarioName)
	assert.NotEqual(t, records[0].RunID, records[1].RunID)
	assert.Len(t, mock.RecordedPrompts, 2)
	assert.Contains(t, buf.String(), "queue complete")
}

func TestRunner_RunQueue_StopsOnFirstFailure(t *testing.T) {
	tmpDir := t.TempDir()
	first := writeWorkflow(t, tmpDir, "a.yaml", `scenario_name: "A"`)
	second := writeWorkflow(t, tmpDir, "b.yaml", "scenario_name: [unclosed")
	third := writeWorkflow(t, tmpDir, "c.yaml", `scenario_name: "C"`)

	mock := &agent.MockAgent{ResultText: "done"}
	buf := &bytes.Buffer{}
	runner := NewRunner(processor.New(mock, testLogger()), output.NewPrinterWithWriter(buf))

	records := runner.RunQueue(context.Background(), []string{first, second, third}, nil)

	require.Len(t, records, 2)
	assert.True(t, records[0].Succeeded())
	assert.False(t, records[1].Succeeded())
	assert.Contains(t, records[1].Message, "Error parsing workflow YAML")

	// Third workflow never reached the agent.
	assert.Len(t, mock.RecordedPrompts, 1)
	assert.Contains(t, buf.String(), "queue stopped")
	assert.Contains(t, buf.String(), "(skipped)")
}

func TestRunner_RunQueue_MissingFile(t *testing.T) {
	mock := &agent.MockAgent{ResultText: "done"}
	buf := &bytes.Buffer{}
	runner := NewRunner(processor.New(mock, testLogger()), output.NewPrinterWithWriter(buf))

	records := runner.RunQueue(context.Background(), []string{"/does/not/exist.yaml"}, nil)

	require.Len(t, records, 1)
	assert.False(t, records[0].Succeeded())
	assert.Contains(t, records[0].Message, "failed to read workflow file")
	assert.Empty(t, mock.RecordedPrompts)
}

func TestRunner_RunQueue_AgentFailure(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeWorkflow(t, tmpDir, "a.yaml", `scenario_name: "A"`)

	mock := &agent.MockAgent{Err: errors.New("agent exited with code 1")}
	buf := &bytes.Buffer{}
	runner := NewRunner(processor.New(mock, testLogger()), output.NewPrinterWithWriter(buf))

	records := runner.RunQueue(context.Background(), []string{path}, nil)

	require.Len(t, records, 1)
	assert.False(t, records[0].Succeeded())
	assert.Contains(t, records[0].Message, "workflow execution failed")
}

func TestRunner_RunQueue_SharedParams(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeWorkflow(t, tmpDir, "a.yaml", `scenario_name: "A"`)

	mock := &agent.MockAgent{ResultText: "done"}
	runner := NewRunner(processor.New(mock, testLogger()), output.NewPrinterWithWriter(&bytes.Buffer{}))

	runner.RunQueue(context.Background(), []string{path}, map[string]any{"amount": 50})

	require.Len(t, mock.RecordedPrompts, 1)
	assert.Contains(t, mock.RecordedPrompts[0], `"amount": 50`)
}
