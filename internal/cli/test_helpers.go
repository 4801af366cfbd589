package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"scenarioflow/internal/agent"
	"scenarioflow/internal/batch"
	"scenarioflow/internal/config"
	"scenarioflow/internal/output"
	"scenarioflow/internal/processor"
	"scenarioflow/internal/scenario"
)

// newTestApp builds an App wired with a mock agent and a buffer-backed
// printer so tests can assert on rendered output.
func newTestApp(mock *agent.MockAgent) (*App, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	printer := output.NewPrinterWithWriter(buf)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	proc := processor.New(mock, logger)
	cfg := config.DefaultConfig()

	app := &App{
		Config:    cfg,
		Printer:   printer,
		Agent:     mock,
		Processor: proc,
		Queue:     batch.NewRunner(proc, printer),
		Library:   scenario.NewLibrary(cfg.Library.Dir),
	}
	return app, buf
}

// writeWorkflowFile writes a workflow document into dir and returns its path.
func writeWorkflowFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write workflow file: %v", err)
	}
	return path
}
