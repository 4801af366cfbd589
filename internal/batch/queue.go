// Package batch runs a sequence of workflow documents through the processor.
//
// The queue executes documents in order and stops on the first failure,
// mirroring the fail-fast behavior callers expect from scripted runs. Each
// run produces a [RunRecord] with a unique run ID, and a styled summary is
// printed when the queue finishes or aborts.
package batch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"scenarioflow/internal/output"
	"scenarioflow/internal/processor"
)

// RunRecord captures the result of processing one workflow document.
type RunRecord struct {
	// RunID uniquely identifies this run.
	RunID uuid.UUID

	// Path is the workflow document file that was processed.
	Path string

	// ScenarioName is the scenario name from the success outcome, when available.
	ScenarioName string

	// Status is the outcome status ("success" or "error").
	Status processor.Status

	// Message is the outcome message.
	Message string

	// Duration is the wall-clock time the run took.
	Duration time.Duration
}

// Succeeded reports whether this run produced a success outcome.
func (r RunRecord) Succeeded() bool {
	return r.Status == processor.StatusSuccess
}

// Runner executes queues of workflow documents.
//
// Create instances with [NewRunner]. The runner is stateless between calls;
// each [Runner.RunQueue] invocation is independent.
type Runner struct {
	processor *processor.Processor
	printer   *output.Printer
}

// NewRunner creates a [Runner] bound to a processor and printer.
func NewRunner(p *processor.Processor, printer *output.Printer) *Runner {
	return &Runner{
		processor: p,
		printer:   printer,
	}
}

// RunQueue processes the given workflow files in order with shared params.
//
// Execution stops at the first failure: an unreadable file or an error
// outcome ends the queue, and remaining files are skipped. The returned
// records cover only the files that were attempted. A summary is printed
// regardless of how the queue ends.
func (r *Runner) RunQueue(ctx context.Context, paths []string, params map[string]any) []RunRecord {
	queueStart := time.Now()
	records := make([]RunRecord, 0, len(paths))

	r.printer.Header(fmt.Sprintf("queue: %d workflows", len(paths)), "")

	for i, path := range paths {
		r.printer.Info(fmt.Sprintf("[%d/%d] %s", i+1, len(paths), path))

		record := r.runOne(ctx, path, params)
		records = append(records, record)

		if !record.Succeeded() {
			r.printer.Error(fmt.Sprintf("queue stopped at %s: %s", path, record.Message))
			break
		}

		r.printer.Success(fmt.Sprintf("%s (%s)", record.ScenarioName, record.Duration.Round(time.Millisecond)))
	}

	r.printSummary(records, paths, time.Since(queueStart))
	return records
}

func (r *Runner) runOne(ctx context.Context, path string, params map[string]any) RunRecord {
	record := RunRecord{
		RunID: uuid.New(),
		Path:  path,
	}

	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		record.Status = processor.StatusError
		record.Message = fmt.Sprintf("failed to read workflow file: %s", err)
		record.Duration = time.Since(start)
		return record
	}

	outcome := r.processor.Process(ctx, string(data), params)
	record.ScenarioName = outcome.ScenarioName
	record.Status = outcome.Status
	record.Message = outcome.Message
	record.Duration = time.Since(start)
	return record
}

func (r *Runner) printSummary(records []RunRecord, allPaths []string, total time.Duration) {
	completed := 0
	for _, rec := range records {
		if rec.Succeeded() {
			completed++
		}
	}
	failed := len(records) - completed
	remaining := len(allPaths) - len(records)

	r.printer.Line("")
	if failed == 0 && remaining == 0 {
		r.printer.Success("queue complete")
	} else {
		r.printer.Error("queue stopped")
	}
	r.printer.Info(fmt.Sprintf("completed: %d | failed: %d | skipped: %d", completed, failed, remaining))

	for _, rec := range records {
		marker := "✓"
		if !rec.Succeeded() {
			marker = "✗"
		}
		r.printer.Line(fmt.Sprintf("  %s %-30s %s  run=%s", marker, rec.Path, rec.Duration.Round(time.Millisecond), rec.RunID))
	}
	for i := len(records); i < len(allPaths); i++ {
		r.printer.Line(fmt.Sprintf("  ○ %-30s (skipped)", allPaths[i]))
	}

	r.printer.Info(fmt.Sprintf("total: %s", total.Round(time.Millisecond)))
}
