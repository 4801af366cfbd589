// Package output provides styled terminal output for scenarioflow.
//
// The [Printer] renders session progress, agent text, tool activity, and
// result banners using lipgloss styles. All output goes through an injectable
// io.Writer so tests can capture it with a buffer.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTruncateLines  = 20
	defaultTruncateLength = 60
)

// Printer renders formatted output to a writer.
//
// Use [NewPrinter] for stdout or [NewPrinterWithWriter] to capture output in
// tests. Truncation limits are adjustable via [Printer.SetTruncation].
type Printer struct {
	w              io.Writer
	truncateLines  int
	truncateLength int

	headerStyle  lipgloss.Style
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	toolStyle    lipgloss.Style
}

// NewPrinter creates a [Printer] writing to stdout.
func NewPrinter() *Printer {
	return NewPrinterWithWriter(os.Stdout)
}

// NewPrinterWithWriter creates a [Printer] writing to the given writer.
func NewPrinterWithWriter(w io.Writer) *Printer {
	return &Printer{
		w:              w,
		truncateLines:  defaultTruncateLines,
		truncateLength: defaultTruncateLength,
		headerStyle:    lipgloss.NewStyle().Bold(true),
		successStyle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		errorStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		dimStyle:       lipgloss.NewStyle().Faint(true),
		toolStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

// SetTruncation adjusts the line count and line length limits used when
// rendering tool results and header summaries. Non-positive values keep the
// current limits.
func (p *Printer) SetTruncation(lines, length int) {
	if lines > 0 {
		p.truncateLines = lines
	}
	if length > 0 {
		p.truncateLength = length
	}
}

// Header prints a run header with a label and a truncated detail line.
func (p *Printer) Header(label, detail string) {
	fmt.Fprintln(p.w, p.headerStyle.Render("═══ "+label+" ═══"))
	if detail != "" {
		fmt.Fprintln(p.w, p.dimStyle.Render(Truncate(detail, p.truncateLength)))
	}
	fmt.Fprintln(p.w)
}

// SessionStarted prints the session start marker.
func (p *Printer) SessionStarted() {
	fmt.Fprintln(p.w, p.dimStyle.Render("● Session started"))
	fmt.Fprintln(p.w)
}

// SessionComplete prints the session completion marker.
func (p *Printer) SessionComplete() {
	fmt.Fprintln(p.w, p.dimStyle.Render("● Session complete"))
}

// AgentText prints a block of agent text output.
func (p *Printer) AgentText(text string) {
	if text == "" {
		return
	}
	fmt.Fprintf(p.w, "%s\n\n", text)
}

// ToolUse prints a tool invocation with its most relevant inputs.
func (p *Printer) ToolUse(name, description, command, filePath string) {
	fmt.Fprintln(p.w, p.toolStyle.Render("┌─ Tool: "+name))
	if description != "" {
		fmt.Fprintln(p.w, p.toolStyle.Render("│  "+description))
	}
	if command != "" {
		fmt.Fprintln(p.w, p.toolStyle.Render("│  $ "+command))
	}
	if filePath != "" {
		fmt.Fprintln(p.w, p.toolStyle.Render("│  File: "+filePath))
	}
	fmt.Fprintln(p.w, p.toolStyle.Render("└─"))
}

// ToolResult prints tool execution output, eliding the middle of long output.
func (p *Printer) ToolResult(stdout, stderr string) {
	if stdout != "" {
		fmt.Fprintf(p.w, "   %s\n\n", strings.ReplaceAll(p.elide(stdout), "\n", "\n   "))
	}
	if stderr != "" {
		fmt.Fprintf(p.w, "   %s\n\n", p.dimStyle.Render("[stderr] "+stderr))
	}
}

// Success prints a success banner.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, p.successStyle.Render("✓ "+msg))
}

// Error prints an error banner.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, p.errorStyle.Render("✗ "+msg))
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, p.dimStyle.Render(msg))
}

// Line prints an unstyled line.
func (p *Printer) Line(msg string) {
	fmt.Fprintln(p.w, msg)
}

// elide keeps the head and tail of long output, replacing the middle with an
// omission indicator.
func (p *Printer) elide(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= p.truncateLines {
		return s
	}

	keep := p.truncateLines / 2
	omitted := len(lines) - 2*keep
	return strings.Join(lines[:keep], "\n") +
		fmt.Sprintf("\n  ... (%d lines omitted) ...\n", omitted) +
		strings.Join(lines[len(lines)-keep:], "\n")
}

// Truncate shortens s to at most maxLen characters, appending "..." when
// truncation occurs.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen || maxLen < 4 {
		return s
	}
	return s[:maxLen-3] + "..."
}
