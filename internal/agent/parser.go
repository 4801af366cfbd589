package agent

import (
	"bufio"
	"encoding/json"
	"io"
)

// defaultBufferSize is the maximum size of a single stream-json line.
// Tool results can embed whole file contents, so the ceiling is generous.
const defaultBufferSize = 10 * 1024 * 1024

// Parser parses streaming JSON output from an agent process.
//
// Each line of input is expected to be a complete JSON object representing a
// [StreamEvent]. Malformed lines are silently skipped for resilience against
// partial or corrupted output. The channel returned by Parse is closed on EOF,
// reader closure, or an unrecoverable read error.
type Parser interface {
	Parse(reader io.Reader) <-chan Event
}

// StreamParser implements [Parser] for the Claude CLI's stream-json format.
//
// Create instances with [NewParser] to get sane buffer defaults.
type StreamParser struct {
	// BufferSize is the maximum allowed length of a single JSON line.
	// Values <= 0 fall back to the 10MB default.
	BufferSize int
}

// NewParser creates a [StreamParser] with the default buffer size.
func NewParser() *StreamParser {
	return &StreamParser{BufferSize: defaultBufferSize}
}

// Parse reads stream-json lines from the reader and emits parsed [Event]
// values on the returned channel. A goroutine owns the read loop; the channel
// is closed when the reader is exhausted.
//
// Empty lines and lines that fail JSON parsing are skipped. Scanner errors
// (e.g. a line exceeding BufferSize) terminate parsing.
func (p *StreamParser) Parse(reader io.Reader) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		scanner := bufio.NewScanner(reader)

		bufSize := p.BufferSize
		if bufSize <= 0 {
			bufSize = defaultBufferSize
		}
		buf := make([]byte, 0, 1024*1024)
		scanner.Buffer(buf, bufSize)

		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}

			var streamEvent StreamEvent
			if err := json.Unmarshal([]byte(line), &streamEvent); err != nil {
				continue
			}

			events <- NewEventFromStream(&streamEvent)
		}

		// scanner.Err() intentionally unchecked: EOF and pipe closure are
		// the normal termination paths here.
	}()

	return events
}

// ParseSingle parses one stream-json line into an [Event].
//
// Unlike [Parser.Parse], malformed input is an error rather than being
// skipped. Useful for tests and debugging.
func ParseSingle(line string) (Event, error) {
	var streamEvent StreamEvent
	if err := json.Unmarshal([]byte(line), &streamEvent); err != nil {
		return Event{}, err
	}
	return NewEventFromStream(&streamEvent), nil
}
