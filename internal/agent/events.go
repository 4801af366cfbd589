package agent

// StreamEvent is a raw JSON event from the Claude CLI's stream-json output.
//
// This is the low-level structure that maps directly onto the wire format.
// Most callers should work with [Event] instead, which extracts the commonly
// needed fields. The original structure remains reachable via [Event.Raw].
type StreamEvent struct {
	Type          string          `json:"type"`
	Subtype       string          `json:"subtype,omitempty"`
	Message       *MessageContent `json:"message,omitempty"`
	ToolUseResult *ToolResult     `json:"tool_use_result,omitempty"`
}

// MessageContent is the content of a message in an assistant event.
type MessageContent struct {
	Content []ContentBlock `json:"content,omitempty"`
}

// ContentBlock is a single block within a [MessageContent].
//
// Type is "text" for text output (Text populated) or "tool_use" for a tool
// invocation (Name and Input populated).
type ContentBlock struct {
	Type  string     `json:"type"`
	Text  string     `json:"text,omitempty"`
	Name  string     `json:"name,omitempty"`
	Input *ToolInput `json:"input,omitempty"`
}

// ToolInput carries the parameters of a tool invocation. Which fields are
// populated depends on the tool: Command for shell tools, FilePath and
// Content for file operations.
type ToolInput struct {
	Command     string `json:"command,omitempty"`
	Description string `json:"description,omitempty"`
	FilePath    string `json:"file_path,omitempty"`
	Content     string `json:"content,omitempty"`
}

// ToolResult is the output of a tool execution, delivered in user events.
type ToolResult struct {
	Stdout      string `json:"stdout,omitempty"`
	Stderr      string `json:"stderr,omitempty"`
	Interrupted bool   `json:"interrupted,omitempty"`
}

// EventType classifies events in the agent's streaming output.
//
// A typical session emits system (init), then alternating assistant and user
// events, and finally a result event on completion.
type EventType string

const (
	// EventTypeSystem is a system event, typically session initialization.
	EventTypeSystem EventType = "system"

	// EventTypeAssistant is agent output: text or a tool invocation.
	EventTypeAssistant EventType = "assistant"

	// EventTypeUser is a tool execution result returned to the agent.
	EventTypeUser EventType = "user"

	// EventTypeResult signals that the session has completed.
	EventTypeResult EventType = "result"
)

// SubtypeInit is the subtype of system events that mark session start.
const SubtypeInit = "init"

// Event is a parsed event from the agent's streaming output.
//
// Event wraps the raw [StreamEvent] and lifts commonly needed fields to the
// top level. Use [Event.IsText], [Event.IsToolUse], and [Event.IsToolResult]
// to identify content kinds.
type Event struct {
	// Raw is the original [StreamEvent] for cases the parsed fields miss.
	Raw *StreamEvent

	// Type is the parsed event type.
	Type EventType

	// Subtype further classifies certain event types (see [SubtypeInit]).
	Subtype string

	// Text is the text content of an assistant text block.
	Text string

	// ToolName is the tool being invoked in an assistant tool_use block.
	ToolName string

	// ToolDescription is the human-readable description of the tool call.
	ToolDescription string

	// ToolCommand is the command string for shell tool invocations.
	ToolCommand string

	// ToolFilePath is the target path for file operation tools.
	ToolFilePath string

	// ToolStdout is the standard output of a completed tool execution.
	ToolStdout string

	// ToolStderr is the standard error of a completed tool execution.
	ToolStderr string

	// ToolInterrupted reports whether the tool execution was interrupted.
	ToolInterrupted bool

	// SessionStarted is true for system init events.
	SessionStarted bool

	// SessionComplete is true for result events.
	SessionComplete bool
}

// NewEventFromStream converts a raw [StreamEvent] into an [Event], populating
// the convenience fields appropriate to the event type.
func NewEventFromStream(raw *StreamEvent) Event {
	e := Event{
		Raw:     raw,
		Type:    EventType(raw.Type),
		Subtype: raw.Subtype,
	}

	switch e.Type {
	case EventTypeSystem:
		if raw.Subtype == SubtypeInit {
			e.SessionStarted = true
		}

	case EventTypeAssistant:
		if raw.Message != nil {
			for _, block := range raw.Message.Content {
				switch block.Type {
				case "text":
					e.Text = block.Text
				case "tool_use":
					e.ToolName = block.Name
					if block.Input != nil {
						e.ToolDescription = block.Input.Description
						e.ToolCommand = block.Input.Command
						e.ToolFilePath = block.Input.FilePath
					}
				}
			}
		}

	case EventTypeUser:
		if raw.ToolUseResult != nil {
			e.ToolStdout = raw.ToolUseResult.Stdout
			e.ToolStderr = raw.ToolUseResult.Stderr
			e.ToolInterrupted = raw.ToolUseResult.Interrupted
		}

	case EventTypeResult:
		e.SessionComplete = true
	}

	return e
}

// IsText reports whether this event contains assistant text output.
func (e Event) IsText() bool {
	return e.Type == EventTypeAssistant && e.Text != ""
}

// IsToolUse reports whether this event is a tool invocation by the agent.
func (e Event) IsToolUse() bool {
	return e.Type == EventTypeAssistant && e.ToolName != ""
}

// IsToolResult reports whether this event carries tool execution output.
func (e Event) IsToolResult() bool {
	return e.Type == EventTypeUser && (e.ToolStdout != "" || e.ToolStderr != "")
}
