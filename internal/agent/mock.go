package agent

import "context"

// MockAgent implements [Agent] for testing without spawning real processes.
//
// Configure the canned response before use:
//
//	mock := &agent.MockAgent{ResultText: "done"}
type MockAgent struct {
	// ResultText is returned as the response payload when Err is nil.
	ResultText string

	// Err, when set, is returned from Run instead of a response.
	Err error

	// RecordedPrompts collects every prompt passed to Run, in order.
	RecordedPrompts []string
}

// Run records the prompt and returns the configured response or error.
func (m *MockAgent) Run(ctx context.Context, prompt string) (*Response, error) {
	m.RecordedPrompts = append(m.RecordedPrompts, prompt)

	if m.Err != nil {
		return nil, m.Err
	}
	return &Response{Result: Result{Text: m.ResultText}}, nil
}
