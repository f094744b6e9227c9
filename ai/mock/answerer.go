package mock

import (
	"context"
	"fmt"
)

// MockAnswerer is a test double for ai.Answerer.
// It allows custom behavior injection via function fields.
type MockAnswerer struct {
	// AnswerFunc is called by Answer if set.
	// If nil, uses default deterministic behavior.
	AnswerFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
}

// NewMockAnswerer creates a mock answerer with default deterministic behavior.
func NewMockAnswerer() *MockAnswerer {
	return &MockAnswerer{}
}

// Answer echoes a deterministic completion derived from the prompt length.
func (m *MockAnswerer) Answer(ctx context.Context, prompt string) (string, error) {
	m.callCount++

	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, prompt)
	}

	return fmt.Sprintf("mock answer (%d byte prompt)", len(prompt)), nil
}

// CallCount returns the number of times Answer was called.
func (m *MockAnswerer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockAnswerer) Reset() {
	m.callCount = 0
	m.AnswerFunc = nil
}
