package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/escribe/internal/generation"
)

// GenerateCall records the arguments of one Generate invocation.
type GenerateCall struct {
	Ctx         context.Context
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)

	// Default response values
	Text string
	Err  error

	mu    sync.Mutex
	calls []GenerateCall
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(
	ctx context.Context,
	prompt string,
	maxTokens int,
	temperature float32,
) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, GenerateCall{
		Ctx:         ctx,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt, maxTokens, temperature)
	}

	return m.Text, m.Err
}

// Calls returns a copy of the recorded invocations.
func (m *MockGenerator) Calls() []GenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]GenerateCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// LastCall returns the most recent invocation. ok is false if there was none.
func (m *MockGenerator) LastCall() (call GenerateCall, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return GenerateCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// NewMockGeneratorWithText creates a MockGenerator that returns the specified text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Text: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails creates a MockGenerator whose calls fail with the given kind
func MockGeneratorThatFails(kind generation.Kind) *MockGenerator {
	return &MockGenerator{
		Err: generation.NewExternalServiceError(kind, generation.ErrExternalService),
	}
}
