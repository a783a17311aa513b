package generation

import "context"

// Generator issues a single completion request to an external provider.
type Generator interface {
	// Generate asks for up to maxTokens tokens of completion for prompt at the
	// given sampling temperature and returns the first candidate's text with
	// surrounding whitespace removed.
	//
	// Provider failures are reported as *ExternalServiceError. Invalid
	// arguments are rejected with ErrEmptyPrompt or ErrInvalidMaxTokens before
	// any network call is made.
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}
