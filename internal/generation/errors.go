package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrExternalService matches any *ExternalServiceError via errors.Is.
	ErrExternalService = errors.New("external generation service failed")

	// ErrInvalidResponse is returned when the provider response has no usable candidate
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the provider blocks the prompt or completion
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when Generate is called with an empty prompt
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidMaxTokens is returned when the token budget is not positive
	ErrInvalidMaxTokens = errors.New("max tokens must be positive")
)

// Kind classifies why an external call did not succeed.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuthenticationFailed
	KindRateLimited
	KindProviderValidationFailed
	KindNetworkUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindRateLimited:
		return "rate_limited"
	case KindProviderValidationFailed:
		return "provider_validation_failed"
	case KindNetworkUnavailable:
		return "network_unavailable"
	default:
		return "unknown"
	}
}

// ExternalServiceError is the single error type provider adapters return for
// failed calls.
type ExternalServiceError struct {
	Kind Kind
	Err  error
}

// NewExternalServiceError wraps err with the given kind.
func NewExternalServiceError(kind Kind, err error) *ExternalServiceError {
	return &ExternalServiceError{Kind: kind, Err: err}
}

func (e *ExternalServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s (%s)", ErrExternalService, e.Kind)
	}
	return fmt.Sprintf("%s (%s): %v", ErrExternalService, e.Kind, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExternalService.
func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

// KindOf returns the Kind of the first *ExternalServiceError in err's chain.
// The second result is false when err carries no such error.
func KindOf(err error) (Kind, bool) {
	var ext *ExternalServiceError
	if errors.As(err, &ext) {
		return ext.Kind, true
	}
	return KindUnknown, false
}
