package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExternalServiceError_Matching(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("calling provider: %w", NewExternalServiceError(KindRateLimited, cause))

	assert.ErrorIs(t, err, ErrExternalService)
	assert.ErrorIs(t, err, cause, "Underlying cause should stay reachable")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindRateLimited, kind)
	assert.Contains(t, err.Error(), "rate_limited")
	assert.Contains(t, err.Error(), "boom")
}

func TestExternalServiceError_WrapsSentinels(t *testing.T) {
	err := NewExternalServiceError(KindUnknown, fmt.Errorf("%w: no candidates", ErrInvalidResponse))

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.ErrorIs(t, err, ErrExternalService)
	assert.NotErrorIs(t, err, ErrContentBlocked)
}

func TestKindOf_NoExternalError(t *testing.T) {
	kind, ok := KindOf(context.Canceled)

	assert.False(t, ok)
	assert.Equal(t, KindUnknown, kind)
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindUnknown:                  "unknown",
		KindAuthenticationFailed:     "authentication_failed",
		KindRateLimited:              "rate_limited",
		KindProviderValidationFailed: "provider_validation_failed",
		KindNetworkUnavailable:       "network_unavailable",
		Kind(99):                     "unknown",
	}

	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}

func TestExternalServiceError_NilCause(t *testing.T) {
	err := &ExternalServiceError{Kind: KindNetworkUnavailable}

	assert.Equal(t, "external generation service failed (network_unavailable)", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
