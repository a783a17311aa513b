package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/phrazzld/escribe/internal/generation"
	"google.golang.org/genai"
)

// classifyError maps a failed GenerateContent call onto a generation.Kind.
func classifyError(err error) *generation.ExternalServiceError {
	if apiErr, ok := asAPIError(err); ok {
		return generation.NewExternalServiceError(kindFromAPIError(apiErr), err)
	}

	var netErr net.Error
	var urlErr *url.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr),
		errors.As(err, &urlErr):
		return generation.NewExternalServiceError(generation.KindNetworkUnavailable, err)
	}

	return generation.NewExternalServiceError(generation.KindUnknown, err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}

// credentialReasons are ErrorInfo reasons Gemini attaches to a 400
// INVALID_ARGUMENT when the API key itself is the problem.
var credentialReasons = map[string]bool{
	"API_KEY_INVALID":               true,
	"API_KEY_EXPIRED":               true,
	"API_KEY_SERVICE_BLOCKED":       true,
	"API_KEY_HTTP_REFERRER_BLOCKED": true,
	"API_KEY_IP_ADDRESS_BLOCKED":    true,
}

// hasCredentialReason reports whether any ErrorInfo detail names a key failure.
func hasCredentialReason(details []map[string]any) bool {
	for _, d := range details {
		if reason, ok := d["reason"].(string); ok && credentialReasons[reason] {
			return true
		}
	}
	return false
}

func kindFromAPIError(e genai.APIError) generation.Kind {
	if hasCredentialReason(e.Details) {
		return generation.KindAuthenticationFailed
	}

	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return generation.KindAuthenticationFailed
	case http.StatusTooManyRequests:
		return generation.KindRateLimited
	case http.StatusBadRequest, http.StatusNotFound,
		http.StatusRequestEntityTooLarge, http.StatusUnprocessableEntity:
		return generation.KindProviderValidationFailed
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return generation.KindNetworkUnavailable
	}

	switch e.Status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return generation.KindAuthenticationFailed
	case "RESOURCE_EXHAUSTED":
		return generation.KindRateLimited
	case "INVALID_ARGUMENT", "FAILED_PRECONDITION", "NOT_FOUND":
		return generation.KindProviderValidationFailed
	case "UNAVAILABLE", "DEADLINE_EXCEEDED":
		return generation.KindNetworkUnavailable
	}

	return generation.KindUnknown
}
