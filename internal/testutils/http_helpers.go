package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/escribe/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// The server is closed automatically via t.Cleanup().
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
	return server
}

// AssertErrorResponse checks that resp carries the standard JSON error body
// with the expected status, a message containing expectedErrorMsgPart, and
// a trace ID matching the X-Trace-Id header.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	var errResp shared.ErrorResponse
	err = json.Unmarshal(body, &errResp)
	require.NoError(t, err, "Failed to unmarshal error response: %s", string(body))

	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message %q should contain %q", errResp.Error, expectedErrorMsgPart)
	assert.NotEmpty(t, errResp.TraceID, "Error response should carry a trace ID")
	if header := resp.Header.Get(shared.TraceIDHeader); header != "" {
		assert.Equal(t, header, errResp.TraceID, "Body and header trace IDs should match")
	}
}
