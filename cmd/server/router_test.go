package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/phrazzld/escribe/internal/api/shared"
	"github.com/phrazzld/escribe/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	gen := mocks.NewMockGeneratorWithText("  Un poema bonito.  ")
	router, err := newTestApp(t, gen).setupRouter()
	require.NoError(t, err)

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "OK", rr.Body.String())
	})

	t.Run("form page", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(shared.TraceIDHeader))
		assert.Contains(t, rr.Body.String(), "<form")
	})

	t.Run("form submission", func(t *testing.T) {
		form := url.Values{"tipo": {"poema"}, "tema": {"el mar"}, "estilo": {"romántico"}, "longitud": {"50"}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Un poema bonito.")
	})

	t.Run("json api", func(t *testing.T) {
		body := `{"tipo":"poema","tema":"el mar","estilo":"romántico","longitud":"50"}`
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"resultado":"Un poema bonito.","max_tokens":250}`, rr.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "escribe_http_requests_total")
		assert.Contains(t, rr.Body.String(), "escribe_generation_requests_total")
	})

	t.Run("method not allowed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
