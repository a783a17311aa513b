package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/escribe/internal/api/middleware"
	"github.com/phrazzld/escribe/internal/generation"
	"github.com/phrazzld/escribe/internal/mocks"
	"github.com/phrazzld/escribe/internal/service"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter wires both handlers to a real ComposeService backed by gen.
func newTestRouter(t *testing.T, gen generation.Generator, opts service.Options) http.Handler {
	t.Helper()

	composer, err := service.NewComposeService(gen, discardLogger(), opts)
	require.NoError(t, err)

	form, err := NewFormHandler(composer)
	require.NoError(t, err)
	generate, err := NewGenerateHandler(composer)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.Trace(discardLogger()))
	r.Get("/", form.ShowForm)
	r.Post("/", form.Submit)
	r.Post("/api/generate", generate.Generate)
	return r
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func blockingGenerator() *mocks.MockGenerator {
	return &mocks.MockGenerator{
		GenerateFn: func(ctx context.Context, _ string, _ int, _ float32) (string, error) {
			<-ctx.Done()
			return "", generation.NewExternalServiceError(generation.KindNetworkUnavailable, ctx.Err())
		},
	}
}
