package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/escribe/internal/api"
	apiMiddleware "github.com/phrazzld/escribe/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	formHandler, err := api.NewFormHandler(app.composer)
	if err != nil {
		return nil, err
	}
	generateHandler, err := api.NewGenerateHandler(app.composer)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	r.Get("/", formHandler.ShowForm)
	r.Post("/", formHandler.Submit)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	return r, nil
}
