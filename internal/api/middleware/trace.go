package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/escribe/internal/api/shared"
	"github.com/phrazzld/escribe/internal/platform/logger"
)

// Trace adds a trace ID to the request context, echoes it in the
// X-Trace-Id response header, and stores a logger carrying it so handlers
// can use logger.FromContext. Apply it before any handler that logs.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
