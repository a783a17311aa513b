// Package metrics exposes the Prometheus collectors for the HTTP surface and
// the generation client. Collectors register with the default registry and
// are served by promhttp at /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "escribe"

// Generation outcomes used as the "outcome" label.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "route"},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "requests_total",
			Help:      "Submissions handled, by outcome",
		},
		[]string{"outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "provider_call_duration_seconds",
			Help:      "Duration of provider calls in seconds",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		},
		[]string{"outcome"},
	)

	RequestedTokens = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generation",
			Name:      "max_tokens_requested",
			Help:      "Token budget sent to the provider",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 10),
		},
	)
)

// ObserveProviderCall records one provider call.
func ObserveProviderCall(outcome string, elapsed time.Duration, maxTokens int) {
	GenerationDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	RequestedTokens.Observe(float64(maxTokens))
}

// CountGeneration increments the submission counter for outcome.
func CountGeneration(outcome string) {
	GenerationsTotal.WithLabelValues(outcome).Inc()
}
