package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountGeneration(t *testing.T) {
	before := testutil.ToFloat64(GenerationsTotal.WithLabelValues(OutcomeSuccess))

	CountGeneration(OutcomeSuccess)

	after := testutil.ToFloat64(GenerationsTotal.WithLabelValues(OutcomeSuccess))
	assert.Equal(t, before+1, after)
}

func TestObserveProviderCall(t *testing.T) {
	ObserveProviderCall("rate_limited", 250*time.Millisecond, 250)

	count := testutil.CollectAndCount(GenerationDuration, "escribe_generation_provider_call_duration_seconds")
	assert.GreaterOrEqual(t, count, 1)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(RequestedTokens), 1)
}
