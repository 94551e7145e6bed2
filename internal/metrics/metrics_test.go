package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"shiphub/internal/metrics"
)

func TestCollectorsRegisterTogether(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	transitions := metrics.NewRequestTransitionsTotal()
	deliveries := metrics.NewDeliveryEventsTotal()
	require.NoError(t, reg.Register(metrics.NewRateLimitExceededTotal()))
	require.NoError(t, reg.Register(metrics.NewEventPublishRetriesTotal()))
	require.NoError(t, reg.Register(transitions))
	require.NoError(t, reg.Register(deliveries))
	require.NoError(t, reg.Register(metrics.NewHTTPRequestsTotal()))
	require.NoError(t, reg.Register(metrics.NewHTTPRequestDuration()))

	transitions.WithLabelValues("status").Inc()
	deliveries.WithLabelValues("applied").Add(2)

	require.Equal(t, 1.0, testutil.ToFloat64(transitions.WithLabelValues("status")))
	require.Equal(t, 2.0, testutil.ToFloat64(deliveries.WithLabelValues("applied")))
	require.Equal(t, 2, testutil.CollectAndCount(transitions)+testutil.CollectAndCount(deliveries))
}
