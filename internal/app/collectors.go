package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"shiphub/internal/metrics"
)

// appMetrics holds every collector the process exports on /metrics.
type appMetrics struct {
	registry       *prometheus.Registry
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	rateLimited    prometheus.Counter
	publishRetries prometheus.Counter
	transitions    *prometheus.CounterVec
	deliveryEvents *prometheus.CounterVec
}

func newCollectors() (*appMetrics, error) {
	m := &appMetrics{
		registry:       prometheus.NewRegistry(),
		httpRequests:   metrics.NewHTTPRequestsTotal(),
		httpDuration:   metrics.NewHTTPRequestDuration(),
		rateLimited:    metrics.NewRateLimitExceededTotal(),
		publishRetries: metrics.NewEventPublishRetriesTotal(),
		transitions:    metrics.NewRequestTransitionsTotal(),
		deliveryEvents: metrics.NewDeliveryEventsTotal(),
	}
	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.rateLimited,
		m.publishRetries,
		m.transitions,
		m.deliveryEvents,
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
