package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"shiphub/internal/logx"
	"shiphub/internal/metrics"
	testlog "shiphub/internal/testutil"
)

func TestObservability_UsesRoutePatternForLabels(t *testing.T) {
	t.Parallel()

	requests := metrics.NewHTTPRequestsTotal()
	duration := metrics.NewHTTPRequestDuration()
	pattern := "/requests/{id}"

	r := chi.NewRouter()
	r.Use(NewObservability(logx.Nop(), requests, duration).Handler())
	r.Get(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	require.Equal(t, 3.0, testutil.ToFloat64(requests.WithLabelValues(http.MethodGet, pattern, "204")))
	require.Equal(t, 1, testutil.CollectAndCount(requests))
	require.Equal(t, uint64(3), histogramCount(t, duration, http.MethodGet, pattern, "204"))
}

func TestObservability_ImplicitOKAndAccessLog(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	requests := metrics.NewHTTPRequestsTotal()

	r := chi.NewRouter()
	r.Use(NewObservability(rec.Logger(), requests, nil).Handler())
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, 1.0, testutil.ToFloat64(requests.WithLabelValues(http.MethodGet, "/ping", "200")))
	e, ok := rec.Find("info", "http request")
	require.True(t, ok)
	path, _ := e.Field("path")
	require.Equal(t, "/ping", path)
	status, _ := e.Field("status")
	require.EqualValues(t, 200, status)
}

func histogramCount(t *testing.T, hv *prometheus.HistogramVec, method, path, status string) uint64 {
	t.Helper()

	obs, err := hv.GetMetricWithLabelValues(method, path, status)
	require.NoError(t, err)

	metric, ok := obs.(prometheus.Metric)
	require.True(t, ok, "must implement prometheus.Metric")

	m := &dto.Metric{}
	require.NoError(t, metric.Write(m))

	h := m.GetHistogram()
	require.NotNil(t, h)
	return h.GetSampleCount()
}
