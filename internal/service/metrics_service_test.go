package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceObservesUpstream(t *testing.T) {
	m := NewMetricsService()

	m.ObserveUpstreamRequest("etl_status", "success", 20*time.Millisecond)
	m.ObserveUpstreamRequest("etl_status", "success", 30*time.Millisecond)
	m.ObserveUpstreamRequest("etl_status", "rejected", 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.upstreamTotal.WithLabelValues("etl_status", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.upstreamTotal.WithLabelValues("etl_status", "rejected")))
}

func TestMetricsServiceHandlerExposesCollectors(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/etl/status", http.StatusOK, time.Millisecond)
	m.IncETLAction("full", "success")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), `etl_actions_total{action="full",outcome="success"} 1`)
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveUpstreamRequest("x", "success", time.Second)
	m.IncRateLimited("full")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
