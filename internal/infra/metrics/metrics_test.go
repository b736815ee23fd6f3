package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	r := NewRecorder("pawtrack-test")

	r.FixIngested("accepted")
	r.FixIngested("accepted")
	r.FixIngested("rejected")
	r.AlertCreated("geofence_exit")
	r.AlertSuppressed("low_battery")
	r.AlertingFailed("rules")
	r.RealtimeDelivered("alert:new", 3)
	r.RealtimeDropped("location_update")
	r.SessionsChanged(2)
	r.SessionsChanged(-1)

	assert.InDelta(t, 2, testutil.ToFloat64(r.fixesTotal.WithLabelValues("accepted")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.fixesTotal.WithLabelValues("rejected")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.alertsTotal.WithLabelValues("geofence_exit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.alertsSuppressed.WithLabelValues("low_battery")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.alertingFailures.WithLabelValues("rules")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(r.realtimeDelivered.WithLabelValues("alert:new")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.realtimeDropped.WithLabelValues("location_update")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.realtimeSessions), 0)
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder("pawtrack-test")
	r.ObserveAlerting(15 * time.Millisecond)
	r.ObserveHTTP(http.MethodPost, "/api/v1/locations/ingest", http.StatusCreated, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `pawtrack_http_requests_total{method="POST",path="/api/v1/locations/ingest",service="pawtrack-test",status="201"} 1`)
	assert.Contains(t, string(body), "pawtrack_alerting_duration_seconds_count")
}

type constCollector struct {
	desc *prometheus.Desc
}

func (c constCollector) Describe(ch chan<- *prometheus.Desc) { ch <- c.desc }

func (c constCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 7)
}

func TestRecorder_RegisterExternalCollector(t *testing.T) {
	r := NewRecorder("pawtrack-test")
	collector := constCollector{desc: prometheus.NewDesc("pawtrack_test_external", "External collector.", nil, nil)}

	require.NoError(t, r.Register(collector))
	assert.Error(t, r.Register(collector))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "pawtrack_test_external 7")
}
