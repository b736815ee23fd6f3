// Package metrics exposes engine counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"pawtrack/config"
	"pawtrack/internal/domain/service"
	"pawtrack/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "pawtrack"

// Recorder implements service.MetricsRecorder on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	fixesTotal          *prometheus.CounterVec
	alertsTotal         *prometheus.CounterVec
	alertsSuppressed    *prometheus.CounterVec
	alertingFailures    *prometheus.CounterVec
	alertingDuration    prometheus.Histogram
	realtimeDelivered   *prometheus.CounterVec
	realtimeDropped     *prometheus.CounterVec
	realtimeSessions    prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewRecorder registers every collector, labelled with the service name.
func NewRecorder(serviceName string) *Recorder {
	constLabels := prometheus.Labels{"service": serviceName}

	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fixesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "location_fixes_total",
			Help:        "Location fixes received, by outcome.",
			ConstLabels: constLabels,
		}, []string{"result"}),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "alerts_created_total",
			Help:        "Alerts written to the ledger.",
			ConstLabels: constLabels,
		}, []string{"alert_type"}),
		alertsSuppressed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "alerts_suppressed_total",
			Help:        "Alert candidates dropped by the cooldown.",
			ConstLabels: constLabels,
		}, []string{"alert_type"}),
		alertingFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "alerting_failures_total",
			Help:        "Background alerting failures, by stage.",
			ConstLabels: constLabels,
		}, []string{"stage"}),
		alertingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "alerting_duration_seconds",
			Help:        "Duration of the locked alerting transaction.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}),
		realtimeDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "realtime_deliveries_total",
			Help:        "Realtime events queued to sessions.",
			ConstLabels: constLabels,
		}, []string{"event"}),
		realtimeDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "realtime_dropped_total",
			Help:        "Realtime events dropped on a full session buffer.",
			ConstLabels: constLabels,
		}, []string{"event"}),
		realtimeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "realtime_sessions",
			Help:        "Connected websocket sessions on this instance.",
			ConstLabels: constLabels,
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.fixesTotal,
		r.alertsTotal,
		r.alertsSuppressed,
		r.alertingFailures,
		r.alertingDuration,
		r.realtimeDelivered,
		r.realtimeDropped,
		r.realtimeSessions,
		r.httpRequestsTotal,
		r.httpRequestDuration,
	)

	return r
}

func (r *Recorder) FixIngested(result string) {
	r.fixesTotal.WithLabelValues(result).Inc()
}

func (r *Recorder) AlertCreated(alertType string) {
	r.alertsTotal.WithLabelValues(alertType).Inc()
}

func (r *Recorder) AlertSuppressed(alertType string) {
	r.alertsSuppressed.WithLabelValues(alertType).Inc()
}

func (r *Recorder) AlertingFailed(stage string) {
	r.alertingFailures.WithLabelValues(stage).Inc()
}

func (r *Recorder) ObserveAlerting(elapsed time.Duration) {
	r.alertingDuration.Observe(elapsed.Seconds())
}

func (r *Recorder) RealtimeDelivered(event string, sessions int) {
	r.realtimeDelivered.WithLabelValues(event).Add(float64(sessions))
}

func (r *Recorder) RealtimeDropped(event string) {
	r.realtimeDropped.WithLabelValues(event).Inc()
}

func (r *Recorder) SessionsChanged(delta int) {
	r.realtimeSessions.Add(float64(delta))
}

// ObserveHTTP records one served request. path is the route template.
func (r *Recorder) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Register adds a collector owned by another component, such as the
// database pool statistics.
func (r *Recorder) Register(collector prometheus.Collector) error {
	return errors.WithStack(r.registry.Register(collector))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Params defines the parameters required for the recorder
type Params struct {
	fx.In

	Config *config.Config
}

func newFromConfig(params Params) *Recorder {
	return NewRecorder(params.Config.Env.ServiceName)
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		newFromConfig,
		func(r *Recorder) service.MetricsRecorder { return r },
	),
)
