package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricBackendRequest  = "backend_request"
	MetricCommand         = "console_command"
	MetricStaleResponse   = "stale_response"
	MetricActiveConsoles  = "active_consoles"
	MetricAuditWriteError = "audit_write_error"
)

type PrometheusMetrics struct {
	backendRequests  *prometheus.CounterVec
	backendDuration  *prometheus.HistogramVec
	commandsTotal    *prometheus.CounterVec
	commandDuration  *prometheus.HistogramVec
	staleResponses   *prometheus.CounterVec
	activeConsoles   prometheus.Gauge
	auditWriteErrors prometheus.Counter
}

// NewPrometheusMetrics registers the console metrics on reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_backend_requests_total",
				Help: "Total number of backend requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		backendDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "console_backend_request_duration_seconds",
				Help:    "Backend request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		commandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_commands_total",
				Help: "Total number of console commands by command and outcome",
			},
			[]string{"command", "outcome"},
		),
		commandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "console_command_duration_seconds",
				Help:    "Console command duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"command"},
		),
		staleResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "console_stale_responses_total",
				Help: "Backend responses discarded because a newer request was issued for the region",
			},
			[]string{"region"},
		),
		activeConsoles: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "console_active_instances",
				Help: "Current number of live console instances",
			},
		),
		auditWriteErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "console_audit_write_errors_total",
				Help: "Total number of audit entries that could not be stored",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricBackendRequest:
		m.backendRequests.WithLabelValues(tags["endpoint"], tags["outcome"]).Inc()
	case MetricCommand:
		m.commandsTotal.WithLabelValues(tags["command"], tags["outcome"]).Inc()
	case MetricStaleResponse:
		m.staleResponses.WithLabelValues(tags["region"]).Inc()
	case MetricAuditWriteError:
		m.auditWriteErrors.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration, tags map[string]string) {
	switch name {
	case MetricBackendRequest:
		m.backendDuration.WithLabelValues(tags["endpoint"]).Observe(duration.Seconds())
	case MetricCommand:
		m.commandDuration.WithLabelValues(tags["command"]).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricActiveConsoles:
		m.activeConsoles.Set(value)
	}
}
