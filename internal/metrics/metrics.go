// Package metrics exposes Prometheus metrics for tool calls and J1QL validations.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace    = "jupiterone_mcp"
	toolLabel    = "tool"
	resultLabel  = "result"
	outcomeLabel = "outcome"
)

// Tool call results.
const (
	ResultSuccess   = "success"
	ResultToolError = "tool_error"
	ResultError     = "error"
)

// Metrics holds the collectors of one server. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	serverVersion     *prometheus.GaugeVec
	toolCallsTotal    *prometheus.CounterVec
	toolCallSeconds   *prometheus.HistogramVec
	validationsTotal  *prometheus.CounterVec
	validationSeconds prometheus.Histogram
}

// NewMetrics creates the collectors on a dedicated registry.
func NewMetrics(version string) (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	m := &Metrics{
		registry: reg,
		serverVersion: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "version",
			Help:      "Which version is running. 1 for 'server_version' label with current version.",
		}, []string{"server_version"}),
		toolCallsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tools",
			Name:      "calls_total",
			Help:      "Total number of tool calls by tool and result.",
		}, []string{toolLabel, resultLabel}),
		toolCallSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tools",
			Name:      "call_duration_seconds",
			Help:      "The handling time of tool calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{toolLabel}),
		validationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "j1ql",
			Name:      "validations_total",
			Help:      "Total number of J1QL validations by outcome.",
		}, []string{outcomeLabel}),
		validationSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "j1ql",
			Name:      "validation_duration_seconds",
			Help:      "The time spent validating a J1QL query, including its execution.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.serverVersion.WithLabelValues(version).Set(1)

	return m, nil
}

// ObserveToolCall records one tool call.
func (m *Metrics) ObserveToolCall(tool, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.toolCallsTotal.WithLabelValues(tool, result).Inc()
	m.toolCallSeconds.WithLabelValues(tool).Observe(d.Seconds())
}

// ObserveValidation records one J1QL validation.
func (m *Metrics) ObserveValidation(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.validationsTotal.WithLabelValues(outcome).Inc()
	m.validationSeconds.Observe(d.Seconds())
}

// Registry returns the registry of the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
