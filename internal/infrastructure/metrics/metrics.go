// Package metrics provides Prometheus metrics for commission calculations.
//
// A nil *Manager is valid and records nothing, so callers never need to
// check whether metrics are enabled.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculation outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Manager owns a private registry and the commission metrics registered on it.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	calculations      *prometheus.CounterVec
	rejections        *prometheus.CounterVec
	commissionTotal   prometheus.Counter
	leadGenerators    prometheus.Histogram
	selectionOverflow prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// NewManager creates a manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "komisi",
		subsystem: "commission",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.calculations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calculations_total",
		Help:      "Commission calculations by outcome and role layout",
	}, []string{"outcome", "layout"})

	m.rejections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rejections_total",
		Help:      "Rejected calculation requests by error code",
	}, []string{"code"})

	m.commissionTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "allocated_rupiah_total",
		Help:      "Sum of all allocated commission amounts in Rupiah",
	})

	m.leadGenerators = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lead_generators",
		Help:      "Number of lead generators credited per calculation",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})

	m.selectionOverflow = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "selection_overflow_total",
		Help:      "Lead generator picks dropped for exceeding the selection limit",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   m.buckets,
	}, []string{"route", "method"})
}

// RecordCalculation records a successful calculation.
func (m *Manager) RecordCalculation(leadGenerators int, combined bool, total int64) {
	if m == nil {
		return
	}
	layout := "split"
	if combined {
		layout = "combined"
	}
	m.calculations.WithLabelValues(OutcomeSuccess, layout).Inc()
	if total > 0 {
		m.commissionTotal.Add(float64(total))
	}
	m.leadGenerators.Observe(float64(leadGenerators))
}

// RecordRejection records a request refused for invalid input.
func (m *Manager) RecordRejection(code string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(OutcomeRejected, "").Inc()
	m.rejections.WithLabelValues(code).Inc()
}

// RecordFailure records a calculation that failed for a non-input reason.
func (m *Manager) RecordFailure() {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(OutcomeError, "").Inc()
}

// RecordSelectionOverflow counts picks dropped by the selection limit.
func (m *Manager) RecordSelectionOverflow(dropped int) {
	if m == nil || dropped <= 0 {
		return
	}
	m.selectionOverflow.Add(float64(dropped))
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
