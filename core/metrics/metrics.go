package metrics

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gamestats"

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry           *prometheus.Registry
	requests           *prometheus.CounterVec
	transformDuration  *prometheus.HistogramVec
	transformRecords   *prometheus.HistogramVec
	cacheLookups       *prometheus.CounterVec
	providerRequests   *prometheus.CounterVec
	breakerTransitions *prometheus.CounterVec
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of stats requests by route, mode and outcome",
			},
			[]string{"route", "mode", "outcome"},
		),
		transformDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transform_duration_seconds",
				Help:      "Time spent normalizing a raw stats section",
				Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
			},
			[]string{"shape"},
		),
		transformRecords: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transform_records",
				Help:      "Number of records produced by a transform",
				Buckets:   prometheus.LinearBuckets(0, 5, 10),
			},
			[]string{"shape"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "lookups_total",
				Help:      "Total number of cache lookups by backend and result",
			},
			[]string{"backend", "result"},
		),
		providerRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provider",
				Name:      "requests_total",
				Help:      "Total number of provider calls by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		breakerTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "provider",
				Name:      "breaker_transitions_total",
				Help:      "Circuit breaker state transitions",
			},
			[]string{"provider", "from", "to"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.transformDuration,
		m.transformRecords,
		m.cacheLookups,
		m.providerRequests,
		m.breakerTransitions,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// ObserveRequest counts a stats request.
func (m *Metrics) ObserveRequest(route, mode, outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, mode, outcome).Inc()
}

// ObserveTransform records the duration and size of a transform.
func (m *Metrics) ObserveTransform(shape string, elapsed time.Duration, records int) {
	if m == nil {
		return
	}
	m.transformDuration.WithLabelValues(shape).Observe(elapsed.Seconds())
	m.transformRecords.WithLabelValues(shape).Observe(float64(records))
}

// ObserveCache counts a cache lookup ("hit" or "miss").
func (m *Metrics) ObserveCache(backend, result string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(backend, result).Inc()
}

// ObserveProvider counts a provider call.
func (m *Metrics) ObserveProvider(provider, outcome string) {
	if m == nil {
		return
	}
	m.providerRequests.WithLabelValues(provider, outcome).Inc()
}

// ObserveBreaker counts a circuit breaker transition.
func (m *Metrics) ObserveBreaker(provider, from, to string) {
	if m == nil {
		return
	}
	m.breakerTransitions.WithLabelValues(provider, from, to).Inc()
}
