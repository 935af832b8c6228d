package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "creatorlink"

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ClicksRecorded  prometheus.Counter
	SalesRecorded   prometheus.Counter
	EventRejections *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ClicksRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_recorded_total",
			Help:      "Clicks counted against an active campaign.",
		}),
		SalesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_recorded_total",
			Help:      "Sales accepted and stored.",
		}),
		EventRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_rejections_total",
			Help:      "Click and sale events rejected, by event and reason.",
		}, []string{"event", "reason"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ClicksRecorded,
		m.SalesRecorded,
		m.EventRejections,
		m.RequestDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Click counts an accepted click. A nil receiver is a no-op so handlers can
// run without metrics.
func (m *Metrics) Click() {
	if m == nil {
		return
	}
	m.ClicksRecorded.Inc()
}

// Sale counts an accepted sale.
func (m *Metrics) Sale() {
	if m == nil {
		return
	}
	m.SalesRecorded.Inc()
}

// Reject counts a rejected event.
func (m *Metrics) Reject(event, reason string) {
	if m == nil {
		return
	}
	m.EventRejections.WithLabelValues(event, reason).Inc()
}

// Observe records one request's latency.
func (m *Metrics) Observe(route, method, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, method, status).Observe(d.Seconds())
}
