package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "growbuddy"

// Collector owns the Prometheus collectors and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	fieldChecks   *prometheus.CounterVec
	plantsCreated *prometheus.CounterVec
	plantsRejects prometheus.Counter
	careActions   *prometheus.CounterVec
	batchRecords  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// NewCollector creates a Collector with a fresh registry that also carries
// the Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		fieldChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "field_checks_total",
			Help:      "Field values checked against the pattern catalog.",
		}, []string{"field", "result"}),
		plantsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plants_created_total",
			Help:      "Plants added to the garden.",
		}, []string{"type"}),
		plantsRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plants_rejected_total",
			Help:      "Candidate records that failed plant construction.",
		}),
		careActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "care_actions_total",
			Help:      "Care actions applied to plants.",
		}, []string{"action", "result"}),
		batchRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_records_total",
			Help:      "Records audited through batch validation.",
		}, []string{"result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"code", "method"}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.fieldChecks,
		c.plantsCreated,
		c.plantsRejects,
		c.careActions,
		c.batchRecords,
		c.httpDuration,
	)
	return c
}

func (c *Collector) FieldChecked(field string, valid bool) {
	c.fieldChecks.WithLabelValues(field, result(valid)).Inc()
}

func (c *Collector) PlantCreated(plantType string) {
	c.plantsCreated.WithLabelValues(plantType).Inc()
}

func (c *Collector) PlantRejected() {
	c.plantsRejects.Inc()
}

func (c *Collector) CareAction(action string, ok bool) {
	c.careActions.WithLabelValues(action, result(ok)).Inc()
}

func (c *Collector) BatchValidated(valid, invalid int) {
	c.batchRecords.WithLabelValues("valid").Add(float64(valid))
	c.batchRecords.WithLabelValues("invalid").Add(float64(invalid))
}

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Middleware observes request latency by status code and method.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(c.httpDuration, next)
}
