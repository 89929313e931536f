// Package metrics exposes Prometheus instrumentation for naming
// operations. The Collector type satisfies convention.Observer, so a
// Manager wired with it counts builds, validations, and parses.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "namekit"

// Collector counts naming operations. The zero value is not usable;
// create instances with NewCollector.
type Collector struct {
	builds      *prometheus.CounterVec
	validations *prometheus.CounterVec
	parses      prometheus.Counter
}

// NewCollector creates an unregistered Collector.
func NewCollector() *Collector {
	return &Collector{
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "builds_total",
				Help:      "Total name build operations, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total name validation operations, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		parses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parses_total",
				Help:      "Total name parse operations.",
			},
		),
	}
}

// ObserveBuild implements convention.Observer.
func (c *Collector) ObserveBuild(ok bool) {
	c.builds.WithLabelValues(outcome(ok)).Inc()
}

// ObserveValidate implements convention.Observer.
func (c *Collector) ObserveValidate(valid bool) {
	c.validations.WithLabelValues(outcome(valid)).Inc()
}

// ObserveParse implements convention.Observer.
func (c *Collector) ObserveParse() {
	c.parses.Inc()
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}

// Collectors returns every metric for registration with a custom registry.
func (c *Collector) Collectors() []prometheus.Collector {
	return []prometheus.Collector{c.builds, c.validations, c.parses}
}

var (
	defaultCollector *Collector
	registerOnce     sync.Once
)

// Default returns the process-wide Collector, registering its metrics
// with the default Prometheus registry on first call.
func Default() *Collector {
	registerOnce.Do(func() {
		defaultCollector = NewCollector()
		prometheus.MustRegister(defaultCollector.Collectors()...)
	})
	return defaultCollector
}
