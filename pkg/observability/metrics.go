package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is a transform.Hooks implementation backed by Prometheus counters.
type Metrics struct {
	transforms *prometheus.CounterVec
	hops       *prometheus.CounterVec
	edges      *prometheus.CounterVec
}

// NewMetrics builds the counters and registers them with reg. Passing
// prometheus.DefaultRegisterer wires them into the default exposition.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transforms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astrolabe",
			Subsystem: "transform",
			Name:      "applied_total",
			Help:      "Transforms applied, by source and destination frame.",
		}, []string{"src", "dst"}),
		hops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astrolabe",
			Subsystem: "transform",
			Name:      "hops_total",
			Help:      "Edges traversed while applying transforms.",
		}, []string{"src", "dst"}),
		edges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "astrolabe",
			Subsystem: "graph",
			Name:      "edges_registered_total",
			Help:      "Operator registrations, by operator kind.",
		}, []string{"kind"}),
	}
	if reg != nil {
		reg.MustRegister(m.transforms, m.hops, m.edges)
	}
	return m
}

// EdgeRegistered counts operator registrations.
func (m *Metrics) EdgeRegistered(src, dst, kind string) {
	m.edges.WithLabelValues(kind).Inc()
}

// TransformApplied counts applied transforms and the edges they traversed.
func (m *Metrics) TransformApplied(src, dst string, hops int) {
	m.transforms.WithLabelValues(src, dst).Inc()
	m.hops.WithLabelValues(src, dst).Add(float64(hops))
}
