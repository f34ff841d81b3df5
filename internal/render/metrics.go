package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics names.
const (
	MetricRenderSyncsTotal       = "usly_render_syncs_total"
	MetricRenderProjectionsTotal = "usly_render_projections_total"
	MetricRenderDuration         = "usly_render_duration_seconds"
)

// Metrics contains Prometheus metrics of the synchronizer.
type Metrics struct {
	syncsTotal       *prometheus.CounterVec
	projectionsTotal *prometheus.CounterVec
	duration         prometheus.Histogram
}

// NewMetrics creates metrics. They are not registered; call Register to do it.
func NewMetrics() *Metrics {
	return &Metrics{
		syncsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRenderSyncsTotal,
				Help: "Total number of synchronizations by view",
			},
			[]string{"view"},
		),
		projectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRenderProjectionsTotal,
				Help: "Total number of computed projections by projection",
			},
			[]string{"projection"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricRenderDuration,
			Help:    "Histogram of synchronization duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Collectors ...
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.syncsTotal,
		m.projectionsTotal,
		m.duration,
	}
}

func (m *Metrics) incSyncs(view string) {
	if m == nil {
		return
	}
	m.syncsTotal.WithLabelValues(view).Inc()
}

func (m *Metrics) incProjection(p Projection) {
	if m == nil {
		return
	}
	m.projectionsTotal.WithLabelValues(string(p)).Inc()
}

func (m *Metrics) observeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.duration.Observe(seconds)
}
