package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics names.
const (
	MetricSessionsActive       = "usly_sessions_active"
	MetricSessionsCreatedTotal = "usly_sessions_created_total"
	MetricSessionsEvictedTotal = "usly_sessions_evicted_total"
	MetricNotificationsTotal   = "usly_notifications_total"
	MetricRequestsTotal        = "usly_requests_total"
)

// Request kinds.
const (
	LocationRequest  = "location"
	BugReportRequest = "bug_report"
)

// Request statuses.
const (
	StatusSuccess  = "success"
	StatusFailure  = "failure"
	StatusCanceled = "canceled"
)

// Metrics contains Prometheus metrics of sessions.
// All operations are thread-safe and do nothing on a nil receiver.
type Metrics struct {
	active        prometheus.Gauge
	created       prometheus.Counter
	evicted       prometheus.Counter
	notifications prometheus.Counter
	requests      *prometheus.CounterVec
}

// NewMetrics creates metrics. They are not registered; call Register to do it.
func NewMetrics() *Metrics {
	return &Metrics{
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricSessionsActive,
			Help: "Number of live sessions",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricSessionsCreatedTotal,
			Help: "Total number of created sessions",
		}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricSessionsEvictedTotal,
			Help: "Total number of sessions evicted for inactivity",
		}),
		notifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricNotificationsTotal,
			Help: "Total number of raised transient notifications",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRequestsTotal,
				Help: "Total number of asynchronous requests by kind and status",
			},
			[]string{"kind", "status"},
		),
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
		m.active,
		m.created,
		m.evicted,
		m.notifications,
		m.requests,
	}
}

func (m *Metrics) incCreated() {
	if m == nil {
		return
	}
	m.created.Inc()
	m.active.Inc()
}

func (m *Metrics) incEvicted() {
	if m == nil {
		return
	}
	m.evicted.Inc()
	m.active.Dec()
}

func (m *Metrics) incNotifications() {
	if m == nil {
		return
	}
	m.notifications.Inc()
}

func (m *Metrics) incRequests(kind, status string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(kind, status).Inc()
}
