package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters exposed on /metrics.
type Metrics struct {
	VerificationsTotal          *prometheus.CounterVec
	ApplicationTransitionsTotal *prometheus.CounterVec
}

// New registers and returns the application metrics.
func New() *Metrics {
	return &Metrics{
		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "campushubx_verifications_total",
			Help: "Total number of verification decisions issued by colleges",
		}, []string{"entity", "status"}),
		ApplicationTransitionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "campushubx_application_transitions_total",
			Help: "Total number of application status transitions",
		}, []string{"to"}),
	}
}

// RecordVerification counts a verification decision for an entity type.
func (m *Metrics) RecordVerification(entity, status string) {
	m.VerificationsTotal.WithLabelValues(entity, status).Inc()
}

// RecordApplicationTransition counts an application status transition.
func (m *Metrics) RecordApplicationTransition(to string) {
	m.ApplicationTransitionsTotal.WithLabelValues(to).Inc()
}
