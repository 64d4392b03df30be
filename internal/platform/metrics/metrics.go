package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the diagnostics server.
type Metrics struct {
	Requests *prometheus.CounterVec
}

// New creates the diagnostics metrics and registers them with reg. A nil reg
// leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "levelzero_diagnostics_requests_total",
			Help: "Requests served by the diagnostics server",
		}, []string{"route", "code"}),
	}
}

// IncrementRequests counts one served request.
func (m *Metrics) IncrementRequests(route, code string) {
	if m != nil {
		m.Requests.WithLabelValues(route, code).Inc()
	}
}
