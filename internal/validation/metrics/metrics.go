package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation layer.
type Metrics struct {
	// Intercepted calls by entry point, the phase that decided the outcome,
	// and the returned result.
	Calls *prometheus.CounterVec

	// Non-success statuses returned by individual checkers.
	CheckerFailures *prometheus.CounterVec

	// Checkers currently registered with the layer's registry.
	Checkers prometheus.Gauge
}

// New registers the validation metrics with reg. With a nil reg the metrics
// are created but not registered anywhere, so New may be called any number
// of times. A non-nil reg accepts a single Metrics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "levelzero_validation_calls_total",
			Help: "Intercepted entry point calls by deciding phase and result",
		}, []string{"entry_point", "phase", "result"}), // phase: "prologue", "driver", "epilogue"

		CheckerFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "levelzero_validation_checker_failures_total",
			Help: "Non-success statuses returned by checkers",
		}, []string{"checker", "phase"}),

		Checkers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "levelzero_validation_checkers",
			Help: "Number of checkers registered with the validation layer",
		}),
	}
}

// IncrementCall records the outcome of one intercepted call.
func (m *Metrics) IncrementCall(entryPoint, phase, result string) {
	if m != nil {
		m.Calls.WithLabelValues(entryPoint, phase, result).Inc()
	}
}

// IncrementCheckerFailure records a non-success status from a checker.
func (m *Metrics) IncrementCheckerFailure(checker, phase string) {
	if m != nil {
		m.CheckerFailures.WithLabelValues(checker, phase).Inc()
	}
}

func (m *Metrics) SetCheckers(n int) {
	if m != nil {
		m.Checkers.Set(float64(n))
	}
}
