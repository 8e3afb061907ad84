package mongodb

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oksasatya/grocery-list/internal/domain/repository"
)

// Metrics records document operations per collection.
type Metrics struct {
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the repository collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "document_operations_total",
			Help: "Document repository operations by collection, operation and outcome",
		}, []string{"collection", "operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "document_operation_duration_seconds",
			Help:    "Latency of document repository operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"collection", "operation"}),
	}
	if err := reg.Register(m.ops); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.ops = are.ExistingCollector.(*prometheus.CounterVec)
	}
	if err := reg.Register(m.duration); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		m.duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	return m, nil
}

func (m *Metrics) observe(c repository.Collection, op string, start time.Time, err *error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil && *err != nil {
		outcome = "error"
	}
	m.ops.WithLabelValues(c.Name(), op, outcome).Inc()
	m.duration.WithLabelValues(c.Name(), op).Observe(time.Since(start).Seconds())
}
