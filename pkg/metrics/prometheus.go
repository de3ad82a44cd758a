package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the catalog's prometheus collectors.
type Metrics struct {
	AirlinesCreated prometheus.Counter
	AirlinesUpdated prometheus.Counter
	AirlinesDeleted prometheus.Counter
	CodeConflicts   prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		AirlinesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "airlines_created_total",
			Help:      "The total number of airlines created",
		}),
		AirlinesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "airlines_updated_total",
			Help:      "The total number of airlines updated",
		}),
		AirlinesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "airlines_deleted_total",
			Help:      "The total number of airlines deleted",
		}),
		CodeConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "code_conflicts_total",
			Help:      "The total number of creates rejected for a duplicate code",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and path",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}
