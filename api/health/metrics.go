package health

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pos",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	SalesCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "sales",
			Name:      "completed_total",
			Help:      "Successfully recorded sales",
		},
	)

	SalesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos",
			Subsystem: "sales",
			Name:      "failed_total",
			Help:      "Sales that were aborted or failed, by reason",
		},
		[]string{"reason"},
	)
)
