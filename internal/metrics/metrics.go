package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "takeaway_http_requests_total",
		Help: "Total number of handled HTTP requests.",
	},
		[]string{"method", "route", "code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "takeaway_http_request_duration_seconds",
		Help:    "Duration of handled HTTP requests.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route"},
	)

	AccountsRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "takeaway_accounts_registered_total",
		Help: "Total number of accounts successfully registered.",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "takeaway_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "takeaway_operation_errors_total",
		Help: "Total number of storage errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
