package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SearchResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "lessonhub", Name: "search_results_total", Help: "Search requests by resolving stage (fulltext, fallback, none)."},
		[]string{"stage"},
	)
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "lessonhub", Name: "orders_created_total", Help: "Number of orders placed."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "lessonhub", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "lessonhub", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SearchResults)
	reg.MustRegister(OrdersCreated)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
