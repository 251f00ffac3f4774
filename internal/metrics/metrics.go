package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "woofallback_decisions_total",
			Help: "Total decisions returned, by action and band",
		},
		[]string{"action", "band"},
	)

	UnauthorizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "woofallback_unauthorized_total",
			Help: "Requests rejected by the bearer-token check",
		},
	)

	ForwardFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "woofallback_forward_failures_total",
			Help: "Decision webhook forwarding attempts that failed",
		},
	)
)
