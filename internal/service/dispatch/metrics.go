package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_transitions_total",
			Help: "Total number of applied transport request status transitions",
		},
		[]string{"from", "to"},
	)

	ClaimConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_claim_conflicts_total",
			Help: "Total number of claims lost to a concurrent claim or state change",
		},
	)
)
