package pending_backlog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PendingRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_pending_requests",
			Help: "Number of transport requests waiting for a driver",
		},
	)

	OldestPendingAgeSeconds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_oldest_pending_age_seconds",
			Help: "Age of the oldest transport request waiting for a driver",
		},
	)
)
