// Package metrics provides Prometheus exporters for application metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the workforce API.
var (
	// Counters.
	RequestSubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_submissions_total",
			Help: "Total number of leave/overtime submissions",
		},
		[]string{"kind", "result"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_transitions_total",
			Help: "Total number of request status transitions",
		},
		[]string{"kind", "to_status", "result"},
	)

	CheckInsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "check_ins_total",
			Help: "Total number of attendance check-ins",
		},
		[]string{"status"},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Read-view cache lookups by view and outcome",
		},
		[]string{"view", "outcome"},
	)

	// Gauges.
	PendingRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pending_requests",
			Help: "Pending requests observed at the last pending-list read",
		},
		[]string{"kind"},
	)

	// Histograms.
	ReportBuildSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_build_seconds",
			Help:    "Time spent building monthly summaries",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"report"},
	)
)
