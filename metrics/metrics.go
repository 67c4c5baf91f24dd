package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchRequests counts search operations by name.
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search",
			Name:      "requests_total",
			Help:      "The total number of search operations",
		},
		[]string{"operation"},
	)

	// SearchDuration tracks how long each search operation takes.
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "search",
			Name:      "duration_seconds",
			Help:      "Time spent serving search operations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// SearchResults counts returned results by first/second hand kind.
	SearchResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search",
			Name:      "results_total",
			Help:      "The total number of tee time results returned",
		},
		[]string{"kind"},
	)

	// UpstreamFailures counts swallowed storage and weather failures.
	UpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search",
			Name:      "upstream_failures_total",
			Help:      "Failures from storage or weather that degraded a response",
		},
		[]string{"source"},
	)

	// ForecastCache counts forecast cache lookups by hit/miss.
	ForecastCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "forecast",
			Name:      "cache_lookups_total",
			Help:      "Forecast cache lookups",
		},
		[]string{"result"},
	)
)
