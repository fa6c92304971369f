package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"service", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "route"},
	)

	// kind is "business_data" or "headline".
	BusinessGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "business_generations_total",
			Help: "Total number of fabricated business values",
		},
		[]string{"kind"},
	)

	StatsEventsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_events_processed_total",
			Help: "Generation events consumed by the stats service",
		},
		[]string{"type", "result"},
	)
)
