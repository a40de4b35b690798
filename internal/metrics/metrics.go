package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepcuts_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deepcuts_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deepcuts_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Generator metrics
var (
	GeneratorCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepcuts_generator_calls_total",
			Help: "Total number of generative service calls",
		},
		[]string{"provider", "outcome"},
	)

	GeneratorCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "deepcuts_generator_call_duration_seconds",
			Help:    "Generative service call duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"provider"},
	)
)

// Parser metrics
var (
	SongLinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepcuts_song_lines_total",
			Help: "SONG lines seen in generator replies by result (kept, dropped, truncated)",
		},
		[]string{"result"},
	)
)

// Catalog metrics
var (
	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deepcuts_catalog_cache_hits_total",
			Help: "Total number of playlist cache hits",
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "deepcuts_catalog_cache_misses_total",
			Help: "Total number of playlist cache misses",
		},
	)

	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deepcuts_verifications_total",
			Help: "Total number of catalog verification lookups by outcome",
		},
		[]string{"outcome"},
	)
)
