package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the path planner
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Generation Metrics
	PathsGeneratedTotal prometheus.CounterVec
	GenerationDuration  prometheus.HistogramVec
	WaypointsPerPath    prometheus.HistogramVec
	DegenerateInputs    prometheus.CounterVec

	// Session Metrics
	SessionsActive   prometheus.Gauge
	MutationsTotal   prometheus.CounterVec
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathplanner_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathplanner_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pathplanner_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Generation Metrics
		PathsGeneratedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathplanner_paths_generated_total",
				Help: "Total flight paths generated by pattern type",
			},
			[]string{"pattern"},
		),
		GenerationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathplanner_generation_duration_seconds",
				Help:    "Pattern generation time in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"pattern"},
		),
		WaypointsPerPath: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pathplanner_waypoints_per_path",
				Help:    "Waypoint count distribution of generated paths",
				Buckets: []float64{2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
			},
			[]string{"pattern"},
		),
		DegenerateInputs: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathplanner_degenerate_inputs_total",
				Help: "Generation requests whose geometry degraded to an empty path",
			},
			[]string{"pattern"},
		),

		// Session Metrics
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "pathplanner_sessions_active",
				Help: "Current number of live path sessions",
			},
		),
		MutationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathplanner_waypoint_mutations_total",
				Help: "Total waypoint mutation operations by kind",
			},
			[]string{"operation"},
		),
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathplanner_cache_hits_total",
				Help: "Total session cache hits by key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pathplanner_cache_misses_total",
				Help: "Total session cache misses by key pattern",
			},
			[]string{"cache_key_pattern"},
		),
	}
}
