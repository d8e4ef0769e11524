// Package metrics provides Prometheus metrics collection for the carry-on service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ComplianceEvaluationsTotal counts served evaluations by outcome:
	// success (computed), cached or error.
	ComplianceEvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_evaluations_total",
			Help: "Total number of bag compliance evaluations served, by outcome",
		},
		[]string{"status"},
	)

	// ComplianceEvaluationDuration tracks how long a full evaluation takes.
	ComplianceEvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compliance_evaluation_duration_seconds",
			Help:    "Compliance evaluation duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// ComplianceScore is the distribution of carry-on compliance scores.
	ComplianceScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compliance_score",
			Help:    "Percentage of airlines a bag complies with",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	// FillSuggestionsTotal counts served reports by whether they carry a suggestion.
	FillSuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fill_suggestions_total",
			Help: "Total number of fill level searches",
		},
		[]string{"result"},
	)

	// AirlineDatasetSize is the number of airlines in the active dataset.
	AirlineDatasetSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "airline_dataset_size",
			Help: "Number of airlines in the active dataset",
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CircuitBreakerState is 0 closed, 1 open, 2 half-open.
	// PanicsRecoveredTotal counts handler panics turned into 500 responses.
	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_panics_recovered_total",
			Help: "Handler panics recovered by route",
		},
		[]string{"path"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordEvaluation records one compliance evaluation. score is ignored on error.
func RecordEvaluation(duration time.Duration, status string, score float64) {
	ComplianceEvaluationDuration.Observe(duration.Seconds())
	ComplianceEvaluationsTotal.WithLabelValues(status).Inc()
	if status != "error" {
		ComplianceScore.Observe(score)
	}
}

// RecordFillSuggestion records whether the optimizer found a better fill level.
func RecordFillSuggestion(found bool) {
	result := "none"
	if found {
		result = "found"
	}
	FillSuggestionsTotal.WithLabelValues(result).Inc()
}

// SetDatasetSize updates the airline dataset gauge.
func SetDatasetSize(n int) {
	AirlineDatasetSize.Set(float64(n))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheSize updates the cache size gauge.
func UpdateCacheSize(size int) {
	CacheSize.Set(float64(size))
}

// SetCircuitBreakerState publishes a breaker state as a gauge value.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordPanic counts a recovered panic on route.
func RecordPanic(route string) {
	if route == "" {
		route = "unmatched"
	}
	PanicsRecoveredTotal.WithLabelValues(route).Inc()
}
