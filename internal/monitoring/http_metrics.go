package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics contains all metrics for HTTP request monitoring
type HTTPMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	responseSize     *prometheus.HistogramVec
	inFlightRequests *prometheus.GaugeVec

	businessOperations *prometheus.CounterVec
	businessDuration   *prometheus.HistogramVec

	cacheOperations *prometheus.CounterVec
	rateSourceMode  *prometheus.CounterVec
}

// NewHTTPMetrics creates a new instance of HTTP metrics
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swiftchain_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "path", "status"},
		),

		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swiftchain_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		responseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swiftchain_http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 2, 8),
			},
			[]string{"method", "path", "status"},
		),

		inFlightRequests: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "swiftchain_http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
			[]string{"method", "path"},
		),

		businessOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swiftchain_business_operations_total",
				Help: "Total number of business operations",
			},
			[]string{"operation_type", "category", "status"},
		),

		businessDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "swiftchain_business_operation_duration_seconds",
				Help:    "Duration of business operations in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0, 10.0},
			},
			[]string{"operation_type", "category", "status"},
		),

		cacheOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swiftchain_cache_operations_total",
				Help: "Total number of cache operations",
			},
			[]string{"cache_type", "operation"}, // operation: hit, miss
		),

		rateSourceMode: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "swiftchain_rate_source_results_total",
				Help: "Rate lookups by the strategy that served them",
			},
			[]string{"mode", "reason"}, // mode: live, cached, fallback
		),
	}
}

// MustRegister registers all HTTP metrics with the provided registry
func (m *HTTPMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.responseSize,
		m.inFlightRequests,
		m.businessOperations,
		m.businessDuration,
		m.cacheOperations,
		m.rateSourceMode,
	)
}

// RecordBusinessMetric records a business operation metric
func (m *HTTPMetrics) RecordBusinessMetric(operationType, category, status string, duration float64) {
	m.businessOperations.WithLabelValues(operationType, category, status).Inc()
	if duration > 0 {
		m.businessDuration.WithLabelValues(operationType, category, status).Observe(duration)
	}
}

// HTTPMetricsMiddleware creates a Gin middleware for HTTP metrics collection
func HTTPMetricsMiddleware(metrics *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		method := c.Request.Method

		// unmatched routes have no FullPath
		if path == "" {
			path = "unmatched"
		}

		metrics.inFlightRequests.WithLabelValues(method, path).Inc()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		responseSize := float64(c.Writer.Size())

		metrics.requestDuration.WithLabelValues(method, path, status).Observe(duration)
		metrics.requestsTotal.WithLabelValues(method, path, status).Inc()
		if responseSize > 0 {
			metrics.responseSize.WithLabelValues(method, path, status).Observe(responseSize)
		}

		metrics.inFlightRequests.WithLabelValues(method, path).Dec()
	}
}

// BusinessMetricsRecorder provides methods to record business logic metrics.
// A nil recorder is valid and records nothing.
type BusinessMetricsRecorder struct {
	metrics *HTTPMetrics
}

// NewBusinessMetricsRecorder creates a new business metrics recorder
func NewBusinessMetricsRecorder(metrics *HTTPMetrics) *BusinessMetricsRecorder {
	return &BusinessMetricsRecorder{
		metrics: metrics,
	}
}

func (r *BusinessMetricsRecorder) RecordConversion(currency, status string, duration float64) {
	if r == nil {
		return
	}
	r.metrics.RecordBusinessMetric("conversion", currency, status, duration)
}

func (r *BusinessMetricsRecorder) RecordFeeComparison(status string, duration float64) {
	if r == nil {
		return
	}
	r.metrics.RecordBusinessMetric("fee_comparison", "inr", status, duration)
}

// RecordTransactionOperation covers register, poll, send and fail on tracked transactions.
func (r *BusinessMetricsRecorder) RecordTransactionOperation(operationType, status string, duration float64) {
	if r == nil {
		return
	}
	r.metrics.RecordBusinessMetric("transaction", operationType, status, duration)
}

func (r *BusinessMetricsRecorder) RecordWithdrawalOperation(operationType, status string, duration float64) {
	if r == nil {
		return
	}
	r.metrics.RecordBusinessMetric("withdrawal", operationType, status, duration)
}

func (r *BusinessMetricsRecorder) RecordWalletOperation(operationType, status string, duration float64) {
	if r == nil {
		return
	}
	r.metrics.RecordBusinessMetric("wallet", operationType, status, duration)
}

// RecordRateSource records which strategy served a rate lookup and why.
func (r *BusinessMetricsRecorder) RecordRateSource(mode, reason string) {
	if r == nil {
		return
	}
	r.metrics.rateSourceMode.WithLabelValues(mode, reason).Inc()
}

// RecordCacheOperation records a cache hit or miss
func (r *BusinessMetricsRecorder) RecordCacheOperation(cacheType, operation string) {
	if r == nil {
		return
	}
	r.metrics.cacheOperations.WithLabelValues(cacheType, operation).Inc()
}
