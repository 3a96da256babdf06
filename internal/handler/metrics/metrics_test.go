package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
)

func scrape(t *testing.T, registry *prometheus.Registry) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/metrics", NewMetricsHandler(registry).Handler())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	return w
}

func assertPrometheusContentType(t *testing.T, w *httptest.ResponseRecorder) {
	contentType := w.Header().Get("Content-Type")
	assert.True(t,
		strings.Contains(contentType, "text/plain") ||
			strings.Contains(contentType, "application/openmetrics-text"),
		"Expected Prometheus metrics content type, got: %s", contentType)
}

func TestMetricsHandler_ServiceMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(registry)

	recorder := monitoring.NewBusinessMetricsRecorder(httpMetrics)
	recorder.RecordConversion("USDT", "success", 0.01)
	recorder.RecordRateSource("fallback", "timeout")

	w := scrape(t, registry)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "swiftchain_business_operations_total")
	assert.Contains(t, body, "swiftchain_rate_source_results_total")
	assertPrometheusContentType(t, w)
}

func TestMetricsHandler_CustomMetric(t *testing.T) {
	registry := prometheus.NewRegistry()
	testCounter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "A test counter for metrics endpoint testing",
	})
	registry.MustRegister(testCounter)
	testCounter.Inc()

	w := scrape(t, registry)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "# HELP test_counter A test counter for metrics endpoint testing")
	assert.Contains(t, body, "# TYPE test_counter counter")
	assert.Contains(t, body, "test_counter 1")
}

func TestMetricsHandler_EmptyRegistry(t *testing.T) {
	w := scrape(t, prometheus.NewRegistry())

	assert.Equal(t, http.StatusOK, w.Code)
	assertPrometheusContentType(t, w)
}
