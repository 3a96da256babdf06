package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource/coingecko"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/walletrpc"
)

const pricePayload = `{"tether":{"inr":83.2,"usd":1}}`

func serve(t *testing.T, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)
	return w
}

func priceServer(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHealthHandler_Basic(t *testing.T) {
	handler := &HealthHandler{}

	start := time.Now()
	w := serve(t, handler.Basic)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, time.Since(start) < 200*time.Millisecond)

	var response BasicHealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Message)
}

func TestHealthHandler_Database_NilDB(t *testing.T) {
	cfg := &config.AppConfig{Tracker: config.TrackerConfig{Store: config.StorePostgres}}
	handler := &HealthHandler{config: cfg, logger: logger.New("test")}

	w := serve(t, handler.Database)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Checks["database"].Error, "database connection not available")
}

func TestHealthHandler_Database_MemoryStores(t *testing.T) {
	cfg := &config.AppConfig{
		Tracker:    config.TrackerConfig{Store: config.StoreMemory},
		Withdrawal: config.WithdrawalConfig{Store: config.StoreMemory},
	}
	handler := &HealthHandler{config: cfg, logger: logger.New("test")}

	w := serve(t, handler.Database)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "memory", response.Checks["database"].Metadata["driver"])
}

func TestHealthHandler_External_NilPriceFeed(t *testing.T) {
	handler := &HealthHandler{logger: logger.New("test")}

	w := serve(t, handler.External)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Checks["coingecko_api"].Error, "price feed not available")
	assert.Equal(t, "healthy", response.Checks["wallet_rpc"].Status)
}

func TestHealthHandler_External_Healthy(t *testing.T) {
	log := logger.New("test")
	server := priceServer(t, http.StatusOK, pricePayload)
	feed, err := monitoring.NewCircuitBreakerPriceFeed(
		coingecko.New(server.URL, time.Second, log),
		monitoring.CircuitBreakerConfigs["coingecko_api"],
		monitoring.NewExternalAPIMetrics(),
		log,
	)
	require.NoError(t, err)

	handler := &HealthHandler{
		logger:    log,
		priceFeed: feed,
		wallet:    walletrpc.NewWithClient(nil, "0x7169D38820dfd117C3FA1f22a697dBA58d90BA06", 11155111, log, nil),
	}

	w := serve(t, handler.External)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "closed", response.Checks["coingecko_api"].Metadata["circuit_breaker"])
	assert.Equal(t, false, response.Checks["wallet_rpc"].Metadata["configured"])
}

func TestHealthHandler_External_UpstreamDown(t *testing.T) {
	log := logger.New("test")
	server := priceServer(t, http.StatusServiceUnavailable, "")

	handler := &HealthHandler{
		logger:    log,
		priceFeed: coingecko.New(server.URL, time.Second, log),
	}

	w := serve(t, handler.External)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "unhealthy", response.Checks["coingecko_api"].Status)
	assert.Contains(t, response.Checks["coingecko_api"].Error, "503")
}

func TestHealthHandler_ResponseFormat(t *testing.T) {
	handler := &HealthHandler{logger: logger.New("test"), config: &config.AppConfig{}}

	for name, h := range map[string]gin.HandlerFunc{
		"database": handler.Database,
		"external": handler.External,
	} {
		t.Run(name, func(t *testing.T) {
			w := serve(t, h)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			for _, field := range []string{"status", "timestamp", "checks", "duration_ms"} {
				assert.Contains(t, response, field, "Missing required field: %s", field)
			}
		})
	}
}

func newJobManager() *monitoring.JobStatusManager {
	return monitoring.NewJobStatusManager(logger.New("test"), monitoring.NewBackgroundJobMetrics())
}

func TestHealthHandler_Jobs(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(jsm *monitoring.JobStatusManager)
		wantCode   int
		wantStatus string
	}{
		{
			name: "all jobs succeed",
			setup: func(jsm *monitoring.JobStatusManager) {
				jsm.RegisterJob("rate_refresh")
				jsm.StartJob("rate_refresh")
				jsm.CompleteJob("rate_refresh", nil, nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
		},
		{
			name: "non critical job failing",
			setup: func(jsm *monitoring.JobStatusManager) {
				jsm.RegisterJob("pending_gauge")
				jsm.StartJob("pending_gauge")
				jsm.CompleteJob("pending_gauge", errors.New("db down"), nil)
			},
			wantCode:   http.StatusPartialContent,
			wantStatus: "degraded",
		},
		{
			name: "critical job failing repeatedly",
			setup: func(jsm *monitoring.JobStatusManager) {
				jsm.RegisterJob("rate_refresh")
				for i := 0; i < 3; i++ {
					jsm.StartJob("rate_refresh")
					jsm.CompleteJob("rate_refresh", errors.New("timeout"), nil)
				}
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsm := newJobManager()
			tt.setup(jsm)
			handler := &HealthHandler{logger: logger.New("test"), jobStatusManager: jsm}

			w := serve(t, handler.Jobs)

			assert.Equal(t, tt.wantCode, w.Code)
			var response JobsHealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantStatus, response.Status)
		})
	}
}

func TestHealthHandler_Jobs_NoManager(t *testing.T) {
	handler := &HealthHandler{logger: logger.New("test")}

	w := serve(t, handler.Jobs)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
