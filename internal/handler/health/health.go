package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sony/gobreaker"
	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource/coingecko"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/walletrpc"
)

// probeAddress is only used to exercise the balance call
const probeAddress = "0x0000000000000000000000000000000000000000"

type breakerState interface {
	State() gobreaker.State
}

// HealthHandler implements IHealthHandler interface
type HealthHandler struct {
	config           *config.AppConfig
	logger           *logger.Logger
	db               *gorm.DB
	priceFeed        coingecko.IPriceFeed
	rates            ratesource.IRateSource
	wallet           walletrpc.IWalletRPC
	jobStatusManager *monitoring.JobStatusManager
}

// New creates a new health handler instance. db is nil when every store is in memory.
func New(
	config *config.AppConfig,
	logger *logger.Logger,
	db *gorm.DB,
	priceFeed coingecko.IPriceFeed,
	rates ratesource.IRateSource,
	wallet walletrpc.IWalletRPC,
	jobStatusManager *monitoring.JobStatusManager,
) IHealthHandler {
	return &HealthHandler{
		config:           config,
		logger:           logger,
		db:               db,
		priceFeed:        priceFeed,
		rates:            rates,
		wallet:           wallet,
		jobStatusManager: jobStatusManager,
	}
}

// Basic handles the basic health check endpoint (/healthz)
// @Summary Basic health check
// @Description Returns basic system availability status
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} BasicHealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, BasicHealthResponse{Message: "ok"})
}

// Database handles the database health check endpoint
// @Summary Database health check
// @Description Validates database connectivity. Always healthy when no store uses postgres
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health/db [get]
func (h *HealthHandler) Database(c *gin.Context) {
	start := time.Now()
	response := HealthResponse{
		Timestamp: start,
		Checks:    make(map[string]HealthCheck),
	}

	dbCheck := h.checkDatabase(requestContext(c))
	response.Checks["database"] = dbCheck
	response.DurationMs = time.Since(start).Milliseconds()

	if dbCheck.Status == statusHealthy {
		response.Status = statusHealthy
		c.JSON(http.StatusOK, response)
		return
	}
	response.Status = statusUnhealthy
	c.JSON(http.StatusServiceUnavailable, response)
}

// External handles the external API dependencies health check endpoint
// @Summary External dependencies health check
// @Description Validates the price feed and the wallet rpc endpoint
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health/external [get]
func (h *HealthHandler) External(c *gin.Context) {
	start := time.Now()
	response := HealthResponse{
		Timestamp: start,
		Checks:    make(map[string]HealthCheck),
	}

	ctx, cancel := context.WithTimeout(requestContext(c), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	var mu sync.Mutex
	checks := map[string]func(context.Context) HealthCheck{
		"coingecko_api": h.checkPriceFeed,
		"wallet_rpc":    h.checkWalletRPC,
	}
	for name, check := range checks {
		wg.Add(1)
		go func(name string, check func(context.Context) HealthCheck) {
			defer wg.Done()
			result := check(ctx)
			mu.Lock()
			response.Checks[name] = result
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()
	response.DurationMs = time.Since(start).Milliseconds()

	response.Status = statusHealthy
	for _, check := range response.Checks {
		if check.Status != statusHealthy {
			response.Status = statusUnhealthy
			break
		}
	}

	if response.Status == statusHealthy {
		c.JSON(http.StatusOK, response)
		return
	}
	h.logger.Error("[HealthHandler][External] dependency unhealthy", map[string]string{
		"duration": fmt.Sprintf("%dms", response.DurationMs),
	})
	c.JSON(http.StatusServiceUnavailable, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) HealthCheck {
	start := time.Now()
	check := HealthCheck{Metadata: make(map[string]interface{})}

	if h.db == nil {
		if h.config != nil && !h.config.UsesPostgres() {
			check.Status = statusHealthy
			check.Metadata["driver"] = config.StoreMemory
			return check
		}
		check.Status = statusUnhealthy
		check.Error = "database connection not available"
		check.Latency = time.Since(start).Milliseconds()
		return check
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		check.Status = statusUnhealthy
		check.Error = fmt.Sprintf("failed to get underlying database: %v", err)
		check.Latency = time.Since(start).Milliseconds()
		return check
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		check.Status = statusUnhealthy
		if pingCtx.Err() == context.DeadlineExceeded {
			check.Error = "timeout"
		} else {
			check.Error = err.Error()
		}
		check.Latency = time.Since(start).Milliseconds()
		return check
	}

	stats := sqlDB.Stats()
	check.Status = statusHealthy
	check.Latency = time.Since(start).Milliseconds()
	check.Metadata["driver"] = config.StorePostgres
	check.Metadata["connection_pool"] = map[string]interface{}{
		"open_connections": stats.OpenConnections,
		"in_use":           stats.InUse,
		"idle":             stats.Idle,
		"max_open":         stats.MaxOpenConnections,
	}
	return check
}

// checkPriceFeed asks for a single quote. The rate source cache is reported alongside.
func (h *HealthHandler) checkPriceFeed(ctx context.Context) HealthCheck {
	start := time.Now()
	check := HealthCheck{Metadata: make(map[string]interface{})}

	if h.priceFeed == nil {
		check.Status = statusUnhealthy
		check.Error = "price feed not available"
		return check
	}
	if cb, ok := h.priceFeed.(breakerState); ok {
		check.Metadata["circuit_breaker"] = cb.State().String()
	}
	if h.rates != nil {
		check.Metadata["cache"] = h.rates.GetCacheStatistics()
	}

	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := h.priceFeed.SimplePrice(checkCtx, []string{consts.AssetTether}, []string{"usd"})
	check.Latency = time.Since(start).Milliseconds()
	if err != nil {
		check.Status = statusUnhealthy
		if checkCtx.Err() == context.DeadlineExceeded {
			check.Error = "timeout"
		} else {
			check.Error = err.Error()
		}
		return check
	}

	check.Status = statusHealthy
	return check
}

// checkWalletRPC reads a balance when an endpoint is configured. Simulated sends need no endpoint.
func (h *HealthHandler) checkWalletRPC(ctx context.Context) HealthCheck {
	start := time.Now()
	check := HealthCheck{Metadata: make(map[string]interface{})}

	if h.wallet == nil || !h.wallet.Connected() {
		check.Status = statusHealthy
		check.Metadata["configured"] = false
		return check
	}
	check.Metadata["configured"] = true

	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := h.wallet.GetBalance(checkCtx, probeAddress, consts.CurrencyETH)
	check.Latency = time.Since(start).Milliseconds()
	if err != nil {
		check.Status = statusUnhealthy
		check.Error = err.Error()
		return check
	}

	check.Status = statusHealthy
	return check
}

func requestContext(c *gin.Context) context.Context {
	if c.Request != nil {
		return c.Request.Context()
	}
	return context.Background()
}
