package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/conversion"
	"github.com/dwarvesf/swiftchain-backend/internal/feecompare"
	"github.com/dwarvesf/swiftchain-backend/internal/handler"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource/coingecko"
	"github.com/dwarvesf/swiftchain-backend/internal/store"
	pgstore "github.com/dwarvesf/swiftchain-backend/internal/store/postgres"
	"github.com/dwarvesf/swiftchain-backend/internal/tracker"
	transport "github.com/dwarvesf/swiftchain-backend/internal/transport/http"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/webhook"
	"github.com/dwarvesf/swiftchain-backend/internal/walletrpc"
	"github.com/dwarvesf/swiftchain-backend/internal/withdrawal"
)

const (
	jobRateRefresh  = "rate_refresh"
	jobPendingGauge = "pending_gauge"

	pendingGaugeSchedule = "@every 30s"
	jobTimeout           = 30 * time.Second
	shutdownTimeout      = 10 * time.Second
)

// App holds every long lived component of the service.
type App struct {
	config   *config.AppConfig
	logger   *logger.Logger
	db       *gorm.DB
	services handler.Services
	cron     *cron.Cron

	refreshJob *monitoring.InstrumentedJob

	registry         *prometheus.Registry
	httpMetrics      *monitoring.HTTPMetrics
	jobStatusManager *monitoring.JobStatusManager
}

// NewApp wires the service. Postgres is only dialed when a store is configured to use it.
func NewApp(appConfig *config.AppConfig, logger *logger.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(registry)
	apiMetrics := monitoring.NewExternalAPIMetrics()
	apiMetrics.MustRegister(registry)
	jobMetrics := monitoring.NewBackgroundJobMetrics()
	jobMetrics.MustRegister(registry)
	business := monitoring.NewBusinessMetricsRecorder(httpMetrics)

	priceFeed, err := monitoring.NewCircuitBreakerPriceFeedWithTimeout(
		coingecko.New(appConfig.RateSource.CoinGeckoBaseURL, appConfig.RateSource.Timeout, logger),
		monitoring.CircuitBreakerConfigs["coingecko_api"],
		monitoring.TimeoutConfig{
			RequestTimeout:     appConfig.RateSource.Timeout,
			HealthCheckTimeout: monitoring.DefaultTimeoutConfig.HealthCheckTimeout,
		},
		apiMetrics,
		logger,
	)
	if err != nil {
		return nil, errors.Wrap(err, "init price feed circuit breaker")
	}

	var db *gorm.DB
	if appConfig.UsesPostgres() {
		db = pgstore.New(appConfig, logger)
	}
	s := store.New()

	trackerStore := tracker.NewMemoryStore()
	if appConfig.Tracker.Store == config.StorePostgres {
		trackerStore = tracker.NewPostgresStore(db, s)
	}
	withdrawalStore := withdrawal.NewMemoryStore()
	if appConfig.Withdrawal.Store == config.StorePostgres {
		withdrawalStore = withdrawal.NewPostgresStore(db, s)
	}

	wallet, err := walletrpc.New(appConfig, logger, business)
	if err != nil {
		return nil, err
	}

	rates := ratesource.New(priceFeed, appConfig.RateSource.CacheTTL, logger, business)

	txTracker, err := tracker.New(trackerStore, appConfig.Tracker.ConfirmationThreshold, logger, business)
	if err != nil {
		return nil, errors.Wrap(err, "init transaction tracker")
	}

	return &App{
		config: appConfig,
		logger: logger,
		db:     db,
		services: handler.Services{
			PriceFeed:  priceFeed,
			Rates:      rates,
			Calculator: conversion.New(rates, appConfig.Fees, logger, business),
			Comparator: feecompare.New(appConfig.Fees, business),
			Tracker:    txTracker,
			Withdrawal: withdrawal.New(withdrawalStore, appConfig.Fees.WithdrawalFeeRate, appConfig.Withdrawal.CompletionDelay, logger, business),
			Wallet:     wallet,
		},
		cron:             cron.New(),
		registry:         registry,
		httpMetrics:      httpMetrics,
		jobStatusManager: monitoring.NewJobStatusManager(logger, jobMetrics),
	}, nil
}

func (a *App) Router() *gin.Engine {
	return transport.NewHttpServer(a.config, a.logger, a.services, a.db, transport.Monitoring{
		Registry:         a.registry,
		HTTPMetrics:      a.httpMetrics,
		JobStatusManager: a.jobStatusManager,
	})
}

// ScheduleJobs registers the background jobs with cron. It does not start cron.
func (a *App) ScheduleJobs() error {
	uptime := webhook.New(a.logger)

	a.refreshJob = monitoring.NewInstrumentedJob(jobRateRefresh, a.services.Rates.Refresh, a.jobStatusManager, a.logger, jobTimeout).
		WithUptimeWebhook(uptime, a.config.UptimeWebhooks.RateRefreshURL)
	if _, err := a.cron.AddJob(a.config.RateSource.RefreshSchedule, a.refreshJob); err != nil {
		return errors.Wrapf(err, "schedule %s", jobRateRefresh)
	}

	gauge := monitoring.NewInstrumentedJob(jobPendingGauge, a.updatePendingGauge, a.jobStatusManager, a.logger, jobTimeout).
		WithUptimeWebhook(uptime, a.config.UptimeWebhooks.PendingGaugeURL)
	if _, err := a.cron.AddJob(pendingGaugeSchedule, gauge); err != nil {
		return errors.Wrapf(err, "schedule %s", jobPendingGauge)
	}
	return nil
}

func (a *App) updatePendingGauge(ctx context.Context) error {
	transactions, err := a.services.Tracker.PendingCount(ctx)
	if err != nil {
		return errors.Wrap(err, "count pending transactions")
	}
	withdrawals, err := a.services.Withdrawal.PendingCount(ctx)
	if err != nil {
		return errors.Wrap(err, "count processing withdrawals")
	}

	a.jobStatusManager.SetPendingGauge("transactions", int(transactions))
	a.jobStatusManager.SetPendingGauge("withdrawals", int(withdrawals))
	return nil
}

// Shutdown stops the scheduler and the withdrawal timers
func (a *App) Shutdown() {
	<-a.cron.Stop().Done()
	a.services.Withdrawal.Shutdown()
}

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	app, err := NewApp(appConfig, logger)
	if err != nil {
		logger.Fatal("[Server][Init] failed to init app", map[string]string{
			"error": err.Error(),
		})
	}

	if err := app.services.Withdrawal.Resume(context.Background()); err != nil {
		logger.Error("[Server][Init] failed to resume withdrawals", map[string]string{
			"error": err.Error(),
		})
	}

	if err := app.ScheduleJobs(); err != nil {
		logger.Fatal("[Server][Init] failed to schedule jobs", map[string]string{
			"error": err.Error(),
		})
	}
	app.cron.Start()

	// warm the rate cache so the first request does not wait on the price feed
	go app.refreshJob.Execute()

	srv := &http.Server{
		Addr:              ":" + appConfig.ApiServer.Port,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("[Server][Init] listening", map[string]string{
			"port":        appConfig.ApiServer.Port,
			"environment": string(appConfig.Environment),
			"tracker":     appConfig.Tracker.Store,
			"withdrawal":  appConfig.Withdrawal.Store,
			"threshold":   strconv.Itoa(appConfig.Tracker.ConfirmationThreshold),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("[Server][Init] server error", map[string]string{
				"error": err.Error(),
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("[Server][Init] shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("[Server][Init] forced shutdown", map[string]string{
			"error": err.Error(),
		})
	}
	app.Shutdown()
}
