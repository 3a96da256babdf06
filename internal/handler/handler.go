package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/dwarvesf/swiftchain-backend/internal/conversion"
	"github.com/dwarvesf/swiftchain-backend/internal/feecompare"
	conversionHandler "github.com/dwarvesf/swiftchain-backend/internal/handler/conversion"
	"github.com/dwarvesf/swiftchain-backend/internal/handler/health"
	"github.com/dwarvesf/swiftchain-backend/internal/handler/metrics"
	"github.com/dwarvesf/swiftchain-backend/internal/handler/transaction"
	"github.com/dwarvesf/swiftchain-backend/internal/handler/wallet"
	withdrawalHandler "github.com/dwarvesf/swiftchain-backend/internal/handler/withdrawal"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource/coingecko"
	"github.com/dwarvesf/swiftchain-backend/internal/tracker"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
	"github.com/dwarvesf/swiftchain-backend/internal/walletrpc"
	"github.com/dwarvesf/swiftchain-backend/internal/withdrawal"
)

type Handler struct {
	ConversionHandler  conversionHandler.IHandler
	TransactionHandler transaction.IHandler
	WithdrawalHandler  withdrawalHandler.IHandler
	WalletHandler      wallet.IHandler
	HealthHandler      health.IHealthHandler
	MetricsHandler     *metrics.MetricsHandler
}

// Services groups the domain components the handlers sit on.
type Services struct {
	PriceFeed  coingecko.IPriceFeed
	Rates      ratesource.IRateSource
	Calculator conversion.ICalculator
	Comparator feecompare.IComparator
	Tracker    tracker.ITracker
	Withdrawal withdrawal.IWithdrawal
	Wallet     walletrpc.IWalletRPC
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	services Services,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry) *Handler {
	return NewWithMonitoring(appConfig, logger, services, db, metricsRegistry, nil)
}

func NewWithMonitoring(appConfig *config.AppConfig, logger *logger.Logger,
	services Services,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry,
	jobStatusManager *monitoring.JobStatusManager) *Handler {
	return &Handler{
		ConversionHandler: conversionHandler.New(services.Calculator, services.Comparator, services.Rates, logger),
		TransactionHandler: transaction.NewTransactionHandler(services.Tracker, services.Wallet,
			appConfig.Tracker.PollInterval, appConfig.Tracker.PollTimeout, logger),
		WithdrawalHandler: withdrawalHandler.New(services.Withdrawal, logger),
		WalletHandler:     wallet.New(services.Wallet, logger),
		HealthHandler: health.New(appConfig, logger, db, services.PriceFeed, services.Rates,
			services.Wallet, jobStatusManager),
		MetricsHandler: metrics.NewMetricsHandler(metricsRegistry),
	}
}
