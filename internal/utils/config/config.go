package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Postgres    DBConnection
	RateSource  RateSourceConfig
	Fees        FeeConfig
	Tracker     TrackerConfig
	Withdrawal  WithdrawalConfig
	Blockchain  BlockchainConfig

	UptimeWebhooks UptimeWebhooksConfig
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

type RateSourceConfig struct {
	CoinGeckoBaseURL string
	Timeout          time.Duration
	CacheTTL         time.Duration
	RefreshSchedule  string
}

// FeeConfig centralizes the business rules for pricing. Rates are fractions (0.01 = 1%).
type FeeConfig struct {
	PlatformFeeRate decimal.Decimal
	// NetworkFeeFixed is denominated in the target crypto, keyed by currency code.
	NetworkFeeFixed   map[string]decimal.Decimal
	BankSwiftRate     decimal.Decimal
	BankSpreadRate    decimal.Decimal
	BankFlatFee       decimal.Decimal
	ReferenceRate     decimal.Decimal
	WithdrawalFeeRate decimal.Decimal
}

type TrackerConfig struct {
	Store                 string
	ConfirmationThreshold int
	PollInterval          time.Duration
	PollTimeout           time.Duration
}

type WithdrawalConfig struct {
	Store           string
	CompletionDelay time.Duration
}

type BlockchainConfig struct {
	RPCEndpoint      string
	USDTContractAddr string
	ChainID          int64
}

// UptimeWebhooksConfig holds heartbeat URLs pinged after a background job succeeds.
// An empty URL disables the ping for that job.
type UptimeWebhooksConfig struct {
	RateRefreshURL  string
	PendingGaugeURL string
}

// storage drivers for the tracker and the withdrawal simulator
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// UsesPostgres reports whether any component is configured to persist in postgres.
func (c *AppConfig) UsesPostgres() bool {
	return c.Tracker.Store == StorePostgres || c.Withdrawal.Store == StorePostgres
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// does not override variables that are already set
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Parse(env),
		ApiServer: ApiServerConfig{
			Port:           envOrDefault("PORT", "8080"),
			AllowedOrigins: envOrDefault("ALLOWED_ORIGINS", "http://localhost:3000"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: envOrDefault("DB_SSL_MODE", "disable"),
		},
		RateSource: RateSourceConfig{
			CoinGeckoBaseURL: envOrDefault("COINGECKO_API_URL", "https://api.coingecko.com/api/v3"),
			Timeout:          envVarAsDuration("RATE_SOURCE_TIMEOUT", 10*time.Second),
			CacheTTL:         envVarAsDuration("RATE_SOURCE_CACHE_TTL", time.Minute),
			RefreshSchedule:  envOrDefault("RATE_SOURCE_REFRESH_SCHEDULE", "@every 1m"),
		},
		Fees: FeeConfig{
			PlatformFeeRate: envVarAsDecimal("FEE_PLATFORM_RATE", "0.01"),
			NetworkFeeFixed: map[string]decimal.Decimal{
				"USDT": envVarAsDecimal("FEE_NETWORK_USDT", "0.5"),
				"ETH":  envVarAsDecimal("FEE_NETWORK_ETH", "0.001"),
			},
			BankSwiftRate:     envVarAsDecimal("FEE_BANK_SWIFT_RATE", "0.05"),
			BankSpreadRate:    envVarAsDecimal("FEE_BANK_SPREAD_RATE", "0.03"),
			BankFlatFee:       envVarAsDecimal("FEE_BANK_FLAT_FEE", "500"),
			ReferenceRate:     envVarAsDecimal("FEE_REFERENCE_RATE", "83"),
			WithdrawalFeeRate: envVarAsDecimal("FEE_WITHDRAWAL_RATE", "0.005"),
		},
		Tracker: TrackerConfig{
			Store:                 envOrDefault("TRACKER_STORE", StoreMemory),
			ConfirmationThreshold: envVarAtoi("TRACKER_CONFIRMATION_THRESHOLD", 12),
			PollInterval:          envVarAsDuration("TRACKER_POLL_INTERVAL", 3*time.Second),
			PollTimeout:           envVarAsDuration("TRACKER_POLL_TIMEOUT", 2*time.Minute),
		},
		Withdrawal: WithdrawalConfig{
			Store:           envOrDefault("WITHDRAWAL_STORE", StoreMemory),
			CompletionDelay: envVarAsDuration("WITHDRAWAL_COMPLETION_DELAY", 5*time.Second),
		},
		Blockchain: BlockchainConfig{
			RPCEndpoint:      os.Getenv("BLOCKCHAIN_RPC_ENDPOINT"),
			USDTContractAddr: envOrDefault("BLOCKCHAIN_USDT_CONTRACT_ADDR", "0x7169D38820dfd117C3FA1f22a697dBA58d90BA06"),
			ChainID:          int64(envVarAtoi("BLOCKCHAIN_CHAIN_ID", 11155111)),
		},
		UptimeWebhooks: UptimeWebhooksConfig{
			RateRefreshURL:  os.Getenv("UPTIME_WEBHOOK_RATE_REFRESH_URL"),
			PendingGaugeURL: os.Getenv("UPTIME_WEBHOOK_PENDING_GAUGE_URL"),
		},
	}
}

// DefaultFees returns the stock pricing rules, independent of the environment.
func DefaultFees() FeeConfig {
	return FeeConfig{
		PlatformFeeRate: decimal.RequireFromString("0.01"),
		NetworkFeeFixed: map[string]decimal.Decimal{
			"USDT": decimal.RequireFromString("0.5"),
			"ETH":  decimal.RequireFromString("0.001"),
		},
		BankSwiftRate:     decimal.RequireFromString("0.05"),
		BankSpreadRate:    decimal.RequireFromString("0.03"),
		BankFlatFee:       decimal.NewFromInt(500),
		ReferenceRate:     decimal.NewFromInt(83),
		WithdrawalFeeRate: decimal.RequireFromString("0.005"),
	}
}

func envOrDefault(envName, fallback string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return fallback
}

func envVarAtoi(envName string, fallback int) int {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		panic(err)
	}

	return value
}

func envVarAsDuration(envName string, fallback time.Duration) time.Duration {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		panic(err)
	}

	return value
}

func envVarAsDecimal(envName, fallback string) decimal.Decimal {
	valueStr := envOrDefault(envName, fallback)
	return decimal.RequireFromString(valueStr)
}
