package walletrpc

import (
	"context"
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const (
	simulatedGasUsed  = "21000"
	simulatedGasPrice = "20000000000" // 20 gwei
	walletAPIName     = "wallet_rpc"
)

type WalletRPC struct {
	client   ChainClient
	usdt     common.Address
	chainID  int64
	breaker  *gobreaker.CircuitBreaker
	timeouts monitoring.TimeoutConfig
	logger   *logger.Logger
	metrics  *monitoring.BusinessMetricsRecorder
}

// New dials the configured endpoint. Without an endpoint the connector only simulates sends.
func New(appConfig *config.AppConfig, logger *logger.Logger, metrics *monitoring.BusinessMetricsRecorder) (IWalletRPC, error) {
	var client ChainClient
	if appConfig.Blockchain.RPCEndpoint != "" {
		ethClient, err := ethclient.Dial(appConfig.Blockchain.RPCEndpoint)
		if err != nil {
			return nil, errors.Wrap(err, "dial wallet rpc")
		}
		client = ethClient
	}
	return NewWithClient(client, appConfig.Blockchain.USDTContractAddr, appConfig.Blockchain.ChainID, logger, metrics), nil
}

// NewWithClient builds a connector over client, which may be nil.
func NewWithClient(client ChainClient, usdtContract string, chainID int64, logger *logger.Logger, metrics *monitoring.BusinessMetricsRecorder) *WalletRPC {
	cfg := monitoring.CircuitBreakerConfigs[walletAPIName]
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        walletAPIName,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.ConsecutiveFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state change", map[string]string{
				"service": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})

	return &WalletRPC{
		client:   client,
		usdt:     common.HexToAddress(usdtContract),
		chainID:  chainID,
		breaker:  breaker,
		timeouts: monitoring.DefaultTimeoutConfig,
		logger:   logger,
		metrics:  metrics,
	}
}

func (w *WalletRPC) Connected() bool {
	return w.client != nil
}

func (w *WalletRPC) GetBalance(ctx context.Context, address, currency string) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := w.getBalance(ctx, address, consts.NormalizeCurrency(currency))
	w.record("balance", err, start)
	return balance, err
}

func (w *WalletRPC) getBalance(ctx context.Context, address, currency string) (decimal.Decimal, error) {
	if !common.IsHexAddress(address) {
		return decimal.Zero, errors.Wrapf(errs.ErrInvalidAddress, "address %q", address)
	}
	if _, ok := consts.AssetForCurrency(currency); !ok {
		return decimal.Zero, errors.Wrapf(errs.ErrUnsupportedCurrency, "currency %q", currency)
	}
	if w.client == nil {
		return decimal.Zero, errors.Wrap(errs.ErrWalletUnavailable, "no rpc endpoint configured")
	}

	account := common.HexToAddress(address)
	result, err := w.breaker.Execute(func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(ctx, w.timeouts.RequestTimeout)
		defer cancel()

		if currency == consts.CurrencyETH {
			return w.client.BalanceAt(callCtx, account, nil)
		}
		return w.erc20BalanceOf(callCtx, account)
	})
	if err != nil {
		w.logger.Error("[WalletRPC][GetBalance]", map[string]string{
			"error":      err.Error(),
			"address":    address,
			"currency":   currency,
			"error_type": string(monitoring.ClassifyError(err)),
		})
		return decimal.Zero, errors.Wrap(errs.ErrWalletUnavailable, err.Error())
	}

	decimals := int32(consts.ETHDecimals)
	if currency == consts.CurrencyUSDT {
		decimals = consts.USDTDecimals
	}
	return decimal.NewFromBigInt(result.(*big.Int), -decimals), nil
}

func (w *WalletRPC) erc20BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	data, err := erc20ABI.Pack("balanceOf", account)
	if err != nil {
		return nil, errors.Wrap(err, "pack balanceOf")
	}

	out, err := w.client.CallContract(ctx, ethereum.CallMsg{To: &w.usdt, Data: data}, nil)
	if err != nil {
		return nil, err
	}

	values, err := erc20ABI.Unpack("balanceOf", out)
	if err != nil {
		return nil, errors.Wrap(err, "unpack balanceOf")
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, errors.New("unexpected balanceOf output")
	}
	return balance, nil
}

func (w *WalletRPC) SendTransaction(ctx context.Context, from, to string, amount decimal.Decimal, currency string) (*model.SentTransaction, error) {
	start := time.Now()
	sent, err := w.sendTransaction(ctx, from, to, amount, consts.NormalizeCurrency(currency))
	w.record("send", err, start)
	return sent, err
}

func (w *WalletRPC) sendTransaction(ctx context.Context, from, to string, amount decimal.Decimal, currency string) (*model.SentTransaction, error) {
	if !common.IsHexAddress(from) {
		return nil, errors.Wrapf(errs.ErrInvalidAddress, "from address %q", from)
	}
	if !common.IsHexAddress(to) {
		return nil, errors.Wrapf(errs.ErrInvalidAddress, "to address %q", to)
	}
	if !amount.IsPositive() {
		return nil, errors.Wrapf(errs.ErrInvalidAmount, "amount %s must be positive", amount)
	}
	if _, ok := consts.AssetForCurrency(currency); !ok {
		return nil, errors.Wrapf(errs.ErrUnsupportedCurrency, "currency %q", currency)
	}

	nonce := uint64(mrand.Int63n(1000))
	if w.client != nil {
		balance, err := w.getBalance(ctx, from, currency)
		if err != nil {
			return nil, err
		}
		if balance.LessThan(amount) {
			return nil, errors.Wrapf(errs.ErrInsufficientBalance, "balance %s %s is below %s", balance, currency, amount)
		}
		if pending, err := w.client.PendingNonceAt(ctx, common.HexToAddress(from)); err == nil {
			nonce = pending
		}
	}

	hash, err := simulatedHash()
	if err != nil {
		return nil, errors.Wrap(err, "generate transaction hash")
	}

	sent := &model.SentTransaction{
		Hash:     hash,
		From:     common.HexToAddress(from).Hex(),
		To:       common.HexToAddress(to).Hex(),
		Amount:   amount.String(),
		Currency: currency,
		GasUsed:  simulatedGasUsed,
		GasPrice: simulatedGasPrice,
		ChainID:  w.chainID,
		Nonce:    nonce,
	}

	w.logger.Info("[WalletRPC][SendTransaction] simulated transfer created", map[string]string{
		"hash":     sent.Hash,
		"currency": currency,
		"amount":   sent.Amount,
		"nonce":    strconv.FormatUint(nonce, 10),
	})
	return sent, nil
}

func (w *WalletRPC) record(operation string, err error, start time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	w.metrics.RecordWalletOperation(operation, status, time.Since(start).Seconds())
}

func simulatedHash() (string, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return "", err
	}
	return crypto.Keccak256Hash(seed).Hex(), nil
}
