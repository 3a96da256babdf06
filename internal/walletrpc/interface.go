package walletrpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type IWalletRPC interface {
	// GetBalance returns the balance of address in currency (ETH or USDT) in whole units
	GetBalance(ctx context.Context, address, currency string) (decimal.Decimal, error)

	// SendTransaction creates a simulated transfer. The funds never move.
	SendTransaction(ctx context.Context, from, to string, amount decimal.Decimal, currency string) (*model.SentTransaction, error)

	// Connected reports whether a chain endpoint is configured
	Connected() bool
}

// ChainClient is the subset of ethclient.Client the connector needs.
type ChainClient interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
}
