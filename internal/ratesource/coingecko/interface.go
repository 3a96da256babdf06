package coingecko

import (
	"context"

	"github.com/shopspring/decimal"
)

// Prices maps asset id to quote currency to price, e.g. prices["tether"]["inr"].
type Prices map[string]map[string]decimal.Decimal

type IPriceFeed interface {
	// SimplePrice returns spot prices for ids quoted in each of vsCurrencies.
	SimplePrice(ctx context.Context, ids []string, vsCurrencies []string) (Prices, error)
}
