package ratesource

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

var fallbackRates = map[string]model.AssetRate{
	consts.AssetTether:   {INR: decimal.NewFromInt(83), USD: decimal.NewFromInt(1)},
	consts.AssetEthereum: {INR: decimal.NewFromInt(150000), USD: decimal.NewFromInt(1800)},
	consts.AssetBitcoin:  {INR: decimal.NewFromInt(2500000), USD: decimal.NewFromInt(30000)},
}

func fallbackSnapshot(now time.Time) *model.RateSnapshot {
	rates := make(map[string]model.AssetRate, len(fallbackRates))
	for asset, rate := range fallbackRates {
		rates[asset] = rate
	}
	return &model.RateSnapshot{
		Rates:      rates,
		IsFallback: true,
		Note:       consts.FallbackRateNote,
		Timestamp:  now,
	}
}
