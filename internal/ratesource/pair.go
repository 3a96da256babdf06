package ratesource

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

// PairRate prices one unit of from in to. Crypto against USD uses the quoted USD price,
// every other pair goes through the INR leg of snapshot with USD valued through tether.
func PairRate(snapshot *model.RateSnapshot, from, to string) (*model.ExchangeRate, error) {
	from, to = consts.NormalizeCurrency(from), consts.NormalizeCurrency(to)

	fromValue, toValue, err := pairValues(snapshot, from, to)
	if err != nil {
		return nil, err
	}
	if !toValue.IsPositive() {
		return nil, errors.Wrapf(errs.ErrUpstreamUnavailable, "no price for %s", to)
	}

	return &model.ExchangeRate{
		From:       from,
		To:         to,
		Rate:       fromValue.Div(toValue),
		IsFallback: snapshot.IsFallback,
		Note:       snapshot.Note,
		Timestamp:  snapshot.Timestamp,
	}, nil
}

func pairValues(snapshot *model.RateSnapshot, from, to string) (decimal.Decimal, decimal.Decimal, error) {
	if to == consts.CurrencyUSD {
		if asset, ok := consts.QuotedAsset(from); ok {
			return snapshot.Rates[asset].USD, decimal.NewFromInt(1), nil
		}
	}
	if from == consts.CurrencyUSD {
		if asset, ok := consts.QuotedAsset(to); ok {
			return decimal.NewFromInt(1), snapshot.Rates[asset].USD, nil
		}
	}

	fromINR, err := inrValue(snapshot, from)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	toINR, err := inrValue(snapshot, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return fromINR, toINR, nil
}

func inrValue(snapshot *model.RateSnapshot, code string) (decimal.Decimal, error) {
	switch code {
	case consts.FiatCurrencyINR:
		return decimal.NewFromInt(1), nil
	case consts.CurrencyUSD:
		tether := snapshot.Rates[consts.AssetTether]
		if !tether.USD.IsPositive() {
			return decimal.Zero, errors.Wrap(errs.ErrUpstreamUnavailable, "no USD price for tether")
		}
		return tether.INR.Div(tether.USD), nil
	}

	asset, ok := consts.QuotedAsset(code)
	if !ok {
		return decimal.Zero, errors.Wrapf(errs.ErrUnsupportedCurrency, "currency %q", code)
	}
	return snapshot.Rates[asset].INR, nil
}
