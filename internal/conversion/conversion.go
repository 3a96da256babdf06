package conversion

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

var minimumAmount = decimal.RequireFromString("0.01")

type calculator struct {
	rates   ratesource.IRateSource
	fees    config.FeeConfig
	logger  *logger.Logger
	metrics *monitoring.BusinessMetricsRecorder
	now     func() time.Time
}

func New(rates ratesource.IRateSource, fees config.FeeConfig, logger *logger.Logger, metrics *monitoring.BusinessMetricsRecorder) ICalculator {
	return &calculator{
		rates:   rates,
		fees:    fees,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

func (c *calculator) Convert(ctx context.Context, fiatAmount decimal.Decimal, target string) (*model.ConversionQuote, error) {
	start := time.Now()
	currency := consts.NormalizeCurrency(target)

	quote, err := c.convert(ctx, fiatAmount, currency)
	status := "success"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordConversion(currency, status, time.Since(start).Seconds())

	return quote, err
}

func (c *calculator) convert(ctx context.Context, fiatAmount decimal.Decimal, currency string) (*model.ConversionQuote, error) {
	if fiatAmount.LessThan(minimumAmount) {
		return nil, errors.Wrapf(errs.ErrInvalidAmount, "amount must be at least %s %s", minimumAmount, consts.FiatCurrencyINR)
	}

	asset, ok := consts.AssetForCurrency(currency)
	if !ok {
		return nil, errors.Wrapf(errs.ErrUnsupportedCurrency, "currency %q", currency)
	}

	networkFee, ok := c.fees.NetworkFeeFixed[currency]
	if !ok {
		return nil, errors.Wrapf(errs.ErrUnsupportedCurrency, "no network fee configured for %q", currency)
	}

	rate, isFallback, err := c.rates.GetRate(ctx, asset)
	if err != nil {
		c.logger.Error("[Conversion][GetRate]", map[string]string{
			"error": err.Error(),
			"asset": asset,
		})
		return nil, err
	}

	exchangeRate := rate.INR
	converted := fiatAmount.DivRound(exchangeRate, consts.CryptoDecimals)
	platformFee := fiatAmount.Mul(c.fees.PlatformFeeRate).Round(consts.FiatDecimals)
	networkFee = networkFee.Round(consts.CryptoDecimals)
	networkFeeFiat := networkFee.Mul(exchangeRate).Round(consts.FiatDecimals)
	totalFee := platformFee.Add(networkFeeFiat)

	quote := &model.ConversionQuote{
		OriginalAmount:    fiatAmount,
		OriginalCurrency:  consts.FiatCurrencyINR,
		ConvertedAmount:   converted,
		ConvertedCurrency: currency,
		ExchangeRate:      exchangeRate,
		Fees: model.ConversionFees{
			PlatformFee:    platformFee,
			NetworkFee:     networkFee,
			NetworkFeeFiat: networkFeeFiat,
			TotalFee:       totalFee,
		},
		NetAmount:      fiatAmount.Sub(totalFee),
		IsFallbackRate: isFallback,
		Timestamp:      c.now(),
	}
	if isFallback {
		quote.Note = consts.FallbackRateNote
	}

	return quote, nil
}
