package feecompare

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
)

var hundred = decimal.NewFromInt(100)

type comparator struct {
	fees    config.FeeConfig
	metrics *monitoring.BusinessMetricsRecorder
	now     func() time.Time
}

func New(fees config.FeeConfig, metrics *monitoring.BusinessMetricsRecorder) IComparator {
	return &comparator{
		fees:    fees,
		metrics: metrics,
		now:     time.Now,
	}
}

// Compare prices a transfer through a bank wire and through the platform.
// The platform network fee is the USDT fee valued at the reference rate, independent of live rates.
func (c *comparator) Compare(amount decimal.Decimal) (*model.FeeComparisonReport, error) {
	start := time.Now()
	if amount.IsNegative() {
		c.metrics.RecordFeeComparison("error", time.Since(start).Seconds())
		return nil, errors.Wrapf(errs.ErrInvalidAmount, "amount %s is negative", amount)
	}

	swift := amount.Mul(c.fees.BankSwiftRate).Round(consts.FiatDecimals)
	spread := amount.Mul(c.fees.BankSpreadRate).Round(consts.FiatDecimals)
	processing := c.fees.BankFlatFee.Round(consts.FiatDecimals)
	traditionalTotal := swift.Add(spread).Add(processing)

	platformFee := amount.Mul(c.fees.PlatformFeeRate).Round(consts.FiatDecimals)
	networkFee := c.fees.NetworkFeeFixed[consts.CurrencyUSDT].Mul(c.fees.ReferenceRate).Round(consts.FiatDecimals)
	platformTotal := platformFee.Add(networkFee)

	savings := traditionalTotal.Sub(platformTotal)
	percentage := decimal.Zero
	if !traditionalTotal.IsZero() {
		percentage = savings.Div(traditionalTotal).Mul(hundred).Round(consts.PercentDecimals)
	}

	report := &model.FeeComparisonReport{
		TransferAmount: amount,
		TraditionalBank: model.TraditionalBankCost{
			Swift:              swift,
			CurrencyConversion: spread,
			Processing:         processing,
			TotalCost:          traditionalTotal,
		},
		Platform: model.PlatformCost{
			PlatformFee: platformFee,
			NetworkFee:  networkFee,
			TotalCost:   platformTotal,
		},
		Savings:           savings,
		SavingsPercentage: percentage,
		Timestamp:         c.now(),
	}

	c.metrics.RecordFeeComparison("success", time.Since(start).Seconds())
	return report, nil
}
