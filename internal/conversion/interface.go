package conversion

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type ICalculator interface {
	// Convert quotes fiatAmount INR in target crypto (USDT or ETH), fees included.
	Convert(ctx context.Context, fiatAmount decimal.Decimal, target string) (*model.ConversionQuote, error)
}
