package feecompare

import (
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

// DefaultAmount is used when a caller does not name a transfer amount.
var DefaultAmount = decimal.NewFromInt(10000)

type IComparator interface {
	Compare(amount decimal.Decimal) (*model.FeeComparisonReport, error)
}
