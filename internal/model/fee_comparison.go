package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TraditionalBankCost struct {
	Swift              decimal.Decimal `json:"swift"`
	CurrencyConversion decimal.Decimal `json:"currencyConversion"`
	Processing         decimal.Decimal `json:"processing"`
	TotalCost          decimal.Decimal `json:"totalCost"`
}

type PlatformCost struct {
	PlatformFee decimal.Decimal `json:"platformFee"`
	NetworkFee  decimal.Decimal `json:"networkFee"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

type FeeComparisonReport struct {
	TransferAmount    decimal.Decimal     `json:"transferAmount"`
	TraditionalBank   TraditionalBankCost `json:"traditionalBank"`
	Platform          PlatformCost        `json:"platform"`
	Savings           decimal.Decimal     `json:"savings"`
	SavingsPercentage decimal.Decimal     `json:"savingsPercentage"`
	Timestamp         time.Time           `json:"timestamp"`
}
