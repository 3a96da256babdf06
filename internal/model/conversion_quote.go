package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConversionFees struct {
	PlatformFee decimal.Decimal `json:"platformFee"`
	// NetworkFee is denominated in the converted crypto currency.
	NetworkFee     decimal.Decimal `json:"networkFee"`
	NetworkFeeFiat decimal.Decimal `json:"networkFeeFiat"`
	TotalFee       decimal.Decimal `json:"totalFee"`
}

// ConversionQuote is produced per request and never mutated afterwards.
type ConversionQuote struct {
	OriginalAmount    decimal.Decimal `json:"originalAmount"`
	OriginalCurrency  string          `json:"originalCurrency"`
	ConvertedAmount   decimal.Decimal `json:"convertedAmount"`
	ConvertedCurrency string          `json:"convertedCurrency"`
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`
	Fees              ConversionFees  `json:"fees"`
	NetAmount         decimal.Decimal `json:"netAmount"`
	IsFallbackRate    bool            `json:"isFallbackRate"`
	Note              string          `json:"note,omitempty"`
	Timestamp         time.Time       `json:"timestamp"`
}
