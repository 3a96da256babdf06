package view

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

// Money values leave the API as fixed point strings: 2 places for fiat, 6 for crypto.

type ConversionFees struct {
	PlatformFee    string `json:"platformFee"`
	NetworkFee     string `json:"networkFee"`
	NetworkFeeFiat string `json:"networkFeeFiat"`
	TotalFee       string `json:"totalFee"`
}

type ConversionQuote struct {
	OriginalAmount    string         `json:"originalAmount"`
	OriginalCurrency  string         `json:"originalCurrency"`
	ConvertedAmount   string         `json:"convertedAmount"`
	ConvertedCurrency string         `json:"convertedCurrency"`
	ExchangeRate      string         `json:"exchangeRate"`
	Fees              ConversionFees `json:"fees"`
	NetAmount         string         `json:"netAmount"`
	IsFallbackRate    bool           `json:"isFallbackRate"`
	Note              string         `json:"note,omitempty"`
	Timestamp         time.Time      `json:"timestamp"`
}

func ToConversionQuote(q *model.ConversionQuote) ConversionQuote {
	return ConversionQuote{
		OriginalAmount:    fiat(q.OriginalAmount),
		OriginalCurrency:  q.OriginalCurrency,
		ConvertedAmount:   crypto(q.ConvertedAmount),
		ConvertedCurrency: q.ConvertedCurrency,
		ExchangeRate:      q.ExchangeRate.String(),
		Fees: ConversionFees{
			PlatformFee:    fiat(q.Fees.PlatformFee),
			NetworkFee:     crypto(q.Fees.NetworkFee),
			NetworkFeeFiat: fiat(q.Fees.NetworkFeeFiat),
			TotalFee:       fiat(q.Fees.TotalFee),
		},
		NetAmount:      fiat(q.NetAmount),
		IsFallbackRate: q.IsFallbackRate,
		Note:           q.Note,
		Timestamp:      q.Timestamp,
	}
}

type TraditionalBankCost struct {
	Swift              string `json:"swift"`
	CurrencyConversion string `json:"currencyConversion"`
	Processing         string `json:"processing"`
	TotalCost          string `json:"totalCost"`
}

type PlatformCost struct {
	PlatformFee string `json:"platformFee"`
	NetworkFee  string `json:"networkFee"`
	TotalCost   string `json:"totalCost"`
}

type FeeComparison struct {
	TransferAmount    string              `json:"transferAmount"`
	TraditionalBank   TraditionalBankCost `json:"traditionalBank"`
	Platform          PlatformCost        `json:"swiftChain"`
	Savings           string              `json:"savings"`
	SavingsPercentage string              `json:"savingsPercentage"`
	Timestamp         time.Time           `json:"timestamp"`
}

func ToFeeComparison(r *model.FeeComparisonReport) FeeComparison {
	return FeeComparison{
		TransferAmount: fiat(r.TransferAmount),
		TraditionalBank: TraditionalBankCost{
			Swift:              fiat(r.TraditionalBank.Swift),
			CurrencyConversion: fiat(r.TraditionalBank.CurrencyConversion),
			Processing:         fiat(r.TraditionalBank.Processing),
			TotalCost:          fiat(r.TraditionalBank.TotalCost),
		},
		Platform: PlatformCost{
			PlatformFee: fiat(r.Platform.PlatformFee),
			NetworkFee:  fiat(r.Platform.NetworkFee),
			TotalCost:   fiat(r.Platform.TotalCost),
		},
		Savings:           fiat(r.Savings),
		SavingsPercentage: r.SavingsPercentage.StringFixed(consts.PercentDecimals),
		Timestamp:         r.Timestamp,
	}
}

type AssetRate struct {
	INR string `json:"inr"`
	USD string `json:"usd"`
}

type Rates struct {
	Rates      map[string]AssetRate `json:"rates"`
	IsFallback bool                 `json:"isFallback"`
	Note       string               `json:"note,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

func ToRates(s *model.RateSnapshot) Rates {
	rates := make(map[string]AssetRate, len(s.Rates))
	for asset, rate := range s.Rates {
		rates[asset] = AssetRate{INR: rate.INR.String(), USD: rate.USD.String()}
	}
	return Rates{
		Rates:      rates,
		IsFallback: s.IsFallback,
		Note:       s.Note,
		Timestamp:  s.Timestamp,
	}
}

type ExchangeRate struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	Rate       string    `json:"rate"`
	IsFallback bool      `json:"isFallback"`
	Note       string    `json:"note,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToExchangeRate keeps eight decimals so that fiat to crypto rates stay readable.
func ToExchangeRate(r *model.ExchangeRate) ExchangeRate {
	return ExchangeRate{
		From:       r.From,
		To:         r.To,
		Rate:       r.Rate.Round(8).String(),
		IsFallback: r.IsFallback,
		Note:       r.Note,
		Timestamp:  r.Timestamp,
	}
}

type Withdrawal struct {
	ID            string            `json:"id"`
	Amount        string            `json:"amount"`
	Currency      string            `json:"currency"`
	BankDetails   model.BankDetails `json:"bankDetails"`
	Status        string            `json:"status"`
	Fee           string            `json:"fee"`
	EstimatedTime string            `json:"estimatedTime"`
	Timestamp     time.Time         `json:"timestamp"`
	CompletedAt   *time.Time        `json:"completedAt,omitempty"`
}

func ToWithdrawal(w *model.WithdrawalRequest) Withdrawal {
	return Withdrawal{
		ID:            w.ID,
		Amount:        fiat(w.Amount),
		Currency:      w.Currency,
		BankDetails:   w.BankDetails,
		Status:        string(w.Status),
		Fee:           fiat(w.Fee),
		EstimatedTime: w.EstimatedTime,
		Timestamp:     w.Timestamp,
		CompletedAt:   w.CompletedAt,
	}
}

type WalletBalance struct {
	Address  string `json:"address"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

func ToWalletBalance(address, currency string, balance decimal.Decimal) WalletBalance {
	return WalletBalance{
		Address:  address,
		Currency: currency,
		Balance:  crypto(balance),
	}
}

func fiat(d decimal.Decimal) string {
	return d.StringFixed(consts.FiatDecimals)
}

func crypto(d decimal.Decimal) string {
	return d.StringFixed(consts.CryptoDecimals)
}
