package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetRate is the spot price of one unit of an asset.
type AssetRate struct {
	INR decimal.Decimal `json:"inr"`
	USD decimal.Decimal `json:"usd"`
}

type RateSnapshot struct {
	Rates      map[string]AssetRate `json:"rates"`
	IsFallback bool                 `json:"isFallback"`
	Note       string               `json:"note,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

// Clone copies the rates map so cached snapshots are never shared.
func (s *RateSnapshot) Clone() *RateSnapshot {
	if s == nil {
		return nil
	}
	c := *s
	c.Rates = make(map[string]AssetRate, len(s.Rates))
	for asset, rate := range s.Rates {
		c.Rates[asset] = rate
	}
	return &c
}

// ExchangeRate is the price of one unit of From expressed in To.
type ExchangeRate struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Rate       decimal.Decimal `json:"rate"`
	IsFallback bool            `json:"isFallback"`
	Note       string          `json:"note,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}
