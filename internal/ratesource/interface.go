package ratesource

import (
	"context"
	"time"

	"github.com/dwarvesf/swiftchain-backend/internal/model"
)

type CacheStatistics struct {
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	LastRefresh time.Time `json:"last_refresh"`
	LastMode    string    `json:"last_mode"`
}

type IRateSource interface {
	// GetRate returns the spot price of asset and whether it came from the fallback table.
	// Only an asset outside the supported set is an error.
	GetRate(ctx context.Context, asset string) (*model.AssetRate, bool, error)

	// GetRates returns every supported asset. It never fails, degrading to fallback rates instead.
	GetRates(ctx context.Context) *model.RateSnapshot

	// Refresh fetches live rates into the cache, used by the scheduled job
	Refresh(ctx context.Context) error

	GetCacheStatistics() *CacheStatistics
}
