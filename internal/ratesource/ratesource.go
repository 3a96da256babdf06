package ratesource

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/monitoring"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource/coingecko"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const (
	liveRatesCacheKey = "rates:live"

	modeLive     = "live"
	modeCached   = "cached"
	modeFallback = "fallback"

	quoteINR = "inr"
	quoteUSD = "usd"
)

var errAssetMissing = errors.New("asset missing from price payload")

type RateSource struct {
	feed     coingecko.IPriceFeed
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   *logger.Logger
	metrics  *monitoring.BusinessMetricsRecorder

	hits   int64
	misses int64

	mu          sync.RWMutex
	lastRefresh time.Time
	lastMode    string
}

// New builds a rate source over feed. A cacheTTL of zero or less disables caching,
// so every call goes to the feed. metrics may be nil.
func New(feed coingecko.IPriceFeed, cacheTTL time.Duration, logger *logger.Logger, metrics *monitoring.BusinessMetricsRecorder) IRateSource {
	if cacheTTL < 0 {
		cacheTTL = 0
	}
	return &RateSource{
		feed:     feed,
		cache:    cache.New(cacheTTL, 2*cacheTTL),
		cacheTTL: cacheTTL,
		logger:   logger,
		metrics:  metrics,
	}
}

func (r *RateSource) GetRate(ctx context.Context, asset string) (*model.AssetRate, bool, error) {
	if !consts.IsSupportedAsset(asset) {
		return nil, false, errors.Wrapf(errs.ErrUnsupportedCurrency, "asset %q", asset)
	}

	snapshot := r.GetRates(ctx)
	rate := snapshot.Rates[asset]
	return &rate, snapshot.IsFallback, nil
}

func (r *RateSource) GetRates(ctx context.Context) *model.RateSnapshot {
	if cached, ok := r.cache.Get(liveRatesCacheKey); ok {
		atomic.AddInt64(&r.hits, 1)
		r.metrics.RecordCacheOperation("rates", "hit")
		r.metrics.RecordRateSource(modeCached, "")
		r.setMode(modeCached)
		return cached.(*model.RateSnapshot).Clone()
	}
	atomic.AddInt64(&r.misses, 1)
	r.metrics.RecordCacheOperation("rates", "miss")

	snapshot, err := r.tryLive(ctx)
	if err != nil {
		return r.fallback(err)
	}

	r.metrics.RecordRateSource(modeLive, "")
	return snapshot.Clone()
}

func (r *RateSource) Refresh(ctx context.Context) error {
	if _, err := r.tryLive(ctx); err != nil {
		r.logger.Warn("[RateSource][Refresh] live rates unavailable", map[string]string{
			"error":       err.Error(),
			"recoverable": fmt.Sprintf("%t", isRecoverable(err)),
		})
		return err
	}
	return nil
}

func (r *RateSource) GetCacheStatistics() *CacheStatistics {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &CacheStatistics{
		Hits:        atomic.LoadInt64(&r.hits),
		Misses:      atomic.LoadInt64(&r.misses),
		LastRefresh: r.lastRefresh,
		LastMode:    r.lastMode,
	}
}

// tryLive fetches every supported asset and caches the result on success.
func (r *RateSource) tryLive(ctx context.Context) (*model.RateSnapshot, error) {
	prices, err := r.feed.SimplePrice(ctx, consts.SupportedAssets, []string{quoteINR, quoteUSD})
	if err != nil {
		return nil, err
	}

	rates := make(map[string]model.AssetRate, len(consts.SupportedAssets))
	for _, asset := range consts.SupportedAssets {
		quote, ok := prices[asset]
		if !ok {
			return nil, errors.Wrapf(errAssetMissing, "asset %q", asset)
		}
		inr, okINR := quote[quoteINR]
		usd, okUSD := quote[quoteUSD]
		if !okINR || !okUSD || !inr.IsPositive() || !usd.IsPositive() {
			return nil, errors.Wrapf(errAssetMissing, "asset %q has no usable price", asset)
		}
		rates[asset] = model.AssetRate{INR: inr, USD: usd}
	}

	now := time.Now()
	snapshot := &model.RateSnapshot{
		Rates:     rates,
		Timestamp: now,
	}
	if r.cacheTTL > 0 {
		r.cache.Set(liveRatesCacheKey, snapshot, r.cacheTTL)
	}

	r.mu.Lock()
	r.lastRefresh = now
	r.lastMode = modeLive
	r.mu.Unlock()

	return snapshot, nil
}

func (r *RateSource) fallback(err error) *model.RateSnapshot {
	reason := string(monitoring.ClassifyError(err))
	if isRecoverable(err) {
		r.logger.Warn("[RateSource][GetRates] serving fallback rates", map[string]string{
			"error":  err.Error(),
			"reason": reason,
		})
	} else {
		reason = "non_recoverable"
		r.logger.Error("[RateSource][GetRates] unusable price payload, serving fallback rates", map[string]string{
			"error": err.Error(),
		})
	}

	r.metrics.RecordRateSource(modeFallback, reason)
	r.setMode(modeFallback)
	return fallbackSnapshot(time.Now())
}

func (r *RateSource) setMode(mode string) {
	r.mu.Lock()
	r.lastMode = mode
	r.mu.Unlock()
}

// isRecoverable reports whether err means the upstream could not be reached or refused service.
func isRecoverable(err error) bool {
	if err == nil {
		return false
	}
	return monitoring.ClassifyError(err).IsTransport()
}
