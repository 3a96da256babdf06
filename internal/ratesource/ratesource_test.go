package ratesource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwarvesf/swiftchain-backend/internal/consts"
	"github.com/dwarvesf/swiftchain-backend/internal/errs"
	"github.com/dwarvesf/swiftchain-backend/internal/model"
	"github.com/dwarvesf/swiftchain-backend/internal/ratesource/coingecko"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

const livePayload = `{
	"tether":{"inr":83.5,"usd":1},
	"ethereum":{"inr":152000,"usd":1830},
	"bitcoin":{"inr":2600000,"usd":31000}
}`

func newPriceServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newTestSource(baseURL string) IRateSource {
	feed := coingecko.New(baseURL, 200*time.Millisecond, logger.NewNop())
	return New(feed, time.Minute, logger.NewNop(), nil)
}

func TestGetRate_Live(t *testing.T) {
	server, _ := newPriceServer(t, http.StatusOK, livePayload)
	source := newTestSource(server.URL)

	rate, isFallback, err := source.GetRate(context.Background(), consts.AssetTether)

	require.NoError(t, err)
	assert.False(t, isFallback)
	assert.True(t, rate.INR.Equal(decimal.RequireFromString("83.5")))
	assert.True(t, rate.USD.Equal(decimal.NewFromInt(1)))
}

func TestGetRate_UnsupportedAsset(t *testing.T) {
	server, calls := newPriceServer(t, http.StatusOK, livePayload)
	source := newTestSource(server.URL)

	rate, _, err := source.GetRate(context.Background(), "ripple")

	assert.Nil(t, rate)
	assert.True(t, errors.Is(err, errs.ErrUnsupportedCurrency))
	assert.Zero(t, atomic.LoadInt32(calls))
}

func TestGetRates_ZeroTTLDisablesCache(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		server, calls := newPriceServer(t, http.StatusOK, livePayload)
		feed := coingecko.New(server.URL, 200*time.Millisecond, logger.NewNop())
		source := New(feed, ttl, logger.NewNop(), nil)

		source.GetRates(context.Background())
		source.GetRates(context.Background())

		assert.Equal(t, int32(2), atomic.LoadInt32(calls), "ttl %s", ttl)
		assert.Zero(t, source.GetCacheStatistics().Hits)
	}
}

func TestGetRates_CachesLiveResult(t *testing.T) {
	server, calls := newPriceServer(t, http.StatusOK, livePayload)
	source := newTestSource(server.URL)

	first := source.GetRates(context.Background())
	second := source.GetRates(context.Background())

	assert.False(t, first.IsFallback)
	assert.False(t, second.IsFallback)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	stats := source.GetCacheStatistics()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, modeCached, stats.LastMode)
}

func TestGetRates_CachedSnapshotIsDetached(t *testing.T) {
	server, _ := newPriceServer(t, http.StatusOK, livePayload)
	source := newTestSource(server.URL)

	first := source.GetRates(context.Background())
	delete(first.Rates, consts.AssetTether)

	second := source.GetRates(context.Background())
	assert.Contains(t, second.Rates, consts.AssetTether)
}

func TestGetRates_FallbackOnUpstreamErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":"slow down"}`},
		{"forbidden", http.StatusForbidden, ``},
		{"server error", http.StatusBadGateway, ``},
		{"malformed payload", http.StatusOK, `{"tether":`},
		{"asset missing", http.StatusOK, `{"tether":{"inr":83,"usd":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newPriceServer(t, tt.status, tt.body)
			source := newTestSource(server.URL)

			snapshot := source.GetRates(context.Background())

			require.True(t, snapshot.IsFallback)
			assert.Equal(t, consts.FallbackRateNote, snapshot.Note)
			assert.True(t, snapshot.Rates[consts.AssetTether].INR.Equal(decimal.NewFromInt(83)))
			assert.True(t, snapshot.Rates[consts.AssetEthereum].INR.Equal(decimal.NewFromInt(150000)))
			assert.True(t, snapshot.Rates[consts.AssetBitcoin].USD.Equal(decimal.NewFromInt(30000)))
		})
	}
}

func TestGetRate_FallbackOnTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()
	source := newTestSource(server.URL)

	rate, isFallback, err := source.GetRate(context.Background(), consts.AssetEthereum)

	require.NoError(t, err)
	assert.True(t, isFallback)
	assert.True(t, rate.INR.Equal(decimal.NewFromInt(150000)))
	assert.True(t, rate.USD.Equal(decimal.NewFromInt(1800)))
}

func TestGetRate_FallbackOnUnreachableHost(t *testing.T) {
	server, _ := newPriceServer(t, http.StatusOK, livePayload)
	url := server.URL
	server.Close()
	source := newTestSource(url)

	_, isFallback, err := source.GetRate(context.Background(), consts.AssetTether)

	require.NoError(t, err)
	assert.True(t, isFallback)
}

func TestRefresh(t *testing.T) {
	server, calls := newPriceServer(t, http.StatusOK, livePayload)
	source := newTestSource(server.URL)

	require.NoError(t, source.Refresh(context.Background()))
	snapshot := source.GetRates(context.Background())

	assert.False(t, snapshot.IsFallback)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.False(t, source.GetCacheStatistics().LastRefresh.IsZero())
}

func TestRefresh_ReturnsUpstreamError(t *testing.T) {
	server, _ := newPriceServer(t, http.StatusServiceUnavailable, ``)
	source := newTestSource(server.URL)

	err := source.Refresh(context.Background())

	var statusErr *coingecko.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestIsRecoverable(t *testing.T) {
	assert.False(t, isRecoverable(nil))
	assert.True(t, isRecoverable(context.DeadlineExceeded))
	assert.True(t, isRecoverable(&coingecko.StatusError{StatusCode: 429}))
	assert.True(t, isRecoverable(&coingecko.StatusError{StatusCode: 500}))
	assert.False(t, isRecoverable(&coingecko.StatusError{StatusCode: 404}))
	assert.False(t, isRecoverable(errors.Wrap(errAssetMissing, "asset \"bitcoin\"")))
}

func TestFallbackSnapshot(t *testing.T) {
	snapshot := fallbackSnapshot(time.Now())

	require.Len(t, snapshot.Rates, len(consts.SupportedAssets))
	assert.True(t, snapshot.Rates[consts.AssetBitcoin].INR.Equal(decimal.NewFromInt(2500000)))
	assert.True(t, snapshot.IsFallback)

	snapshot.Rates[consts.AssetBitcoin] = model.AssetRate{}
	assert.True(t, fallbackSnapshot(time.Now()).Rates[consts.AssetBitcoin].INR.Equal(decimal.NewFromInt(2500000)),
		"fallback table must not be shared with callers")
}

func TestPairRate(t *testing.T) {
	snapshot := fallbackSnapshot(time.Now())

	tests := []struct {
		name     string
		from, to string
		want     string
		wantErr  error
	}{
		{name: "crypto to INR", from: "eth", to: "INR", want: "150000"},
		{name: "crypto to USD", from: "BTC", to: "usd", want: "30000"},
		{name: "crypto to crypto", from: "ETH", to: "USDT", want: "1807.2289156626506024"},
		{name: "USD to INR through tether", from: "USD", to: "INR", want: "83"},
		{name: "USD to crypto", from: "usd", to: "ETH", want: "0.0005555555555556"},
		{name: "same currency", from: "USDT", to: "USDT", want: "1"},
		{name: "unknown source", from: "DOGE", to: "INR", wantErr: errs.ErrUnsupportedCurrency},
		{name: "unknown target", from: "INR", to: "EUR", wantErr: errs.ErrUnsupportedCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := PairRate(snapshot, tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, rate.Rate.Equal(decimal.RequireFromString(tt.want)), "got %s", rate.Rate)
			assert.True(t, rate.IsFallback)
			assert.Equal(t, consts.FallbackRateNote, rate.Note)
		})
	}
}

func TestPairRate_MissingPrice(t *testing.T) {
	snapshot := fallbackSnapshot(time.Now())
	delete(snapshot.Rates, consts.AssetBitcoin)

	_, err := PairRate(snapshot, "INR", "BTC")
	assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}
