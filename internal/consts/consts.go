package consts

import "strings"

const (
	FiatCurrencyINR = "INR"

	CurrencyUSDT = "USDT"
	CurrencyETH  = "ETH"
	CurrencyBTC  = "BTC"
	CurrencyUSD  = "USD"

	AssetTether   = "tether"
	AssetEthereum = "ethereum"
	AssetBitcoin  = "bitcoin"

	FiatDecimals    = 2
	CryptoDecimals  = 6
	PercentDecimals = 1

	// MaxConfirmations caps the confirmation threshold of tracked transactions
	MaxConfirmations = 12

	ETHDecimals  = 18
	USDTDecimals = 6

	WithdrawalEstimatedTime = "2-3 business days"
	FallbackRateNote        = "Using fallback rates due to API connectivity issues"
)

// SupportedAssets lists every asset the rate source quotes, in response order.
var SupportedAssets = []string{AssetTether, AssetBitcoin, AssetEthereum}

var currencyToAsset = map[string]string{
	CurrencyUSDT: AssetTether,
	CurrencyETH:  AssetEthereum,
}

// quotedCurrencies can be priced but not all of them can be transferred.
var quotedCurrencies = map[string]string{
	CurrencyUSDT: AssetTether,
	CurrencyETH:  AssetEthereum,
	CurrencyBTC:  AssetBitcoin,
}

// QuotedAsset resolves any priced crypto code, BTC included, to its price feed asset id.
func QuotedAsset(currency string) (string, bool) {
	asset, ok := quotedCurrencies[NormalizeCurrency(currency)]
	return asset, ok
}

// AssetForCurrency resolves a transfer currency code (USDT, ETH) to its price feed asset id.
func AssetForCurrency(currency string) (string, bool) {
	asset, ok := currencyToAsset[NormalizeCurrency(currency)]
	return asset, ok
}

func NormalizeCurrency(currency string) string {
	return strings.ToUpper(strings.TrimSpace(currency))
}

func IsSupportedAsset(asset string) bool {
	for _, a := range SupportedAssets {
		if a == asset {
			return true
		}
	}
	return false
}
