package payments

import "github.com/shopspring/decimal"

// cryptoPlaces is the fixed precision every crypto amount is truncated
// to, matching what USDT wallets display.
const cryptoPlaces = 6

var minorPerMajor = decimal.NewFromInt(100)

// ToCryptoAmount converts a fiat amount in minor units (kopecks) into
// the quote currency at the given rate (fiat major units per one unit
// of crypto). Rounding is half-away-from-zero at 6 decimal places.
func ToCryptoAmount(fiatMinor int64, rate decimal.Decimal) decimal.Decimal {
	major := decimal.NewFromInt(fiatMinor).Div(minorPerMajor)
	return major.Div(rate).Round(cryptoPlaces)
}
