package currency

import "math"

// BaseCurrency is the currency all stored amounts are denominated in.
const BaseCurrency = "USD"

// RateTable maps ISO currency codes to multipliers relative to USD.
// USD always maps to 1.
type RateTable map[string]float64

// Fallback is the table used when no rates could be fetched: prices stay
// in USD.
func Fallback() RateTable {
	return RateTable{BaseCurrency: 1}
}

// Multiplier returns the conversion multiplier for a currency. A missing,
// zero, or garbage rate degrades to 1 so conversion becomes the identity.
func (t RateTable) Multiplier(code string) float64 {
	rate, ok := t[code]
	if !ok || rate == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 1
	}
	return rate
}

// Convert converts a USD amount to the target currency. It never returns
// NaN: a garbage amount is treated as 0 and a missing rate as multiplier 1.
// Rounding is left to the display layer so repeated conversions do not
// compound rounding error.
func Convert(amount float64, rates RateTable, target string) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	if rates == nil {
		return amount
	}
	return amount * rates.Multiplier(target)
}
