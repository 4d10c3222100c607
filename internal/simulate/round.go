package simulate

import "github.com/shopspring/decimal"

// All rounded quantities use banker's rounding (round half to even), the
// documented rule for this pipeline. Arithmetic goes through decimal so a
// float artifact like 49.999999999 never changes a floor or a rounding at
// currency-unit precision.

// roundTWD rounds shares*price to a whole currency unit
func roundTWD(shares int64, price float64) int64 {
	return decimal.NewFromInt(shares).
		Mul(decimal.NewFromFloat(price)).
		RoundBank(0).
		IntPart()
}

// floorShares is floor(amount/price), the whole shares an amount can buy.
// Returns 0 for a non-positive price.
func floorShares(amount int64, price float64) int64 {
	if price <= 0 {
		return 0
	}
	return decimal.NewFromInt(amount).
		Div(decimal.NewFromFloat(price)).
		Floor().
		IntPart()
}

// meanPrice is (open+close)/2 rounded to one decimal
func meanPrice(open, close float64) float64 {
	mean, _ := decimal.NewFromFloat(open).
		Add(decimal.NewFromFloat(close)).
		Div(decimal.NewFromInt(2)).
		RoundBank(1).
		Float64()
	return mean
}
