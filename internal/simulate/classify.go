package simulate

import (
	"github.com/hsuehlin/etfcalc/internal/contracts"
)

// Classify derives per-day candle features from OHLC bars: the red/green/flat
// flag (open vs close) and the daily mean price used as the simulated
// execution price. Input order and cardinality are preserved.
// ⭐ SSOT: K線特徵只在這裡計算
func Classify(bars []contracts.PriceBar) ([]contracts.ClassifiedBar, error) {
	classified := make([]contracts.ClassifiedBar, 0, len(bars))

	for _, bar := range bars {
		// A bar with a missing open or close must fail loudly instead of
		// propagating NaN through every downstream cumulative field.
		if bar.Open <= 0 || bar.Close <= 0 {
			return nil, contracts.ValidationErrorf("classify",
				"bar %s has invalid open/close (%.2f/%.2f)",
				bar.Date.Format("2006-01-02"), bar.Open, bar.Close)
		}

		cb := contracts.ClassifiedBar{PriceBar: bar}

		switch {
		case bar.Open > bar.Close:
			cb.IsRed = true
		case bar.Open < bar.Close:
			cb.IsGreen = true
		default:
			cb.IsFlat = true
		}

		cb.DailyMean = meanPrice(bar.Open, bar.Close)
		classified = append(classified, cb)
	}

	return classified, nil
}
