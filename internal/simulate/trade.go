package simulate

import (
	"github.com/hsuehlin/etfcalc/internal/contracts"
)

// Trades simulates the fixed-amount purchase policy: on every bar whose
// day-of-month is in triggerDays, buy floor(amount/dailyMean) whole shares.
// Cost is the rounded shares*price product, not the raw amount, because the
// fractional remainder is never spent. Output keeps only triggered bars, in
// ascending date order, with prefix sums over that subsequence.
// ⭐ SSOT: 定期定額買進模擬只在這裡
func Trades(bars []contracts.ClassifiedBar, triggerDays map[int]bool, amount int64) []contracts.TradeRecord {
	records := make([]contracts.TradeRecord, 0)

	var cumCost, cumHoldings int64
	for _, bar := range bars {
		if !triggerDays[bar.Date.Day()] {
			continue
		}

		// A day priced above the budget buys zero shares; that is a valid
		// purchase and the cumulative fields carry forward unchanged.
		shares := floorShares(amount, bar.DailyMean)
		cost := roundTWD(shares, bar.DailyMean)

		cumCost += cost
		cumHoldings += shares

		rec := contracts.TradeRecord{
			Date:               bar.Date,
			DailyMean:          bar.DailyMean,
			Holdings:           shares,
			Cost:               cost,
			CumulativeCost:     cumCost,
			CumulativeHoldings: cumHoldings,
			UnrealizedValue:    roundTWD(cumHoldings, bar.DailyMean),
		}

		if cumCost > 0 {
			rec.ProfitRatio = contracts.DefinedRatio(float64(rec.UnrealizedValue) / float64(cumCost) * 100)
		} else {
			rec.ProfitRatio = contracts.UndefinedRatio()
		}

		records = append(records, rec)
	}

	return records
}
