package simulate

import (
	"github.com/hsuehlin/etfcalc/internal/contracts"
)

// Reinvest extends the joined timeline with whole-share reinvestment of each
// dividend payout at the paying date's mean price. A dividend-only date has
// no price bar (DailyMean == 0) and reinvests nothing; combined cumulative
// fields are running sums over the same unioned timeline.
func Reinvest(rows []contracts.DividendProfitRecord) []contracts.ReinvestmentRecord {
	records := make([]contracts.ReinvestmentRecord, 0, len(rows))

	var cumHoldings, cumCost int64
	for _, row := range rows {
		rec := contracts.ReinvestmentRecord{DividendProfitRecord: row}

		if row.DailyMean > 0 {
			rec.ReinvestHoldings = floorShares(row.DividendProfit, row.DailyMean)
			rec.ReinvestCost = roundTWD(rec.ReinvestHoldings, row.DailyMean)
		}

		rec.HoldingsWithReinvest = row.Holdings + rec.ReinvestHoldings
		rec.CostWithReinvest = row.Cost + rec.ReinvestCost

		cumHoldings += rec.HoldingsWithReinvest
		cumCost += rec.CostWithReinvest
		rec.CumulativeHoldingsWithReinvest = cumHoldings
		rec.CumulativeCostWithReinvest = cumCost

		rec.UnrealizedValueWithReinvest = roundTWD(cumHoldings, row.DailyMean)

		if cumCost > 0 {
			rec.ProfitRatioWithReinvest = contracts.DefinedRatio(
				float64(rec.UnrealizedValueWithReinvest) / float64(cumCost) * 100)
		} else {
			rec.ProfitRatioWithReinvest = contracts.UndefinedRatio()
		}

		records = append(records, rec)
	}

	return records
}
