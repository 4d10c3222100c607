package simulate

import (
	"github.com/hsuehlin/etfcalc/internal/contracts"
)

// JoinDividends outer-joins the dividend events with the simulated trades on
// date: a sorted merge over both timelines where a date present on only one
// side gets explicit zeros for the other side's numeric fields. Cumulative
// holdings are then recomputed over the unioned timeline, so a dividend knows
// every share accrued before it, and the per-event payout is
// round(perShare * cumulativeHoldings) in whole TWD.
// Both inputs must be sorted ascending by date.
func JoinDividends(trades []contracts.TradeRecord, dividends []contracts.DividendEvent) []contracts.DividendProfitRecord {
	rows := make([]contracts.DividendProfitRecord, 0, len(trades)+len(dividends))

	// Merge-join on date, union of keys.
	i, j := 0, 0
	for i < len(trades) || j < len(dividends) {
		switch {
		case j >= len(dividends) || (i < len(trades) && trades[i].Date.Before(dividends[j].Date)):
			rows = append(rows, tradeRow(trades[i]))
			i++
		case i >= len(trades) || dividends[j].Date.Before(trades[i].Date):
			rows = append(rows, dividendRow(dividends[j]))
			j++
		default:
			// Same date: a triggered purchase on an ex-dividend day.
			row := tradeRow(trades[i])
			row.PerShare = dividends[j].PerShare
			rows = append(rows, row)
			i++
			j++
		}
	}

	// Cumulative pass over the unioned timeline.
	var cumHoldings, cumDividend int64
	for k := range rows {
		cumHoldings += rows[k].Holdings
		rows[k].CumulativeHoldings = cumHoldings

		// Zero accrued holdings on a dividend date is a zero payout, not
		// an error.
		rows[k].DividendProfit = roundTWD(cumHoldings, rows[k].PerShare)
		cumDividend += rows[k].DividendProfit
		rows[k].CumulativeDividendProfit = cumDividend
	}

	return rows
}

func tradeRow(t contracts.TradeRecord) contracts.DividendProfitRecord {
	return contracts.DividendProfitRecord{
		Date:      t.Date,
		DailyMean: t.DailyMean,
		Holdings:  t.Holdings,
		Cost:      t.Cost,
	}
}

func dividendRow(d contracts.DividendEvent) contracts.DividendProfitRecord {
	return contracts.DividendProfitRecord{
		Date:     d.Date,
		PerShare: d.PerShare,
	}
}
