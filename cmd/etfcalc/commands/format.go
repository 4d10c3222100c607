package commands

import (
	"fmt"

	"github.com/hsuehlin/etfcalc/internal/contracts"
	"github.com/hsuehlin/etfcalc/internal/pipeline"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 所有子命令共用同一種輸出格式
// ═══════════════════════════════════════════════════════════

// PrintRunHeader prints the parameters of a simulation run
func PrintRunHeader(req contracts.SimulationRequest) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  %s 定期定額試算\n", req.Ticker)
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  Period     : %s ~ %s\n", req.Start.Format("2006-01-02"), req.End.Format("2006-01-02"))
	fmt.Printf("  Days       : %v\n", req.NormalizedTriggerDays())
	fmt.Printf("  Amount     : %d TWD\n", req.Amount)
	fmt.Println("═══════════════════════════════════════════════════════════")
}

// PrintTradeTable prints each triggered purchase with running totals
func PrintTradeTable(trades []contracts.TradeRecord) {
	fmt.Println()
	fmt.Println("  買進明細")
	fmt.Println("───────────────────────────────────────────────────────────")
	fmt.Printf("  %-12s %8s %6s %10s %12s %8s\n", "Date", "Mean", "Buy", "Cost", "Value", "Ratio")

	for _, tr := range trades {
		ratio := "-"
		if tr.ProfitRatio.Valid {
			ratio = fmt.Sprintf("%.1f%%", tr.ProfitRatio.Value)
		}
		fmt.Printf("  %-12s %8.1f %6d %10d %12d %8s\n",
			tr.Date.Format("2006-01-02"), tr.DailyMean, tr.Holdings, tr.CumulativeCost, tr.UnrealizedValue, ratio)
	}
}

// PrintDividendTable prints only the rows where a dividend was paid
func PrintDividendTable(rows []contracts.ReinvestmentRecord) {
	paid := make([]contracts.ReinvestmentRecord, 0)
	for _, row := range rows {
		if row.PerShare > 0 {
			paid = append(paid, row)
		}
	}

	fmt.Println()
	fmt.Println("  配息明細")
	fmt.Println("───────────────────────────────────────────────────────────")
	if len(paid) == 0 {
		fmt.Println("  (期間內無配息)")
		return
	}

	fmt.Printf("  %-12s %10s %8s %10s %10s %8s\n", "Date", "PerShare", "Shares", "Payout", "CumPayout", "Reinvest")
	for _, row := range paid {
		fmt.Printf("  %-12s %10.3f %8d %10d %10d %8d\n",
			row.Date.Format("2006-01-02"), row.PerShare, row.CumulativeHoldings,
			row.DividendProfit, row.CumulativeDividendProfit, row.ReinvestHoldings)
	}
}

// PrintRunSummary prints the closing state of the run
func PrintRunSummary(result *pipeline.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")

	if len(result.Trades) == 0 {
		fmt.Println("  期間內沒有任何買進日")
		fmt.Println("═══════════════════════════════════════════════════════════")
		return
	}

	last := result.Trades[len(result.Trades)-1]
	fmt.Printf("  累積成本   : %d TWD\n", last.CumulativeCost)
	fmt.Printf("  累積股數   : %d\n", last.CumulativeHoldings)
	fmt.Printf("  未實現市值 : %d TWD\n", last.UnrealizedValue)
	if last.ProfitRatio.Valid {
		fmt.Printf("  報酬率     : %.1f%%\n", last.ProfitRatio.Value)
	}

	if n := len(result.Dividends); n > 0 {
		lastDiv := result.Dividends[n-1]
		fmt.Printf("  累積配息   : %d TWD\n", lastDiv.CumulativeDividendProfit)
		if lastDiv.ProfitRatioWithReinvest.Valid {
			fmt.Printf("  含息報酬率 : %.1f%%\n", lastDiv.ProfitRatioWithReinvest.Value)
		}
	}

	fmt.Printf("\n✅ Completed in %.2fs\n", result.Duration.Seconds())
	fmt.Println("═══════════════════════════════════════════════════════════")
}
