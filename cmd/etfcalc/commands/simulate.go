package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hsuehlin/etfcalc/internal/contracts"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "執行一次定期定額試算",
	Long: `抓取配息與日 K 線後執行一次定期定額試算, 結果以表格輸出。

未指定的參數取自 defaults YAML (或內建預設值)。

Example:
  go run ./cmd/etfcalc simulate --ticker 0050 --days 6,16,26 --amount 10000
  go run ./cmd/etfcalc simulate --ticker 00878 --start 2021-01-01 --end 2023-12-31`,
	RunE: runSimulate,
}

var (
	simTicker string
	simStart  string
	simEnd    string
	simDays   []int
	simAmount int64
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&simTicker, "ticker", "", "ETF 代號 (例: 0050)")
	simulateCmd.Flags().StringVar(&simStart, "start", "", "開始日期 YYYY-MM-DD")
	simulateCmd.Flags().StringVar(&simEnd, "end", "", "結束日期 YYYY-MM-DD")
	simulateCmd.Flags().IntSliceVar(&simDays, "days", nil, "每月扣款日 (例: 6,16,26)")
	simulateCmd.Flags().Int64Var(&simAmount, "amount", 0, "每次扣款金額 (TWD)")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.close()

	req, err := buildRequest(a)
	if err != nil {
		return err
	}

	if !a.catalog.Has(req.Ticker) {
		return fmt.Errorf("unknown ETF code %q, run `etfcalc etf list`", req.Ticker)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := a.runner.Run(ctx, req)
	if err != nil {
		return err
	}

	PrintRunHeader(req)
	PrintTradeTable(result.Trades)
	PrintDividendTable(result.Dividends)
	PrintRunSummary(result)

	return nil
}

// buildRequest merges CLI flags over the configured defaults
func buildRequest(a *app) (contracts.SimulationRequest, error) {
	def := a.defaults.Defaults

	ticker := simTicker
	if ticker == "" {
		ticker = def.Ticker
	}

	days := simDays
	if len(days) == 0 {
		days = def.TriggerDays
	}

	amount := simAmount
	if amount == 0 {
		amount = def.Amount
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if simEnd != "" {
		parsed, err := time.Parse("2006-01-02", simEnd)
		if err != nil {
			return contracts.SimulationRequest{}, fmt.Errorf("--end must be YYYY-MM-DD: %w", err)
		}
		end = parsed
	}

	start := end.AddDate(-def.LookbackYears, 0, 0)
	if simStart != "" {
		parsed, err := time.Parse("2006-01-02", simStart)
		if err != nil {
			return contracts.SimulationRequest{}, fmt.Errorf("--start must be YYYY-MM-DD: %w", err)
		}
		start = parsed
	}

	return contracts.SimulationRequest{
		Ticker:      ticker,
		Start:       start,
		End:         end,
		TriggerDays: days,
		Amount:      amount,
	}, nil
}
