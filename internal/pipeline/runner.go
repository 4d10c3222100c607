package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/hsuehlin/etfcalc/internal/contracts"
	"github.com/hsuehlin/etfcalc/internal/simulate"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

// PriceFeed supplies daily OHLCV bars for a ticker and date range
type PriceFeed interface {
	FetchHistory(ctx context.Context, ticker string, from, to time.Time, interval string) ([]contracts.PriceBar, error)
}

// DividendFeed supplies per-share dividend events for a ticker and date range
type DividendFeed interface {
	FetchDividends(ctx context.Context, stkNo string, from, to time.Time) ([]contracts.DividendEvent, error)
}

// Runner coordinates one simulation run end to end
// ⭐ SSOT: 模擬流程的串接只在這裡
type Runner struct {
	prices    PriceFeed
	dividends DividendFeed
	logger    *logger.Logger
}

// Result holds the three chart datasets of a completed run.
// Trades keeps only the triggered purchase days; Dividends is the
// date union of those rows with the ex-dividend dates, extended with
// the reinvestment columns.
type Result struct {
	Classified []contracts.ClassifiedBar
	Trades     []contracts.TradeRecord
	Dividends  []contracts.ReinvestmentRecord
	Duration   time.Duration
}

// NewRunner creates a new runner
func NewRunner(prices PriceFeed, dividends DividendFeed, log *logger.Logger) *Runner {
	return &Runner{
		prices:    prices,
		dividends: dividends,
		logger:    log,
	}
}

// Run executes the full pipeline for one request:
// validate → fetch dividends → fetch prices → classify → trade → join → reinvest.
// The first failing stage aborts the run with a wrapped error.
func (r *Runner) Run(ctx context.Context, req contracts.SimulationRequest) (*Result, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, contracts.ValidationError("request", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"ticker":       req.Ticker,
		"start":        req.Start.Format("2006-01-02"),
		"end":          req.End.Format("2006-01-02"),
		"trigger_days": req.NormalizedTriggerDays(),
		"amount":       req.Amount,
	}).Info("Starting simulation run")

	dividends, err := r.dividends.FetchDividends(ctx, req.Ticker, req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("dividend fetch failed: %w", err)
	}

	bars, err := r.prices.FetchHistory(ctx, req.Ticker, req.Start, req.End, "1d")
	if err != nil {
		return nil, fmt.Errorf("price fetch failed: %w", err)
	}
	if len(bars) == 0 {
		return nil, contracts.ValidationErrorf("prices", "no trading days for %s between %s and %s",
			req.Ticker, req.Start.Format("2006-01-02"), req.End.Format("2006-01-02"))
	}

	classified, err := simulate.Classify(bars)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	trades := simulate.Trades(classified, req.TriggerSet(), req.Amount)
	joined := simulate.JoinDividends(trades, dividends)
	reinvested := simulate.Reinvest(joined)

	result := &Result{
		Classified: classified,
		Trades:     trades,
		Dividends:  reinvested,
		Duration:   time.Since(startTime),
	}

	r.logger.WithFields(map[string]interface{}{
		"ticker":        req.Ticker,
		"trading_days":  len(classified),
		"dividend_rows": len(dividends),
		"duration_ms":   result.Duration.Milliseconds(),
	}).Info("Simulation run completed")

	return result, nil
}
