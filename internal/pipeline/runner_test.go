package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsuehlin/etfcalc/internal/contracts"
	"github.com/hsuehlin/etfcalc/pkg/config"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "test", LogLevel: "error", LogFormat: "json"})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type stubPriceFeed struct {
	bars []contracts.PriceBar
	err  error

	gotTicker   string
	gotInterval string
}

func (s *stubPriceFeed) FetchHistory(_ context.Context, ticker string, _, _ time.Time, interval string) ([]contracts.PriceBar, error) {
	s.gotTicker = ticker
	s.gotInterval = interval
	return s.bars, s.err
}

type stubDividendFeed struct {
	events []contracts.DividendEvent
	err    error

	gotStkNo string
}

func (s *stubDividendFeed) FetchDividends(_ context.Context, stkNo string, _, _ time.Time) ([]contracts.DividendEvent, error) {
	s.gotStkNo = stkNo
	return s.events, s.err
}

func validRequest() contracts.SimulationRequest {
	return contracts.SimulationRequest{
		Ticker:      "0050",
		Start:       day(2023, time.July, 1),
		End:         day(2023, time.August, 1),
		TriggerDays: []int{3, 17},
		Amount:      5000,
	}
}

func TestRun(t *testing.T) {
	prices := &stubPriceFeed{bars: []contracts.PriceBar{
		{Date: day(2023, time.July, 3), Open: 100, High: 101, Low: 99, Close: 100, Volume: 1000},
		{Date: day(2023, time.July, 10), Open: 102, High: 103, Low: 101, Close: 102, Volume: 1000},
		{Date: day(2023, time.July, 17), Open: 110, High: 111, Low: 109, Close: 110, Volume: 1000},
	}}
	dividends := &stubDividendFeed{events: []contracts.DividendEvent{
		{Date: day(2023, time.July, 10), PerShare: 2.0},
	}}

	runner := NewRunner(prices, dividends, testLogger())
	result, err := runner.Run(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "0050", prices.gotTicker)
	assert.Equal(t, "1d", prices.gotInterval)
	assert.Equal(t, "0050", dividends.gotStkNo)

	require.Len(t, result.Classified, 3)
	require.Len(t, result.Trades, 2, "only triggered bars become trade rows")
	require.Len(t, result.Dividends, 3, "the July 10 ex-dividend date joins in")

	// July 3 and 17 are trigger days: 50 shares at 100, then 45 at 110.
	assert.Equal(t, int64(50), result.Trades[0].Holdings)
	assert.Equal(t, int64(45), result.Trades[1].Holdings)
	assert.Equal(t, int64(95), result.Trades[1].CumulativeHoldings)

	// The July 10 ex-dividend date pays on the 50 shares held so far.
	assert.Equal(t, int64(100), result.Dividends[1].DividendProfit)
	assert.Equal(t, int64(100), result.Dividends[2].CumulativeDividendProfit)
}

func TestRun_NoDividends(t *testing.T) {
	prices := &stubPriceFeed{bars: []contracts.PriceBar{
		{Date: day(2023, time.July, 3), Open: 100, High: 101, Low: 99, Close: 100, Volume: 1000},
	}}
	dividends := &stubDividendFeed{}

	runner := NewRunner(prices, dividends, testLogger())
	result, err := runner.Run(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, result.Dividends, 1)
	assert.Equal(t, int64(0), result.Dividends[0].DividendProfit)
	assert.Equal(t, int64(0), result.Dividends[0].ReinvestHoldings)
}

func TestRun_InvalidRequest(t *testing.T) {
	runner := NewRunner(&stubPriceFeed{}, &stubDividendFeed{}, testLogger())

	req := validRequest()
	req.Amount = 0

	_, err := runner.Run(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrValidation))
}

func TestRun_DividendFeedError(t *testing.T) {
	dividends := &stubDividendFeed{err: contracts.NetworkError("twse", errors.New("connection refused"))}
	runner := NewRunner(&stubPriceFeed{}, dividends, testLogger())

	_, err := runner.Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrNetwork))
	assert.Contains(t, err.Error(), "dividend fetch failed")
}

func TestRun_PriceFeedError(t *testing.T) {
	prices := &stubPriceFeed{err: contracts.NetworkError("yahoo", errors.New("status 502"))}
	runner := NewRunner(prices, &stubDividendFeed{}, testLogger())

	_, err := runner.Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrNetwork))
	assert.Contains(t, err.Error(), "price fetch failed")
}

func TestRun_EmptyPriceHistory(t *testing.T) {
	runner := NewRunner(&stubPriceFeed{}, &stubDividendFeed{}, testLogger())

	_, err := runner.Run(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, contracts.ErrValidation))
	assert.Contains(t, err.Error(), "no trading days")
}
