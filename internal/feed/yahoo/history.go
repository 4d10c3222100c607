package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hsuehlin/etfcalc/internal/contracts"
)

const priceAdapter = "yahoo price feed"

// Taiwan listings carry the market suffix on Yahoo, e.g. 0050.TW
const marketSuffix = ".TW"

// taipei is the exchange timezone; bar timestamps are converted into it
// before being collapsed to calendar dates, so the day-of-month used by the
// trade triggers is the local trading day
var taipei = time.FixedZone("Asia/Taipei", 8*60*60)

// FetchHistory fetches daily OHLCV bars for one ticker and date range from
// the chart API. interval follows the API's notation; "" means "1d".
// ⭐ SSOT: 歷史股價抓取只在這個函式
func (c *Client) FetchHistory(ctx context.Context, ticker string, from, to time.Time, interval string) ([]contracts.PriceBar, error) {
	if interval == "" {
		interval = "1d"
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s%s?period1=%d&period2=%d&interval=%s",
		c.baseURL, ticker, marketSuffix, from.Unix(), to.Unix(), interval)

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, contracts.NetworkError(priceAdapter, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, contracts.NetworkError(priceAdapter,
			fmt.Errorf("unexpected status code %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, contracts.NetworkError(priceAdapter, err)
	}

	bars, err := parseChartResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker": ticker + marketSuffix,
		"count":  len(bars),
	}).Debug("Fetched price history")

	return bars, nil
}

// parseChartResponse parses the v8 chart JSON into daily bars. Rows where
// the exchange reported no trade at all (every OHLC field null) are skipped;
// a partially missing row is a validation failure.
func parseChartResponse(body []byte) ([]contracts.PriceBar, error) {
	if !gjson.ValidBytes(body) {
		return nil, contracts.ValidationErrorf(priceAdapter, "response is not valid JSON")
	}

	root := gjson.ParseBytes(body)

	if errDesc := root.Get("chart.error.description"); errDesc.Exists() && errDesc.String() != "" {
		return nil, contracts.ValidationErrorf(priceAdapter, "chart error: %s", errDesc.String())
	}

	result := root.Get("chart.result.0")
	if !result.Exists() {
		return nil, contracts.ValidationErrorf(priceAdapter, "empty chart result")
	}

	timestamps := result.Get("timestamp").Array()
	quote := result.Get("indicators.quote.0")
	opens := quote.Get("open").Array()
	highs := quote.Get("high").Array()
	lows := quote.Get("low").Array()
	closes := quote.Get("close").Array()
	volumes := quote.Get("volume").Array()

	n := len(timestamps)
	if len(opens) != n || len(highs) != n || len(lows) != n || len(closes) != n || len(volumes) != n {
		return nil, contracts.ValidationErrorf(priceAdapter,
			"quote arrays do not match %d timestamps", n)
	}

	bars := make([]contracts.PriceBar, 0, n)
	for i := 0; i < n; i++ {
		nulls := 0
		for _, cell := range []gjson.Result{opens[i], highs[i], lows[i], closes[i]} {
			if cell.Type == gjson.Null {
				nulls++
			}
		}
		if nulls == 4 {
			// No trading that day (e.g. a halt); not an error.
			continue
		}
		if nulls > 0 {
			return nil, contracts.ValidationErrorf(priceAdapter,
				"bar %d is missing %d OHLC fields", i, nulls)
		}

		day := time.Unix(timestamps[i].Int(), 0).In(taipei)
		y, m, d := day.Date()

		bars = append(bars, contracts.PriceBar{
			// Collapsed to UTC midnight so price and dividend timelines
			// share join keys.
			Date:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Open:   opens[i].Float(),
			High:   highs[i].Float(),
			Low:    lows[i].Float(),
			Close:  closes[i].Float(),
			Volume: volumes[i].Int(),
		})
	}

	return bars, nil
}
