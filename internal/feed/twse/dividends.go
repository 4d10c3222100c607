package twse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/hsuehlin/etfcalc/internal/contracts"
)

const dividendAdapter = "twse dividend feed"

// 除息交易日 arrives as a minguo-calendar string, e.g. "112年07月18日"
var minguoDatePattern = regexp.MustCompile(`(\d{2,3})年(\d{1,2})月(\d{1,2})日?`)

// FetchDividends fetches ETF distribution records from the TWSE etfDiv
// endpoint for one ticker and date range. Dates go out in 8-digit YYYYMMDD
// form; the response is a JSON table with a fields array naming the columns
// and a data array of row arrays.
// ⭐ SSOT: 配息資料抓取只在這個函式
func (c *Client) FetchDividends(ctx context.Context, stkNo string, from, to time.Time) ([]contracts.DividendEvent, error) {
	url := fmt.Sprintf("%s/rwd/zh/ETF/etfDiv?stkNo=%s&startDate=%s&endDate=%s&response=json",
		c.baseURL, stkNo, from.Format("20060102"), to.Format("20060102"))

	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, contracts.NetworkError(dividendAdapter, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, contracts.NetworkError(dividendAdapter,
			fmt.Errorf("unexpected status code %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, contracts.NetworkError(dividendAdapter, err)
	}

	events, err := parseDividendResponse(body)
	if err != nil {
		return nil, err
	}

	c.logger.WithFields(map[string]interface{}{
		"stk_no": stkNo,
		"count":  len(events),
	}).Debug("Fetched ETF dividends")

	return events, nil
}

// parseDividendResponse parses the etfDiv JSON table into dividend events,
// sorted ascending by ex-dividend date
func parseDividendResponse(body []byte) ([]contracts.DividendEvent, error) {
	if !gjson.ValidBytes(body) {
		return nil, contracts.ValidationErrorf(dividendAdapter, "response is not valid JSON")
	}

	root := gjson.ParseBytes(body)

	if stat := root.Get("stat").String(); stat != "" && stat != "OK" {
		return nil, contracts.ValidationErrorf(dividendAdapter, "endpoint stat %q", stat)
	}

	dateCol, amountCol := -1, -1
	root.Get("fields").ForEach(func(idx, field gjson.Result) bool {
		name := field.String()
		switch {
		case strings.Contains(name, "除息交易日"):
			dateCol = int(idx.Int())
		case strings.Contains(name, "收益分配金額"):
			amountCol = int(idx.Int())
		}
		return true
	})
	if dateCol < 0 || amountCol < 0 {
		return nil, contracts.ValidationErrorf(dividendAdapter,
			"fields array is missing the ex-dividend date or amount column")
	}

	var parseErr error
	events := make([]contracts.DividendEvent, 0)
	root.Get("data").ForEach(func(_, row gjson.Result) bool {
		cells := row.Array()
		if len(cells) <= dateCol || len(cells) <= amountCol {
			parseErr = contracts.ValidationErrorf(dividendAdapter,
				"row has %d cells, need at least %d", len(cells), max(dateCol, amountCol)+1)
			return false
		}

		exDate, err := parseMinguoDate(cells[dateCol].String())
		if err != nil {
			parseErr = err
			return false
		}

		perShare, err := parseAmount(cells[amountCol].String())
		if err != nil {
			parseErr = err
			return false
		}

		events = append(events, contracts.DividendEvent{Date: exDate, PerShare: perShare})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

// parseMinguoDate converts a "YY年MM月DD日" minguo string to a UTC-midnight
// Gregorian date (year + 1911)
func parseMinguoDate(s string) (time.Time, error) {
	m := minguoDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, contracts.ValidationErrorf(dividendAdapter, "unparseable minguo date %q", s)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, contracts.ValidationErrorf(dividendAdapter, "minguo date %q out of range", s)
	}

	return time.Date(year+1911, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// parseAmount parses a per-share amount like "0.85" or "1,025.00"
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || s == "-" {
		return 0, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || value < 0 {
		return 0, contracts.ValidationErrorf(dividendAdapter, "unparseable dividend amount %q", s)
	}

	return value, nil
}
