package yahoo

import (
	"errors"
	"testing"
	"time"

	"github.com/hsuehlin/etfcalc/internal/contracts"
)

const sampleChartJSON = `{
	"chart": {
		"result": [{
			"meta": {"symbol": "0050.TW", "exchangeTimezoneName": "Asia/Taipei"},
			"timestamp": [1689642000, 1689728400],
			"indicators": {
				"quote": [{
					"open":   [130.1, 131.0],
					"high":   [131.5, 131.8],
					"low":    [129.8, 130.2],
					"close":  [131.2, 130.4],
					"volume": [12034567, 9876543]
				}]
			}
		}],
		"error": null
	}
}`

func TestParseChartResponse(t *testing.T) {
	bars, err := parseChartResponse([]byte(sampleChartJSON))
	if err != nil {
		t.Fatalf("parseChartResponse() error = %v", err)
	}

	if len(bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(bars))
	}

	first := bars[0]
	// 1689642000 is 2023-07-18 09:00 in Taipei
	wantDate := time.Date(2023, 7, 18, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(wantDate) {
		t.Errorf("first bar date = %v, want %v", first.Date, wantDate)
	}
	if first.Open != 130.1 || first.Close != 131.2 {
		t.Errorf("first bar open/close = %v/%v, want 130.1/131.2", first.Open, first.Close)
	}
	if first.Volume != 12034567 {
		t.Errorf("first bar volume = %d, want 12034567", first.Volume)
	}
}

func TestParseChartResponse_LocalTradingDay(t *testing.T) {
	// 1689634800 is 2023-07-17 23:00 UTC but already 07-18 in Taipei; the
	// bar must land on the local trading day.
	body := `{"chart": {"result": [{
		"timestamp": [1689634800],
		"indicators": {"quote": [{
			"open": [100.0], "high": [101.0], "low": [99.0], "close": [100.5], "volume": [1]
		}]}
	}], "error": null}}`

	bars, err := parseChartResponse([]byte(body))
	if err != nil {
		t.Fatalf("parseChartResponse() error = %v", err)
	}
	if len(bars) != 1 {
		t.Fatalf("got %d bars, want 1", len(bars))
	}

	want := time.Date(2023, 7, 18, 0, 0, 0, 0, time.UTC)
	if !bars[0].Date.Equal(want) {
		t.Errorf("bar date = %v, want %v", bars[0].Date, want)
	}
}

func TestParseChartResponse_SkipsUntradedDays(t *testing.T) {
	body := `{"chart": {"result": [{
		"timestamp": [1689642000, 1689728400],
		"indicators": {"quote": [{
			"open":   [130.1, null],
			"high":   [131.5, null],
			"low":    [129.8, null],
			"close":  [131.2, null],
			"volume": [12034567, null]
		}]}
	}], "error": null}}`

	bars, err := parseChartResponse([]byte(body))
	if err != nil {
		t.Fatalf("parseChartResponse() error = %v", err)
	}
	if len(bars) != 1 {
		t.Errorf("got %d bars, want 1 (fully-null row skipped)", len(bars))
	}
}

func TestParseChartResponse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "not JSON",
			body: `<html>rate limited</html>`,
		},
		{
			name: "chart error",
			body: `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`,
		},
		{
			name: "empty result",
			body: `{"chart": {"result": [], "error": null}}`,
		},
		{
			name: "mismatched arrays",
			body: `{"chart": {"result": [{
				"timestamp": [1689642000, 1689728400],
				"indicators": {"quote": [{
					"open": [130.1], "high": [131.5], "low": [129.8], "close": [131.2], "volume": [1]
				}]}
			}], "error": null}}`,
		},
		{
			name: "partially missing OHLC",
			body: `{"chart": {"result": [{
				"timestamp": [1689642000],
				"indicators": {"quote": [{
					"open": [null], "high": [131.5], "low": [129.8], "close": [131.2], "volume": [1]
				}]}
			}], "error": null}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseChartResponse([]byte(tt.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, contracts.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}
