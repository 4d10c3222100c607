package contracts

import "time"

// PriceBar is one daily OHLCV bar for an ETF, as returned by the price feed.
// Immutable once fetched.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// ClassifiedBar is a PriceBar annotated with candle features.
// Exactly one of IsRed/IsGreen/IsFlat is true.
// ⭐ SSOT: 分類器 → 模擬器 的每日特徵
type ClassifiedBar struct {
	PriceBar

	IsRed   bool    `json:"is_red"`   // open > close
	IsGreen bool    `json:"is_green"` // open < close
	IsFlat  bool    `json:"is_flat"`  // open == close
	// DailyMean is (open+close)/2 rounded to 1 decimal, the simulated
	// execution price for every purchase on this day.
	DailyMean float64 `json:"daily_mean"`
}
