package contracts

import "time"

// TradeRecord is one simulated fixed-amount purchase on a triggered day.
// ⭐ SSOT: 模擬器 → 合併器 的交易欄位
type TradeRecord struct {
	Date      time.Time `json:"date"`
	DailyMean float64   `json:"daily_mean"`

	Holdings           int64 `json:"holdings"` // whole shares bought this day
	Cost               int64 `json:"cost"`     // rounded shares * daily mean, not the raw amount
	CumulativeCost     int64 `json:"cum_cost"`
	CumulativeHoldings int64 `json:"cum_holdings"`
	UnrealizedValue    int64 `json:"unrealized_value"`
	ProfitRatio        Ratio `json:"profit_ratio"` // percent, null until cost accrues
}

// DividendProfitRecord is one row of the unioned trade/dividend timeline.
// Rows present on only one side carry zeros for the other side's fields.
type DividendProfitRecord struct {
	Date      time.Time `json:"date"`
	DailyMean float64   `json:"daily_mean"` // 0 on dividend-only dates
	PerShare  float64   `json:"dividend_per_share"`

	Holdings int64 `json:"holdings"`
	Cost     int64 `json:"cost"`

	// CumulativeHoldings is recomputed over the unioned timeline and so
	// differs from TradeRecord.CumulativeHoldings on trade-only rows.
	CumulativeHoldings       int64 `json:"cum_holdings"`
	DividendProfit           int64 `json:"dividend_profit"`
	CumulativeDividendProfit int64 `json:"cum_dividend_profit"`
}

// ReinvestmentRecord extends a DividendProfitRecord with whole-share
// reinvestment of the payout at the same day's mean price.
type ReinvestmentRecord struct {
	DividendProfitRecord

	ReinvestHoldings int64 `json:"reinvest_holdings"`
	ReinvestCost     int64 `json:"reinvest_cost"`

	HoldingsWithReinvest           int64 `json:"holdings_with_reinvest"`
	CostWithReinvest               int64 `json:"cost_with_reinvest"`
	CumulativeHoldingsWithReinvest int64 `json:"cum_holdings_with_reinvest"`
	CumulativeCostWithReinvest     int64 `json:"cum_cost_with_reinvest"`
	UnrealizedValueWithReinvest    int64 `json:"unrealized_value_with_reinvest"`
	ProfitRatioWithReinvest        Ratio `json:"profit_ratio_with_reinvest"`
}
