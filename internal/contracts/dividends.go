package contracts

import "time"

// DividendEvent is one announced distribution for an ETF.
// Date is the ex-dividend trading day (除息交易日), already converted from
// the minguo calendar the exchange publishes.
type DividendEvent struct {
	Date     time.Time `json:"date"`
	PerShare float64   `json:"dividend_per_share"` // TWD per unit, >= 0
}
