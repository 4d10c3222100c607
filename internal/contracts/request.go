package contracts

import (
	"fmt"
	"sort"
	"time"
)

// SimulationRequest is one user submission: ticker, date range, recurring
// trading days and the fixed amount per purchase. Each run is a fresh,
// independent pipeline execution over this immutable struct.
type SimulationRequest struct {
	Ticker      string
	Start       time.Time
	End         time.Time
	TriggerDays []int // days of month, 1-31, duplicates ignored
	Amount      int64 // TWD per triggered day, > 0
}

// Validate checks the request before any feed is contacted
func (r SimulationRequest) Validate() error {
	if r.Ticker == "" {
		return fmt.Errorf("ticker is required")
	}

	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("start and end dates are required")
	}

	if !r.End.After(r.Start) {
		return fmt.Errorf("end date must be after start date")
	}

	if len(r.TriggerDays) == 0 {
		return fmt.Errorf("at least one trigger day is required")
	}

	for _, day := range r.TriggerDays {
		if day < 1 || day > 31 {
			return fmt.Errorf("trigger day %d out of range 1-31", day)
		}
	}

	if r.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", r.Amount)
	}

	return nil
}

// TriggerSet returns the deduplicated trigger days as a membership set
func (r SimulationRequest) TriggerSet() map[int]bool {
	set := make(map[int]bool, len(r.TriggerDays))
	for _, day := range r.TriggerDays {
		set[day] = true
	}
	return set
}

// NormalizedTriggerDays returns the trigger days sorted with duplicates removed
func (r SimulationRequest) NormalizedTriggerDays() []int {
	set := r.TriggerSet()
	days := make([]int, 0, len(set))
	for day := range set {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}
