package simulate

import (
	"errors"
	"testing"
	"time"

	"github.com/hsuehlin/etfcalc/internal/contracts"
)

func bar(day int, open, close float64) contracts.PriceBar {
	return contracts.PriceBar{
		Date:   time.Date(2023, 3, day, 0, 0, 0, 0, time.UTC),
		Open:   open,
		High:   close + 0.5,
		Low:    open - 0.5,
		Close:  close,
		Volume: 1000,
	}
}

func TestClassify_Flags(t *testing.T) {
	tests := []struct {
		name        string
		open, close float64
		wantRed     bool
		wantGreen   bool
		wantFlat    bool
	}{
		{"red candle", 101.0, 100.0, true, false, false},
		{"green candle", 100.0, 101.0, false, true, false},
		{"flat candle", 100.5, 100.5, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify([]contracts.PriceBar{bar(1, tt.open, tt.close)})
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}

			cb := got[0]
			if cb.IsRed != tt.wantRed || cb.IsGreen != tt.wantGreen || cb.IsFlat != tt.wantFlat {
				t.Errorf("flags = red:%v green:%v flat:%v, want red:%v green:%v flat:%v",
					cb.IsRed, cb.IsGreen, cb.IsFlat, tt.wantRed, tt.wantGreen, tt.wantFlat)
			}
		})
	}
}

func TestClassify_FlagsMutuallyExclusive(t *testing.T) {
	bars := []contracts.PriceBar{
		bar(1, 100.0, 101.0),
		bar(2, 101.0, 100.0),
		bar(3, 100.5, 100.5),
		bar(4, 99.95, 100.05),
	}

	got, err := Classify(bars)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	for _, cb := range got {
		set := 0
		for _, flag := range []bool{cb.IsRed, cb.IsGreen, cb.IsFlat} {
			if flag {
				set++
			}
		}
		if set != 1 {
			t.Errorf("bar %s: %d flags set, want exactly 1", cb.Date.Format("2006-01-02"), set)
		}
	}
}

func TestClassify_DailyMean(t *testing.T) {
	tests := []struct {
		name        string
		open, close float64
		want        float64
	}{
		{"exact mean", 100.0, 110.0, 105.0},
		{"half rounds to even up", 100.1, 100.2, 100.2}, // 100.15 -> 100.2
		{"half rounds to even down", 10.0, 10.5, 10.2},  // 10.25 -> 10.2
		{"below half rounds down", 35.42, 35.47, 35.4},  // 35.445 -> 35.4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify([]contracts.PriceBar{bar(1, tt.open, tt.close)})
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got[0].DailyMean != tt.want {
				t.Errorf("DailyMean = %v, want %v", got[0].DailyMean, tt.want)
			}
		})
	}
}

func TestClassify_InvalidBar(t *testing.T) {
	bars := []contracts.PriceBar{
		bar(1, 100.0, 101.0),
		{Date: time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC), Open: 0, Close: 100.0},
	}

	_, err := Classify(bars)
	if err == nil {
		t.Fatal("Expected error for bar with missing open")
	}
	if !errors.Is(err, contracts.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
}

func TestClassify_PreservesOrderAndCardinality(t *testing.T) {
	bars := []contracts.PriceBar{bar(1, 100, 101), bar(2, 101, 102), bar(3, 102, 101)}

	got, err := Classify(bars)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if len(got) != len(bars) {
		t.Fatalf("len = %d, want %d", len(got), len(bars))
	}
	for i := range bars {
		if !got[i].Date.Equal(bars[i].Date) {
			t.Errorf("row %d date = %v, want %v", i, got[i].Date, bars[i].Date)
		}
	}
}
