package contracts

import (
	"testing"
	"time"
)

func TestSimulationRequest_Validate(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	valid := SimulationRequest{
		Ticker:      "0050",
		Start:       start,
		End:         end,
		TriggerDays: []int{1, 15},
		Amount:      5000,
	}

	tests := []struct {
		name    string
		mutate  func(r SimulationRequest) SimulationRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(r SimulationRequest) SimulationRequest { return r },
			wantErr: false,
		},
		{
			name: "missing ticker",
			mutate: func(r SimulationRequest) SimulationRequest {
				r.Ticker = ""
				return r
			},
			wantErr: true,
		},
		{
			name: "end before start",
			mutate: func(r SimulationRequest) SimulationRequest {
				r.Start, r.End = r.End, r.Start
				return r
			},
			wantErr: true,
		},
		{
			name: "end equals start",
			mutate: func(r SimulationRequest) SimulationRequest {
				r.End = r.Start
				return r
			},
			wantErr: true,
		},
		{
			name: "no trigger days",
			mutate: func(r SimulationRequest) SimulationRequest {
				r.TriggerDays = nil
				return r
			},
			wantErr: true,
		},
		{
			name: "trigger day out of range",
			mutate: func(r SimulationRequest) SimulationRequest {
				r.TriggerDays = []int{1, 32}
				return r
			},
			wantErr: true,
		},
		{
			name: "zero amount",
			mutate: func(r SimulationRequest) SimulationRequest {
				r.Amount = 0
				return r
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			mutate: func(r SimulationRequest) SimulationRequest {
				r.Amount = -100
				return r
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSimulationRequest_NormalizedTriggerDays(t *testing.T) {
	r := SimulationRequest{TriggerDays: []int{15, 1, 15, 28, 1}}

	got := r.NormalizedTriggerDays()
	want := []int{1, 15, 28}

	if len(got) != len(want) {
		t.Fatalf("NormalizedTriggerDays() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NormalizedTriggerDays()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
