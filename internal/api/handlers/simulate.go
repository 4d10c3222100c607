package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hsuehlin/etfcalc/internal/contracts"
	"github.com/hsuehlin/etfcalc/internal/etflist"
	"github.com/hsuehlin/etfcalc/internal/pipeline"
	"github.com/hsuehlin/etfcalc/internal/simconfig"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

// SimulateHandler handles simulation API endpoints
// ⭐ SSOT: 模擬 API 處理只在這個結構
type SimulateHandler struct {
	runner   *pipeline.Runner
	catalog  *etflist.Catalog
	defaults *simconfig.Config
	logger   *logger.Logger
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(runner *pipeline.Runner, catalog *etflist.Catalog, defaults *simconfig.Config, log *logger.Logger) *SimulateHandler {
	return &SimulateHandler{
		runner:   runner,
		catalog:  catalog,
		defaults: defaults,
		logger:   log,
	}
}

// SimulateRequest represents a simulation request body
type SimulateRequest struct {
	Ticker      string `json:"ticker"`
	Start       string `json:"start"` // YYYY-MM-DD, optional
	End         string `json:"end"`   // YYYY-MM-DD, optional
	TriggerDays []int  `json:"trigger_days"`
	Amount      int64  `json:"amount"`
}

// SimulateResponse represents a completed simulation
type SimulateResponse struct {
	Ticker      string                         `json:"ticker"`
	Start       string                         `json:"start"`
	End         string                         `json:"end"`
	TriggerDays []int                          `json:"trigger_days"`
	Amount      int64                          `json:"amount"`
	Candles     []contracts.ClassifiedBar      `json:"candles"`
	Trades      []contracts.TradeRecord        `json:"trades"`
	Dividends   []contracts.ReinvestmentRecord `json:"dividends"`
	DurationMS  int64                          `json:"duration_ms"`
}

// Simulate runs one periodic investment simulation
// POST /api/simulate
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req, err := h.toSimulationRequest(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.catalog.Has(req.Ticker) {
		respondError(w, http.StatusNotFound, "Unknown ETF code: "+req.Ticker)
		return
	}

	result, err := h.runner.Run(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, contracts.ErrNetwork):
			h.logger.WithError(err).Error("Upstream feed failed")
			respondError(w, http.StatusBadGateway, "Upstream data source unavailable")
		default:
			h.logger.WithError(err).Error("Simulation failed")
			respondError(w, http.StatusInternalServerError, "Simulation failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, SimulateResponse{
		Ticker:      req.Ticker,
		Start:       req.Start.Format("2006-01-02"),
		End:         req.End.Format("2006-01-02"),
		TriggerDays: req.NormalizedTriggerDays(),
		Amount:      req.Amount,
		Candles:     result.Classified,
		Trades:      result.Trades,
		Dividends:   result.Dividends,
		DurationMS:  result.Duration.Milliseconds(),
	})
}

// toSimulationRequest fills omitted fields from the configured defaults
// and parses the date range.
func (h *SimulateHandler) toSimulationRequest(body SimulateRequest) (contracts.SimulationRequest, error) {
	def := h.defaults.Defaults

	ticker := body.Ticker
	if ticker == "" {
		ticker = def.Ticker
	}

	triggerDays := body.TriggerDays
	if len(triggerDays) == 0 {
		triggerDays = def.TriggerDays
	}

	amount := body.Amount
	if amount == 0 {
		amount = def.Amount
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	if body.End != "" {
		parsed, err := time.Parse("2006-01-02", body.End)
		if err != nil {
			return contracts.SimulationRequest{}, errors.New("end must be YYYY-MM-DD")
		}
		end = parsed
	}

	start := end.AddDate(-def.LookbackYears, 0, 0)
	if body.Start != "" {
		parsed, err := time.Parse("2006-01-02", body.Start)
		if err != nil {
			return contracts.SimulationRequest{}, errors.New("start must be YYYY-MM-DD")
		}
		start = parsed
	}

	return contracts.SimulationRequest{
		Ticker:      ticker,
		Start:       start,
		End:         end,
		TriggerDays: triggerDays,
		Amount:      amount,
	}, nil
}
