package handlers

import (
	"net/http"

	"github.com/hsuehlin/etfcalc/internal/etflist"
	"github.com/hsuehlin/etfcalc/internal/scheduler"
	"github.com/hsuehlin/etfcalc/pkg/logger"
)

// ETFHandler handles ETF catalog API endpoints
type ETFHandler struct {
	catalog   *etflist.Catalog
	scheduler *scheduler.Scheduler
	logger    *logger.Logger
}

// NewETFHandler creates a new ETF handler. The scheduler may be nil
// when the refresh job is disabled.
func NewETFHandler(catalog *etflist.Catalog, sched *scheduler.Scheduler, log *logger.Logger) *ETFHandler {
	return &ETFHandler{
		catalog:   catalog,
		scheduler: sched,
		logger:    log,
	}
}

// List returns every listed ETF known to the catalog
// GET /api/etfs
func (h *ETFHandler) List(w http.ResponseWriter, r *http.Request) {
	etfs := h.catalog.List()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(etfs),
		"etfs":  etfs,
	})
}

// Refresh triggers an immediate catalog refresh
// POST /api/etfs/refresh
func (h *ETFHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.scheduler == nil {
		respondError(w, http.StatusServiceUnavailable, "Catalog refresh is disabled")
		return
	}

	if err := h.scheduler.RunJob("catalog_refresh"); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"status": "refresh scheduled",
	})
}

// Jobs returns execution statistics for the scheduled jobs
// GET /api/jobs
func (h *ETFHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	if h.scheduler == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{})
		return
	}

	respondJSON(w, http.StatusOK, h.scheduler.GetJobStats())
}
