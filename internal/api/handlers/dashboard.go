package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thinktwice/finance-dashboard-backend/internal/api/response"
	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
	"github.com/thinktwice/finance-dashboard-backend/internal/service"
	"github.com/thinktwice/finance-dashboard-backend/internal/validation"
)

// DashboardHandler handles HTTP requests for the aggregated dashboard.
// It serves as the HTTP layer adapter over the DashboardService; all
// analytics semantics live below it.
type DashboardHandler struct {
	dashboardService   *service.DashboardService
	transactionService *service.TransactionService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependencies.
func NewDashboardHandler(dashboardService *service.DashboardService, transactionService *service.TransactionService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:   dashboardService,
		transactionService: transactionService,
	}
}

// DashboardResponse wraps a snapshot with fetch-failure context. When the
// upstream fetch fails but a previous snapshot exists, Stale is true and
// FetchError carries the failure for display; the snapshot data remains
// fully usable.
type DashboardResponse struct {
	*model.DashboardSnapshot
	Stale      bool   `json:"stale,omitempty"`
	FetchError string `json:"fetchError,omitempty"`
}

// Dashboard handles GET requests for the current dashboard snapshot,
// computing the first snapshot on demand.
//
// Endpoint: GET /api/dashboard
// Response: 200 OK with DashboardResponse (stale flag set if the fetch failed)
// Error: 502 Bad Gateway if no snapshot exists and the fetch failed
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboardService.Snapshot(r.Context())
	respondSnapshot(w, snapshot, err)
}

// Refresh handles POST requests forcing a fetch-and-recompute cycle.
//
// Endpoint: POST /api/dashboard/refresh
// Response: 200 OK with DashboardResponse (stale flag set if the fetch failed)
// Error: 502 Bad Gateway if no snapshot exists and the fetch failed
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboardService.Refresh(r.Context())
	respondSnapshot(w, snapshot, err)
}

// Simulate handles GET requests for the counterfactual: total spend as if
// one transaction had never happened.
//
// Endpoint: GET /api/dashboard/simulate/{uuid}
// Response: 200 OK with Counterfactual
// Error: 400 Bad Request if the ID is not a valid UUID
// Error: 500 Internal Server Error if the transaction list cannot be fetched
func (h *DashboardHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	if err := validation.ValidateUUID(transactionID); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	transactions, err := h.transactionService.ListTransactions(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, engine.SimulateAlternateLife(transactions, transactionID))
}

// respondSnapshot applies the fail-soft contract: a snapshot plus an error
// means stale-but-available, no snapshot at all means upstream failure.
func respondSnapshot(w http.ResponseWriter, snapshot *model.DashboardSnapshot, err error) {
	if err != nil {
		if snapshot == nil || errors.Is(err, apperrors.ErrNoSnapshot) {
			response.RespondError(w, http.StatusBadGateway, apperrors.ErrFailedToRefreshDashboard.Error(), err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, DashboardResponse{
			DashboardSnapshot: snapshot,
			Stale:             true,
			FetchError:        err.Error(),
		})
		return
	}

	response.RespondJSON(w, http.StatusOK, DashboardResponse{DashboardSnapshot: snapshot})
}
