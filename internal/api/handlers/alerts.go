package handlers

import (
	"net/http"

	"github.com/thinktwice/finance-dashboard-backend/internal/api/response"
	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/service"
)

// AlertHandler handles HTTP requests for the alert history.
type AlertHandler struct {
	alertService *service.AlertService
}

// NewAlertHandler creates a new AlertHandler with the provided service dependency.
func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// History handles GET requests listing which threshold alerts fired, newest first.
//
// Endpoint: GET /api/alerts/history
// Response: 200 OK with array of AlertRecord
// Error: 500 Internal Server Error if retrieval fails
func (h *AlertHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.alertService.History(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAlerts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, records)
}
