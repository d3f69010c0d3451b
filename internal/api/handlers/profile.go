package handlers

import (
	"net/http"

	"github.com/thinktwice/finance-dashboard-backend/internal/api/request"
	"github.com/thinktwice/finance-dashboard-backend/internal/api/response"
	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
	"github.com/thinktwice/finance-dashboard-backend/internal/service"
)

// ProfileHandler handles HTTP requests for the user profile.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the provided service dependency.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET requests for the stored (or default) profile.
//
// Endpoint: GET /api/profile
// Response: 200 OK with UserProfile
// Error: 500 Internal Server Error if retrieval fails
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.GetProfile(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT requests replacing the profile. Negative
// income or savings are accepted: they are valid transient real-world
// states, not validation failures.
//
// Endpoint: PUT /api/profile
// Request Body: UpdateProfileRequest
// Response: 200 OK with the stored UserProfile
// Error: 400 Bad Request if the request body is invalid
// Error: 500 Internal Server Error if persistence fails
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateProfileRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), model.UserProfile{
		Name:          req.Name,
		MonthlyIncome: req.MonthlyIncome,
		Savings:       req.Savings,
		MonthlyBudget: req.MonthlyBudget,
		Phone:         req.Phone,
	})
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateProfile.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, profile)
}
