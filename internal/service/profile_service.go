package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/config"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
	"github.com/thinktwice/finance-dashboard-backend/internal/repository"
)

// ProfileService serves the user's declared financial scalars. When no
// profile has been stored yet, it falls back to configured defaults so the
// dashboard always has income/savings figures to compute with.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	defaults    config.ProfileConfig
}

// NewProfileService creates a new ProfileService with the provided repository and fallback defaults.
func NewProfileService(profileRepo *repository.ProfileRepository, defaults config.ProfileConfig) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, defaults: defaults}
}

// GetProfile returns the stored profile, or a default-valued profile when
// none exists yet.
func (s *ProfileService) GetProfile(ctx context.Context) (model.UserProfile, error) {
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			savings := s.defaults.Savings
			return model.UserProfile{
				MonthlyIncome: s.defaults.MonthlyIncome,
				Savings:       &savings,
				MonthlyBudget: s.defaults.MonthlyBudget,
			}, nil
		}
		return model.UserProfile{}, err
	}
	return profile, nil
}

// UpdateProfile stores the profile, assigning an ID on first write.
// Negative income or savings are accepted as-is: overdraft is a valid
// transient state, and classification proceeds mechanically.
func (s *ProfileService) UpdateProfile(ctx context.Context, profile model.UserProfile) (model.UserProfile, error) {
	if profile.ID == "" {
		existing, err := s.profileRepo.GetProfile(ctx)
		switch {
		case err == nil:
			profile.ID = existing.ID
		case errors.Is(err, apperrors.ErrProfileNotFound):
			profile.ID = uuid.NewString()
		default:
			return model.UserProfile{}, err
		}
	}

	if err := s.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return model.UserProfile{}, err
	}

	return profile, nil
}
