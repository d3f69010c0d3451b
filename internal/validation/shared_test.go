package validation_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/validation"
)

func TestValidateUUID(t *testing.T) {
	t.Run("accepts a well-formed UUID", func(t *testing.T) {
		if err := validation.ValidateUUID(uuid.NewString()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects an empty ID", func(t *testing.T) {
		if err := validation.ValidateUUID("  "); !errors.Is(err, apperrors.ErrEmptyID) {
			t.Errorf("Expected ErrEmptyID, got %v", err)
		}
	})

	t.Run("rejects a malformed ID", func(t *testing.T) {
		if err := validation.ValidateUUID("not-a-uuid"); !errors.Is(err, apperrors.ErrInvalidUUID) {
			t.Errorf("Expected ErrInvalidUUID, got %v", err)
		}
	})
}
