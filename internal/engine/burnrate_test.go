package engine_test

import (
	"math"
	"testing"

	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

func TestCalculateBurnRate(t *testing.T) {
	t.Run("fractional runway is critical", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(5000, 12000)

		if burnRate.MonthsLeft != 2.4 {
			t.Errorf("Expected monthsLeft 2.4, got %v", burnRate.MonthsLeft)
		}
		if burnRate.Warning != model.WarningCritical {
			t.Errorf("Expected warning Critical, got %s", burnRate.Warning)
		}
	})

	t.Run("mid-range runway is caution", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(2000, 10000)

		if burnRate.MonthsLeft != 5.0 {
			t.Errorf("Expected monthsLeft 5.0, got %v", burnRate.MonthsLeft)
		}
		if burnRate.Warning != model.WarningCaution {
			t.Errorf("Expected warning Caution, got %s", burnRate.Warning)
		}
	})

	t.Run("long runway is safe", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(1000, 12000)

		if burnRate.MonthsLeft != 12.0 {
			t.Errorf("Expected monthsLeft 12.0, got %v", burnRate.MonthsLeft)
		}
		if burnRate.Warning != model.WarningSafe {
			t.Errorf("Expected warning Safe, got %s", burnRate.Warning)
		}
	})

	t.Run("exactly six months is safe", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(2000, 12000)

		if burnRate.Warning != model.WarningSafe {
			t.Errorf("Expected warning Safe at the boundary, got %s", burnRate.Warning)
		}
	})

	t.Run("exactly three months is caution", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(4000, 12000)

		if burnRate.Warning != model.WarningCaution {
			t.Errorf("Expected warning Caution at the boundary, got %s", burnRate.Warning)
		}
	})

	t.Run("zero expense with savings is unlimited and safe", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(0, 5000)

		if !math.IsInf(burnRate.MonthsLeft, 1) {
			t.Errorf("Expected infinite monthsLeft, got %v", burnRate.MonthsLeft)
		}
		if burnRate.Warning != model.WarningSafe {
			t.Errorf("Expected warning Safe, got %s", burnRate.Warning)
		}
	})

	t.Run("zero expense without savings is critical", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(0, 0)

		if burnRate.MonthsLeft != 0 {
			t.Errorf("Expected monthsLeft 0, got %v", burnRate.MonthsLeft)
		}
		if burnRate.Warning != model.WarningCritical {
			t.Errorf("Expected warning Critical, got %s", burnRate.Warning)
		}
	})

	t.Run("months left rounds to one decimal place", func(t *testing.T) {
		burnRate := engine.CalculateBurnRate(3000, 10000)

		if burnRate.MonthsLeft != 3.3 {
			t.Errorf("Expected monthsLeft 3.3, got %v", burnRate.MonthsLeft)
		}
	})
}
