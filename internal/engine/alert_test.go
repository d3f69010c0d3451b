package engine_test

import (
	"testing"

	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

func TestAlertDedup(t *testing.T) {
	t.Run("fires once per threshold per month", func(t *testing.T) {
		history := model.AlertHistory{}

		if !engine.ShouldAlert(history, "2026-01", engine.ThresholdBudget80) {
			t.Error("Expected first occurrence to fire")
		}

		history = engine.RecordAlert(history, "2026-01", engine.ThresholdBudget80)

		if engine.ShouldAlert(history, "2026-01", engine.ThresholdBudget80) {
			t.Error("Expected repeat in same month to be suppressed")
		}
	})

	t.Run("a new month resets the threshold", func(t *testing.T) {
		history := engine.RecordAlert(model.AlertHistory{}, "2026-01", engine.ThresholdBudget100)

		if !engine.ShouldAlert(history, "2026-02", engine.ThresholdBudget100) {
			t.Error("Expected new month to fire again")
		}
	})

	t.Run("thresholds deduplicate independently", func(t *testing.T) {
		history := engine.RecordAlert(model.AlertHistory{}, "2026-01", engine.ThresholdBudget80)

		if !engine.ShouldAlert(history, "2026-01", engine.ThresholdBudget100) {
			t.Error("Expected a different threshold to fire in the same month")
		}
	})

	t.Run("record does not mutate the input history", func(t *testing.T) {
		original := model.AlertHistory{}
		engine.RecordAlert(original, "2026-01", engine.ThresholdBudget80)

		if len(original) != 0 {
			t.Error("Input history was mutated")
		}
	})
}

func snapshotWithWarning(warning model.WarningLevel) model.DashboardSnapshot {
	return model.DashboardSnapshot{
		FinancialTwin: model.FinancialTwin{MonthlyExpense: 4000},
		BurnRate:      model.BurnRate{Warning: warning},
	}
}

func TestEvaluateThresholds(t *testing.T) {
	t.Run("budget at 80 percent fires the warn threshold", func(t *testing.T) {
		curr := snapshotWithWarning(model.WarningSafe)

		events := engine.EvaluateThresholds(nil, curr, 1000, 850)

		if len(events) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(events))
		}
		if events[0].ThresholdName != engine.ThresholdBudget80 {
			t.Errorf("Expected %s, got %s", engine.ThresholdBudget80, events[0].ThresholdName)
		}
		if events[0].Percentage != 85.0 {
			t.Errorf("Expected percentage 85.0, got %v", events[0].Percentage)
		}
		if events[0].Amount != 850 {
			t.Errorf("Expected amount 850, got %v", events[0].Amount)
		}
	})

	t.Run("budget at or over 100 percent fires only the exceed threshold", func(t *testing.T) {
		curr := snapshotWithWarning(model.WarningSafe)

		events := engine.EvaluateThresholds(nil, curr, 1000, 1200)

		if len(events) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(events))
		}
		if events[0].ThresholdName != engine.ThresholdBudget100 {
			t.Errorf("Expected %s, got %s", engine.ThresholdBudget100, events[0].ThresholdName)
		}
	})

	t.Run("spend below 80 percent fires nothing", func(t *testing.T) {
		events := engine.EvaluateThresholds(nil, snapshotWithWarning(model.WarningSafe), 1000, 500)

		if len(events) != 0 {
			t.Errorf("Expected no events, got %d", len(events))
		}
	})

	t.Run("non-positive budget disables budget events", func(t *testing.T) {
		events := engine.EvaluateThresholds(nil, snapshotWithWarning(model.WarningSafe), 0, 9999)

		if len(events) != 0 {
			t.Errorf("Expected no events, got %d", len(events))
		}
	})

	t.Run("transition into critical fires", func(t *testing.T) {
		prev := snapshotWithWarning(model.WarningSafe)
		curr := snapshotWithWarning(model.WarningCritical)

		events := engine.EvaluateThresholds(&prev, curr, 0, 0)

		if len(events) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(events))
		}
		if events[0].ThresholdName != engine.ThresholdBurnCritical {
			t.Errorf("Expected %s, got %s", engine.ThresholdBurnCritical, events[0].ThresholdName)
		}
		if events[0].Amount != 4000 {
			t.Errorf("Expected amount 4000, got %v", events[0].Amount)
		}
	})

	t.Run("first refresh in caution fires without a previous snapshot", func(t *testing.T) {
		events := engine.EvaluateThresholds(nil, snapshotWithWarning(model.WarningCaution), 0, 0)

		if len(events) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(events))
		}
		if events[0].ThresholdName != engine.ThresholdBurnCaution {
			t.Errorf("Expected %s, got %s", engine.ThresholdBurnCaution, events[0].ThresholdName)
		}
	})

	t.Run("repeated tier does not fire again", func(t *testing.T) {
		prev := snapshotWithWarning(model.WarningCritical)
		curr := snapshotWithWarning(model.WarningCritical)

		events := engine.EvaluateThresholds(&prev, curr, 0, 0)

		if len(events) != 0 {
			t.Errorf("Expected no events, got %d", len(events))
		}
	})

	t.Run("caution to critical is a transition", func(t *testing.T) {
		prev := snapshotWithWarning(model.WarningCaution)
		curr := snapshotWithWarning(model.WarningCritical)

		events := engine.EvaluateThresholds(&prev, curr, 0, 0)

		if len(events) != 1 || events[0].ThresholdName != engine.ThresholdBurnCritical {
			t.Fatalf("Expected critical transition event, got %v", events)
		}
	})

	t.Run("recovery to safe fires nothing", func(t *testing.T) {
		prev := snapshotWithWarning(model.WarningCritical)
		curr := snapshotWithWarning(model.WarningSafe)

		events := engine.EvaluateThresholds(&prev, curr, 0, 0)

		if len(events) != 0 {
			t.Errorf("Expected no events, got %d", len(events))
		}
	})

	t.Run("burn and budget events can fire together", func(t *testing.T) {
		curr := snapshotWithWarning(model.WarningCritical)

		events := engine.EvaluateThresholds(nil, curr, 1000, 900)

		if len(events) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(events))
		}
	})
}
