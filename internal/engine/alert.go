package engine

import (
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// Threshold names emitted in ThresholdEvent facts.
const (
	ThresholdBudget80     = "budget_80"
	ThresholdBudget100    = "budget_100"
	ThresholdBurnCaution  = "burn_rate_caution"
	ThresholdBurnCritical = "burn_rate_critical"
)

// Budget percentages at which spending alerts fire.
const (
	budgetWarnPercentage   = 80.0
	budgetExceedPercentage = 100.0
)

// alertKey builds the month-scoped dedup key for a threshold.
func alertKey(month, thresholdName string) string {
	return thresholdName + "_" + month
}

// ShouldAlert reports whether an alert for the given threshold has not yet
// fired in the given calendar month. The history is an explicit input so
// dedup decisions stay pure and testable.
func ShouldAlert(history model.AlertHistory, month, thresholdName string) bool {
	return !history[alertKey(month, thresholdName)]
}

// RecordAlert returns a copy of the history with the given threshold marked
// as fired for the month. The input history is not mutated.
func RecordAlert(history model.AlertHistory, month, thresholdName string) model.AlertHistory {
	updated := make(model.AlertHistory, len(history)+1)
	for k, v := range history {
		updated[k] = v
	}
	updated[alertKey(month, thresholdName)] = true
	return updated
}

// EvaluateThresholds derives the threshold-crossing facts for one refresh
// cycle. Two families of event exist:
//
//   - Burn-rate transitions: an event fires when the warning tier moves into
//     Caution or Critical from a less severe tier. prev is nil on the first
//     refresh, in which case any Caution/Critical reading fires.
//   - Budget crossings: current-month spend at 80% or more of the monthly
//     budget fires budget_80; at 100% or more it fires budget_100 instead.
//     A non-positive budget disables budget events.
//
// Dedup across repeated refreshes is the caller's job via ShouldAlert;
// this function only states which thresholds are currently crossed.
func EvaluateThresholds(prev *model.DashboardSnapshot, curr model.DashboardSnapshot, monthlyBudget, monthSpent float64) []model.ThresholdEvent {
	events := make([]model.ThresholdEvent, 0, 2)

	if event, ok := burnRateEvent(prev, curr); ok {
		events = append(events, event)
	}

	if monthlyBudget > 0 {
		percentage := monthSpent / monthlyBudget * 100

		switch {
		case percentage >= budgetExceedPercentage:
			events = append(events, model.ThresholdEvent{
				ThresholdName: ThresholdBudget100,
				Percentage:    roundTo(percentage, 1),
				Amount:        monthSpent,
			})
		case percentage >= budgetWarnPercentage:
			events = append(events, model.ThresholdEvent{
				ThresholdName: ThresholdBudget80,
				Percentage:    roundTo(percentage, 1),
				Amount:        monthSpent,
			})
		}
	}

	return events
}

func burnRateEvent(prev *model.DashboardSnapshot, curr model.DashboardSnapshot) (model.ThresholdEvent, bool) {
	warning := curr.BurnRate.Warning
	if warning != model.WarningCaution && warning != model.WarningCritical {
		return model.ThresholdEvent{}, false
	}
	if prev != nil && prev.BurnRate.Warning == warning {
		return model.ThresholdEvent{}, false
	}
	// Critical following Caution still fires; only a repeat of the same tier is a non-transition.

	name := ThresholdBurnCaution
	if warning == model.WarningCritical {
		name = ThresholdBurnCritical
	}

	return model.ThresholdEvent{
		ThresholdName: name,
		Percentage:    0,
		Amount:        curr.FinancialTwin.MonthlyExpense,
	}, true
}
