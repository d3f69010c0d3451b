package engine

import (
	"math"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// MonthsLeft thresholds for the burn-rate warning tiers.
const (
	warningCriticalBelowMonths = 3.0
	warningCautionBelowMonths  = 6.0
)

// CalculateBurnRate projects months of runway from a monthly expense figure
// and a savings balance, with a three-tier warning: months left < 3 is
// Critical, < 6 is Caution, otherwise Safe. MonthsLeft is rounded to 1
// decimal place.
//
// Zero-division policy: monthlyExpense <= 0 yields MonthsLeft = +Inf and
// Safe when savings are positive, mirroring the financial twin's treatment
// of an empty spending history; without savings it yields 0 and Critical.
// A "0 months left" reading for zero expenses would be financially
// backwards, so that interpretation is explicitly ruled out.
func CalculateBurnRate(monthlyExpense, savings float64) model.BurnRate {
	if monthlyExpense <= 0 {
		if savings > 0 {
			return model.BurnRate{MonthsLeft: math.Inf(1), Warning: model.WarningSafe}
		}
		return model.BurnRate{MonthsLeft: 0, Warning: model.WarningCritical}
	}

	monthsLeft := savings / monthlyExpense

	return model.BurnRate{
		MonthsLeft: roundTo(monthsLeft, 1),
		Warning:    classifyWarning(monthsLeft),
	}
}

// classifyWarning maps months of runway to the warning tier.
func classifyWarning(monthsLeft float64) model.WarningLevel {
	switch {
	case monthsLeft < warningCriticalBelowMonths:
		return model.WarningCritical
	case monthsLeft < warningCautionBelowMonths:
		return model.WarningCaution
	default:
		return model.WarningSafe
	}
}
