package engine

import (
	"math"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// Runway thresholds (in months) for the twin risk classification.
const (
	riskHighBelowMonths   = 2.0
	riskMediumBelowMonths = 6.0
)

// BuildFinancialTwin computes the financial-twin snapshot from the
// canonical transaction list plus declared monthly income and savings.
//
// Calculation:
//  1. Expenses (amount < 0) are bucketed by calendar month and summed as
//     absolute values per bucket.
//  2. MonthlyExpense is the arithmetic mean of the bucket totals — not of
//     per-transaction amounts — which normalizes for months with more or
//     fewer transactions. Months with no expense transactions are not
//     zero-filled, so sparse histories can overstate the average; that is a
//     known approximation, not a bug to fix here.
//  3. RunwayMonths is savings divided by MonthlyExpense. With no spending
//     history, runway is +Inf when savings exist and 0 otherwise: no
//     spending is treated optimistically only when there is something to
//     burn through.
//  4. Risk: runway < 2 months is HIGH, < 6 is MEDIUM, otherwise LOW.
//
// MonthlyExpense is rounded to 2 decimal places and RunwayMonths to 1.
// Income is carried in the contract for forward compatibility but does not
// enter the classification. Negative income or savings are computed through
// mechanically rather than rejected.
func BuildFinancialTwin(transactions []model.Transaction, income, savings float64) model.FinancialTwin {
	_ = income

	expensesByMonth := make(map[string]float64)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			continue
		}
		expensesByMonth[MonthKey(tx.Date)] += math.Abs(tx.Amount)
	}

	if len(expensesByMonth) == 0 {
		return model.FinancialTwin{
			MonthlyExpense: 0,
			RunwayMonths:   zeroExpenseRunway(savings),
			Risk:           zeroExpenseRisk(savings),
		}
	}

	var total float64
	for _, monthTotal := range expensesByMonth {
		total += monthTotal
	}
	monthlyExpense := total / float64(len(expensesByMonth))

	runwayMonths := zeroExpenseRunway(savings)
	if monthlyExpense > 0 {
		runwayMonths = savings / monthlyExpense
	}

	return model.FinancialTwin{
		MonthlyExpense: roundTo(monthlyExpense, 2),
		RunwayMonths:   roundTo(runwayMonths, 1),
		Risk:           classifyRisk(runwayMonths),
	}
}

// classifyRisk maps runway months to the three-tier risk level.
func classifyRisk(runwayMonths float64) model.RiskLevel {
	switch {
	case runwayMonths < riskHighBelowMonths:
		return model.RiskHigh
	case runwayMonths < riskMediumBelowMonths:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

func zeroExpenseRunway(savings float64) float64 {
	if savings > 0 {
		return math.Inf(1)
	}
	return 0
}

func zeroExpenseRisk(savings float64) model.RiskLevel {
	if savings > 0 {
		return model.RiskLow
	}
	return model.RiskHigh
}
