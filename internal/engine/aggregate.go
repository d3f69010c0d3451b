package engine

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// Aggregate produces a complete dashboard snapshot from one canonical
// transaction list and the user profile. This is the pure half of the
// aggregator: fetching and snapshot retention live in the dashboard
// service.
//
// Totals are summed with exact decimal arithmetic before conversion:
// totalExpense is the sum of absolute values of negative amounts,
// totalIncome the sum of positive amounts, netBalance their difference.
// When the profile does not track a savings balance, savings falls back to
// the net balance.
func Aggregate(transactions []model.Transaction, profile model.UserProfile, at time.Time) model.DashboardSnapshot {
	totalIncome := decimal.Zero
	totalExpense := decimal.Zero

	for _, tx := range transactions {
		amount := decimal.NewFromFloat(tx.Amount)
		if tx.IsExpense() {
			totalExpense = totalExpense.Add(amount.Abs())
		} else if tx.Amount > 0 {
			totalIncome = totalIncome.Add(amount)
		}
	}

	netBalance := totalIncome.Sub(totalExpense)

	savings := netBalance.InexactFloat64()
	if profile.Savings != nil {
		savings = *profile.Savings
	}

	twin := BuildFinancialTwin(transactions, profile.MonthlyIncome, savings)
	burnRate := CalculateBurnRate(twin.MonthlyExpense, savings)
	autopsyReport := RunFinancialAutopsy(transactions)

	return model.DashboardSnapshot{
		FinancialTwin: twin,
		BurnRate:      burnRate,
		AutopsyReport: autopsyReport,
		TotalIncome:   totalIncome.Round(2).InexactFloat64(),
		TotalExpense:  totalExpense.Round(2).InexactFloat64(),
		NetBalance:    netBalance.Round(2).InexactFloat64(),
		Savings:       savings,
		Transactions:  transactions,
		GeneratedAt:   at,
	}
}

// MonthExpense sums the absolute expense amounts for one year-month bucket.
// Used by the alerting sweep to measure current-month spend against budget.
func MonthExpense(transactions []model.Transaction, monthKey string) float64 {
	var total float64
	for _, tx := range transactions {
		if tx.IsExpense() && MonthKey(tx.Date) == monthKey {
			total += math.Abs(tx.Amount)
		}
	}
	return roundTo(total, 2)
}
