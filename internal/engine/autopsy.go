package engine

import (
	"math"
	"sort"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// AutopsyReportSize is the maximum number of entries in an autopsy report.
const AutopsyReportSize = 5

// AutopsyReason is the fixed v1 explanation attached to every entry. A
// computed per-entry explanation is a future extension point.
const AutopsyReason = "High-impact expense"

// RunFinancialAutopsy ranks the largest individual expenses. It filters the
// list to expenses, sorts descending by absolute amount, and returns at
// most AutopsyReportSize entries with dense 1-based ranks.
//
// The sort is stable: two expenses of equal magnitude keep their relative
// input order, since no secondary key is defined. An input with no expenses
// yields an empty (non-nil) report.
func RunFinancialAutopsy(transactions []model.Transaction) []model.AutopsyEntry {
	expenses := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsExpense() {
			expenses = append(expenses, tx)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return math.Abs(expenses[i].Amount) > math.Abs(expenses[j].Amount)
	})

	if len(expenses) > AutopsyReportSize {
		expenses = expenses[:AutopsyReportSize]
	}

	report := make([]model.AutopsyEntry, len(expenses))
	for i, expense := range expenses {
		report[i] = model.AutopsyEntry{
			Rank:     i + 1,
			Merchant: expense.Merchant,
			Amount:   expense.Amount,
			Date:     expense.Date,
			Reason:   AutopsyReason,
		}
	}

	return report
}
