package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// SimulateAlternateLife recomputes total spend as if the transaction with
// removedID had never happened. The input list is not mutated; removing an
// unknown ID simply yields the unchanged total.
func SimulateAlternateLife(transactions []model.Transaction, removedID string) model.Counterfactual {
	var totalSpent float64
	for _, tx := range transactions {
		if tx.ID == removedID || !tx.IsExpense() {
			continue
		}
		totalSpent += math.Abs(tx.Amount)
	}
	totalSpent = roundTo(totalSpent, 2)

	return model.Counterfactual{
		TotalSpent: totalSpent,
		Message: fmt.Sprintf("Total spent without transaction %s: %s",
			removedID, strconv.FormatFloat(totalSpent, 'f', -1, 64)),
	}
}
