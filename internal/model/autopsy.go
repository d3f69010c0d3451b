package model

import "time"

// AutopsyEntry is one row of the "most damaging transactions" report.
// Rank is 1-based and dense; Amount keeps the original signed (negative)
// value so consumers can render it consistently with the transaction list.
type AutopsyEntry struct {
	Rank     int       `json:"rank"`
	Merchant string    `json:"merchant"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Reason   string    `json:"reason"`
}

// Counterfactual is the result of removing one transaction from the ledger
// and recomputing total spend.
type Counterfactual struct {
	TotalSpent float64 `json:"totalSpent"`
	Message    string  `json:"message"`
}
