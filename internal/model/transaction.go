package model

import "time"

// RawTransaction is a transaction record as supplied by an upstream source
// (manual entry, CSV import). Field sets vary between sources: some supply a
// signed amount, others an unsigned amount plus a debit/credit indicator.
// The engine normalizer absorbs that variance; nothing downstream of it
// should ever see a RawTransaction.
type RawTransaction struct {
	ID       string `json:"id,omitempty"`
	Amount   string `json:"amount"`
	RawType  string `json:"rawType,omitempty"`
	Merchant string `json:"merchant,omitempty"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date"`
}

// Transaction is the canonical transaction record. The sign of Amount
// encodes direction: negative is an outflow (expense), positive an inflow
// (income). Merchant and Category are never empty after normalization.
type Transaction struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Merchant  string    `json:"merchant"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount < 0
}
