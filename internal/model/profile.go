package model

import "time"

// UserProfile holds the declared financial scalars the analytics engine
// consumes alongside the transaction list.
//
// Savings is nil when the user does not track a balance independently; the
// aggregator then derives it as totalIncome - totalExpense. Negative income
// or savings are accepted as-is (overdraft is a valid transient state).
type UserProfile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	MonthlyIncome float64   `json:"monthlyIncome"`
	Savings       *float64  `json:"savings"`
	MonthlyBudget float64   `json:"monthlyBudget"`
	Phone         string    `json:"phone,omitempty"`
	UpdatedAt     time.Time `json:"updatedAt,omitempty"`
}
