package model

import "time"

// DashboardSnapshot is the aggregation root handed to presentation
// consumers. It is computed wholesale from one canonical transaction list
// plus the user profile and replaced atomically on refresh; consumers must
// never merge fields from two snapshots.
type DashboardSnapshot struct {
	FinancialTwin FinancialTwin  `json:"financialTwin"`
	BurnRate      BurnRate       `json:"burnRate"`
	AutopsyReport []AutopsyEntry `json:"autopsyReport"`
	TotalIncome   float64        `json:"totalIncome"`
	TotalExpense  float64        `json:"totalExpense"`
	NetBalance    float64        `json:"netBalance"`
	Savings       float64        `json:"savings"`
	Transactions  []Transaction  `json:"transactions"`
	GeneratedAt   time.Time      `json:"generatedAt"`
}
