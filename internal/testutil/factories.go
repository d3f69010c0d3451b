package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// MakeID generates a unique ID for test entities.
func MakeID() string {
	return uuid.NewString()
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple expense with defaults
//	tx := testutil.NewTransaction().Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    WithAmount(-1200).
//	    WithMerchant("Rent Corp").
//	    WithDate("2026-03-01").
//	    Build(t, db)
type TransactionBuilder struct {
	ID       string
	Amount   float64
	Merchant string
	Category string
	Date     string
}

// NewTransaction creates a TransactionBuilder with sensible defaults
// (an expense of 100 dated 2026-01-15).
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		ID:       MakeID(),
		Amount:   -100,
		Merchant: "Test Merchant",
		Category: "Other",
		Date:     "2026-01-15",
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// WithAmount sets a custom signed amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithMerchant sets a custom merchant.
func (b *TransactionBuilder) WithMerchant(merchant string) *TransactionBuilder {
	b.Merchant = merchant
	return b
}

// WithCategory sets a custom category.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// WithDate sets a custom date in YYYY-MM-DD format.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, amount, merchant, category, date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Amount, b.Merchant, b.Category, b.Date)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Invalid test transaction date: %v", err)
	}

	return model.Transaction{
		ID:       b.ID,
		Amount:   b.Amount,
		Merchant: b.Merchant,
		Category: b.Category,
		Date:     date.UTC(),
	}
}

// Convenience functions

// CreateExpense creates an expense transaction with the given absolute
// amount and date.
func CreateExpense(t *testing.T, db *sql.DB, amount float64, date string) model.Transaction {
	t.Helper()
	if amount > 0 {
		amount = -amount
	}
	return NewTransaction().WithAmount(amount).WithDate(date).Build(t, db)
}

// CreateIncome creates an income transaction with the given amount and date.
func CreateIncome(t *testing.T, db *sql.DB, amount float64, date string) model.Transaction {
	t.Helper()
	return NewTransaction().WithAmount(amount).WithMerchant("Employer").WithCategory("Salary").WithDate(date).Build(t, db)
}

// CreateProfile creates a user profile row with the given scalars.
// Pass nil savings for a profile that does not track a balance.
func CreateProfile(t *testing.T, db *sql.DB, income float64, savings *float64, budget float64) model.UserProfile {
	t.Helper()

	profile := model.UserProfile{
		ID:            MakeID(),
		Name:          "Test User",
		MonthlyIncome: income,
		Savings:       savings,
		MonthlyBudget: budget,
	}

	var savingsValue any
	if savings != nil {
		savingsValue = *savings
	}

	query := `
		INSERT INTO user_profile (id, name, monthly_income, savings_balance, monthly_budget)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, profile.ID, profile.Name, profile.MonthlyIncome, savingsValue, profile.MonthlyBudget)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return profile
}

// FloatPtr returns a pointer to the given float, for optional savings fields.
func FloatPtr(v float64) *float64 {
	return &v
}
