package testutil

import (
	"database/sql"
	"testing"

	"github.com/thinktwice/finance-dashboard-backend/internal/config"
	"github.com/thinktwice/finance-dashboard-backend/internal/repository"
	"github.com/thinktwice/finance-dashboard-backend/internal/service"
)

// Default profile fallbacks used by test services when no profile row exists.
var TestProfileDefaults = config.ProfileConfig{
	MonthlyIncome: 50000,
	Savings:       60000,
	MonthlyBudget: 20000,
}

// NewTestTransactionService builds a TransactionService backed by the given test database.
func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()
	return service.NewTransactionService(repository.NewTransactionRepository(db))
}

// NewTestProfileService builds a ProfileService backed by the given test
// database, with phone encryption disabled.
func NewTestProfileService(t *testing.T, db *sql.DB) *service.ProfileService {
	t.Helper()

	profileRepo, err := repository.NewProfileRepository(db, "")
	if err != nil {
		t.Fatalf("Failed to create profile repository: %v", err)
	}

	return service.NewProfileService(profileRepo, TestProfileDefaults)
}

// NewTestDashboardService builds a DashboardService wired to test-backed
// transaction and profile services.
func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()
	return service.NewDashboardService(
		NewTestTransactionService(t, db),
		NewTestProfileService(t, db),
	)
}

// NewTestAlertService builds an AlertService using the given notifier.
func NewTestAlertService(t *testing.T, db *sql.DB, notifier service.Notifier) *service.AlertService {
	t.Helper()
	return service.NewAlertService(
		repository.NewAlertRepository(db),
		NewTestProfileService(t, db),
		notifier,
	)
}
