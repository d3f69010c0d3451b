package engine_test

import (
	"testing"

	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

func TestRunFinancialAutopsy(t *testing.T) {
	t.Run("ranks expenses by magnitude with stable ties", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("a", -100, "2026-01-01"),
			tx("b", -500, "2026-01-02"),
			tx("c", -500, "2026-01-03"),
			tx("d", -50, "2026-01-04"),
		}

		report := engine.RunFinancialAutopsy(transactions)

		if len(report) != 4 {
			t.Fatalf("Expected 4 entries, got %d", len(report))
		}

		// The two -500 expenses keep their input order.
		expectedAmounts := []float64{-500, -500, -100, -50}
		for i, expected := range expectedAmounts {
			if report[i].Amount != expected {
				t.Errorf("Expected amount %v at rank %d, got %v", expected, i+1, report[i].Amount)
			}
			if report[i].Rank != i+1 {
				t.Errorf("Expected rank %d, got %d", i+1, report[i].Rank)
			}
		}

		if !report[0].Date.Before(report[1].Date) {
			t.Errorf("Expected tied entries in input order, got dates %v and %v", report[0].Date, report[1].Date)
		}
	})

	t.Run("ignores income transactions", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("a", 5000, "2026-01-01"),
			tx("b", -200, "2026-01-02"),
		}

		report := engine.RunFinancialAutopsy(transactions)

		if len(report) != 1 {
			t.Fatalf("Expected 1 entry, got %d", len(report))
		}
		if report[0].Amount != -200 {
			t.Errorf("Expected amount -200, got %v", report[0].Amount)
		}
	})

	t.Run("caps the report at five entries", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("a", -10, "2026-01-01"),
			tx("b", -20, "2026-01-02"),
			tx("c", -30, "2026-01-03"),
			tx("d", -40, "2026-01-04"),
			tx("e", -50, "2026-01-05"),
			tx("f", -60, "2026-01-06"),
			tx("g", -70, "2026-01-07"),
		}

		report := engine.RunFinancialAutopsy(transactions)

		if len(report) != engine.AutopsyReportSize {
			t.Fatalf("Expected %d entries, got %d", engine.AutopsyReportSize, len(report))
		}
		if report[0].Amount != -70 {
			t.Errorf("Expected largest expense first, got %v", report[0].Amount)
		}
		if report[4].Amount != -30 {
			t.Errorf("Expected -30 at rank 5, got %v", report[4].Amount)
		}
	})

	t.Run("no expenses yields an empty non-nil report", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("a", 5000, "2026-01-01"),
		}

		report := engine.RunFinancialAutopsy(transactions)

		if report == nil {
			t.Fatal("Expected non-nil report")
		}
		if len(report) != 0 {
			t.Errorf("Expected empty report, got %d entries", len(report))
		}
	})

	t.Run("every entry carries the fixed reason", func(t *testing.T) {
		transactions := []model.Transaction{
			tx("a", -100, "2026-01-01"),
			tx("b", -200, "2026-01-02"),
		}

		for _, entry := range engine.RunFinancialAutopsy(transactions) {
			if entry.Reason != engine.AutopsyReason {
				t.Errorf("Expected reason %q, got %q", engine.AutopsyReason, entry.Reason)
			}
		}
	})
}
