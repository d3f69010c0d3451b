package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
	"github.com/thinktwice/finance-dashboard-backend/internal/service"
	"github.com/thinktwice/finance-dashboard-backend/internal/testutil"
)

// fakeTransactionSource serves a fixed list or an error.
type fakeTransactionSource struct {
	transactions []model.Transaction
	err          error
}

func (f *fakeTransactionSource) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.transactions, nil
}

// sequencedTransactionSource blocks its first fetch until released and
// serves different data to later fetches, to stage overlapping refreshes.
type sequencedTransactionSource struct {
	mu           sync.Mutex
	calls        int
	firstRelease chan struct{}
	first        []model.Transaction
	rest         []model.Transaction
}

func (f *sequencedTransactionSource) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()

	if call == 1 {
		select {
		case <-f.firstRelease:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return f.first, nil
	}
	return f.rest, nil
}

type fakeProfileSource struct {
	profile model.UserProfile
	err     error
}

func (f *fakeProfileSource) GetProfile(ctx context.Context) (model.UserProfile, error) {
	if f.err != nil {
		return model.UserProfile{}, f.err
	}
	return f.profile, nil
}

func expenseOn(id string, amount float64, date string) model.Transaction {
	parsed, _ := time.Parse("2006-01-02", date)
	return model.Transaction{ID: id, Amount: amount, Merchant: "Test Merchant", Category: "Other", Date: parsed}
}

func TestDashboardService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("computes a snapshot from the sources", func(t *testing.T) {
		txSource := &fakeTransactionSource{transactions: []model.Transaction{
			expenseOn("1", -1000, "2026-01-05"),
		}}
		profileSource := &fakeProfileSource{profile: model.UserProfile{
			MonthlyIncome: 5000,
			Savings:       testutil.FloatPtr(3000),
		}}

		svc := service.NewDashboardService(txSource, profileSource)

		snapshot, err := svc.Refresh(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if snapshot.FinancialTwin.MonthlyExpense != 1000 {
			t.Errorf("Expected monthlyExpense 1000, got %v", snapshot.FinancialTwin.MonthlyExpense)
		}
		if snapshot.BurnRate.MonthsLeft != 3.0 {
			t.Errorf("Expected monthsLeft 3.0, got %v", snapshot.BurnRate.MonthsLeft)
		}
	})

	t.Run("first failure yields no snapshot", func(t *testing.T) {
		txSource := &fakeTransactionSource{err: errors.New("connection refused")}
		svc := service.NewDashboardService(txSource, &fakeProfileSource{})

		snapshot, err := svc.Refresh(ctx)

		if snapshot != nil {
			t.Errorf("Expected nil snapshot, got %+v", snapshot)
		}
		if !errors.Is(err, apperrors.ErrNoSnapshot) {
			t.Errorf("Expected ErrNoSnapshot, got %v", err)
		}
	})

	t.Run("fetch failure serves the stale snapshot with the error", func(t *testing.T) {
		txSource := &fakeTransactionSource{transactions: []model.Transaction{
			expenseOn("1", -1000, "2026-01-05"),
		}}
		svc := service.NewDashboardService(txSource, &fakeProfileSource{})

		good, err := svc.Refresh(ctx)
		if err != nil {
			t.Fatalf("Expected first refresh to succeed, got %v", err)
		}

		txSource.err = errors.New("connection refused")

		stale, err := svc.Refresh(ctx)

		if !errors.Is(err, apperrors.ErrFailedToRefreshDashboard) {
			t.Errorf("Expected ErrFailedToRefreshDashboard, got %v", err)
		}
		if stale != good {
			t.Error("Expected the previous good snapshot to be served")
		}
		if svc.Current() != good {
			t.Error("Expected the held snapshot to be unchanged")
		}
	})

	t.Run("recovery replaces the stale snapshot", func(t *testing.T) {
		txSource := &fakeTransactionSource{transactions: []model.Transaction{
			expenseOn("1", -1000, "2026-01-05"),
		}}
		svc := service.NewDashboardService(txSource, &fakeProfileSource{})

		first, _ := svc.Refresh(ctx)

		txSource.err = errors.New("connection refused")
		svc.Refresh(ctx)

		txSource.err = nil
		txSource.transactions = append(txSource.transactions, expenseOn("2", -500, "2026-01-20"))

		recovered, err := svc.Refresh(ctx)
		if err != nil {
			t.Fatalf("Expected recovery to succeed, got %v", err)
		}
		if recovered == first {
			t.Error("Expected a fresh snapshot after recovery")
		}
		if recovered.FinancialTwin.MonthlyExpense != 1500 {
			t.Errorf("Expected monthlyExpense 1500, got %v", recovered.FinancialTwin.MonthlyExpense)
		}
		if svc.Previous() != first {
			t.Error("Expected the replaced snapshot to become previous")
		}
	})

	t.Run("superseded refresh never overwrites a newer result", func(t *testing.T) {
		// The first fetch blocks until released and serves old data; every
		// later fetch completes immediately with new data.
		txSource := &sequencedTransactionSource{
			firstRelease: make(chan struct{}),
			first:        []model.Transaction{expenseOn("1", -1000, "2026-01-05")},
			rest:         []model.Transaction{expenseOn("2", -2000, "2026-01-05")},
		}
		svc := service.NewDashboardService(txSource, &fakeProfileSource{})

		slowDone := make(chan *model.DashboardSnapshot, 1)
		go func() {
			snapshot, _ := svc.Refresh(ctx)
			slowDone <- snapshot
		}()

		// Let the slow refresh claim its sequence number and enter the fetch.
		time.Sleep(20 * time.Millisecond)

		fast, err := svc.Refresh(ctx)
		if err != nil {
			t.Fatalf("Expected fast refresh to succeed, got %v", err)
		}
		if fast.FinancialTwin.MonthlyExpense != 2000 {
			t.Fatalf("Expected fast snapshot, got %v", fast.FinancialTwin.MonthlyExpense)
		}

		// Release the slow refresh; its stale result must be discarded.
		close(txSource.firstRelease)
		slow := <-slowDone

		if slow.FinancialTwin.MonthlyExpense != 2000 {
			t.Errorf("Expected slow refresh to return the newer snapshot, got %v", slow.FinancialTwin.MonthlyExpense)
		}
		if svc.Current().FinancialTwin.MonthlyExpense != 2000 {
			t.Errorf("Expected held snapshot from the newer refresh, got %v", svc.Current().FinancialTwin.MonthlyExpense)
		}
	})
}

func TestDashboardService_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("computes on demand when nothing is held", func(t *testing.T) {
		txSource := &fakeTransactionSource{transactions: []model.Transaction{
			expenseOn("1", -100, "2026-01-05"),
		}}
		svc := service.NewDashboardService(txSource, &fakeProfileSource{})

		snapshot, err := svc.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if snapshot == nil {
			t.Fatal("Expected a snapshot")
		}
	})

	t.Run("serves the held snapshot without refetching", func(t *testing.T) {
		txSource := &fakeTransactionSource{transactions: []model.Transaction{
			expenseOn("1", -100, "2026-01-05"),
		}}
		svc := service.NewDashboardService(txSource, &fakeProfileSource{})

		first, _ := svc.Refresh(ctx)

		// Breaking the source must not matter for reads.
		txSource.err = errors.New("connection refused")

		snapshot, err := svc.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if snapshot != first {
			t.Error("Expected the held snapshot")
		}
	})
}

func TestDashboardService_AgainstDatabase(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)

	testutil.CreateExpense(t, db, 1000, "2026-01-05")
	testutil.CreateExpense(t, db, 500, "2026-01-20")
	testutil.CreateIncome(t, db, 5000, "2026-01-25")
	testutil.CreateProfile(t, db, 5000, testutil.FloatPtr(3000), 2000)

	svc := testutil.NewTestDashboardService(t, db)

	snapshot, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if snapshot.TotalExpense != 1500 {
		t.Errorf("Expected totalExpense 1500, got %v", snapshot.TotalExpense)
	}
	if snapshot.TotalIncome != 5000 {
		t.Errorf("Expected totalIncome 5000, got %v", snapshot.TotalIncome)
	}
	if snapshot.FinancialTwin.RunwayMonths != 2.0 {
		t.Errorf("Expected runwayMonths 2.0, got %v", snapshot.FinancialTwin.RunwayMonths)
	}
	if snapshot.FinancialTwin.Risk != model.RiskMedium {
		t.Errorf("Expected risk MEDIUM, got %s", snapshot.FinancialTwin.Risk)
	}
}
