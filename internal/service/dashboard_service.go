package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// TransactionSource supplies the canonical transaction list for one
// analytics pass. *TransactionService satisfies it; tests substitute fakes.
type TransactionSource interface {
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
}

// ProfileSource supplies the declared income/savings scalars.
type ProfileSource interface {
	GetProfile(ctx context.Context) (model.UserProfile, error)
}

// DashboardService is the aggregator: it fetches the transaction list and
// profile, runs the analytics engine, and retains the resulting snapshot.
//
// Two deliberate policies govern refreshes:
//
//   - Fail soft: when a fetch fails, the most recent successfully computed
//     snapshot keeps being served alongside the error, so a transient blip
//     never flickers the dashboard to empty.
//   - Last writer by request order: concurrent refreshes each run a full
//     fetch-and-recompute cycle, but a refresh that was superseded before
//     completing never overwrites the snapshot of a newer request, even if
//     its response arrives later.
type DashboardService struct {
	transactions TransactionSource
	profiles     ProfileSource
	now          func() time.Time

	mu       sync.Mutex
	nextSeq  uint64
	applied  uint64
	current  *model.DashboardSnapshot
	previous *model.DashboardSnapshot
}

// NewDashboardService creates a new DashboardService with the provided sources.
func NewDashboardService(transactions TransactionSource, profiles ProfileSource) *DashboardService {
	return &DashboardService{
		transactions: transactions,
		profiles:     profiles,
		now:          time.Now,
	}
}

// Snapshot returns the current snapshot, computing the first one on demand.
// When a snapshot exists it is returned immediately without refetching.
func (s *DashboardService) Snapshot(ctx context.Context) (*model.DashboardSnapshot, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current != nil {
		return current, nil
	}
	return s.Refresh(ctx)
}

// Current returns the held snapshot without triggering a fetch; nil when
// nothing has been computed yet. The alerting sweep captures it before a
// refresh to detect warning-tier transitions.
func (s *DashboardService) Current() *model.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Previous returns the snapshot that the current one replaced, or nil on
// the first cycle.
func (s *DashboardService) Previous() *model.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previous
}

// Refresh runs one fetch-and-recompute cycle and atomically replaces the
// held snapshot.
//
// On fetch failure the last good snapshot is returned together with the
// error; callers surface the error for display while still rendering data.
// If no snapshot has ever been computed, the error wraps
// apperrors.ErrNoSnapshot.
func (s *DashboardService) Refresh(ctx context.Context) (*model.DashboardSnapshot, error) {
	s.mu.Lock()
	s.nextSeq++
	seq := s.nextSeq
	s.mu.Unlock()

	var transactions []model.Transaction
	var profile model.UserProfile

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.transactions.ListTransactions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = s.profiles.GetProfile(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.mu.Lock()
		stale := s.current
		s.mu.Unlock()

		if stale == nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrNoSnapshot, err)
		}
		return stale, fmt.Errorf("%w: %w", apperrors.ErrFailedToRefreshDashboard, err)
	}

	snapshot := engine.Aggregate(transactions, profile, s.now().UTC())

	s.mu.Lock()
	defer s.mu.Unlock()

	// A refresh that started after this one already applied; discard this
	// result rather than letting a late arrival win.
	if seq > s.applied {
		s.applied = seq
		s.previous = s.current
		s.current = &snapshot
	}

	return s.current, nil
}
