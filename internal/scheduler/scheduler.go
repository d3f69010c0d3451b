// Package scheduler runs the periodic dashboard refresh and alert sweep.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/thinktwice/finance-dashboard-backend/internal/service"
)

const sweepTimeout = 30 * time.Second

// Scheduler wraps a cron runner that refreshes the dashboard on a fixed
// schedule and evaluates threshold alerts against the new snapshot.
type Scheduler struct {
	cron *cron.Cron
}

// New creates a Scheduler that refreshes on the given cron spec
// (e.g. "@hourly").
func New(spec string, dashboards *service.DashboardService, alerts *service.AlertService) (*Scheduler, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()

		previous := dashboards.Current()

		snapshot, err := dashboards.Refresh(ctx)
		if err != nil {
			log.Printf("scheduled refresh failed: %v", err)
			return
		}

		sent, err := alerts.Evaluate(ctx, previous, *snapshot)
		if err != nil {
			log.Printf("alert evaluation failed: %v", err)
			return
		}
		if len(sent) > 0 {
			log.Printf("sent %d threshold alert(s)", len(sent))
		}
	})
	if err != nil {
		return nil, err
	}

	return &Scheduler{cron: c}, nil
}

// Start begins running the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the schedule and waits for any in-flight sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
