package service

import (
	"context"
	"fmt"
	"log"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
	"github.com/thinktwice/finance-dashboard-backend/internal/repository"
)

// Notifier delivers a threshold-crossing fact to the outside world. The
// core only supplies the fact; delivery, retries and channel choice
// (WhatsApp, email, webhook) belong to the external collaborator behind
// this interface.
type Notifier interface {
	Notify(ctx context.Context, event model.ThresholdEvent) error
}

// LogNotifier is the default Notifier: it records the fact in the server
// log and delivers nothing.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(_ context.Context, event model.ThresholdEvent) error {
	log.Printf("threshold alert: %s (%.1f%%, amount %.2f)",
		event.ThresholdName, event.Percentage, event.Amount)
	return nil
}

// AlertService evaluates threshold crossings after each dashboard refresh
// and forwards new facts to the Notifier, deduplicating per calendar month
// through the persisted alert history.
type AlertService struct {
	alertRepo *repository.AlertRepository
	profiles  ProfileSource
	notifier  Notifier
}

// NewAlertService creates a new AlertService with the provided dependencies.
func NewAlertService(alertRepo *repository.AlertRepository, profiles ProfileSource, notifier Notifier) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		profiles:  profiles,
		notifier:  notifier,
	}
}

// Evaluate inspects one refresh result and emits every threshold fact that
// has not already fired this month. Returns the events actually sent.
//
// Evaluation is pure (engine.EvaluateThresholds, engine.ShouldAlert); this
// method only supplies the persisted history and performs the sends.
func (s *AlertService) Evaluate(ctx context.Context, previous *model.DashboardSnapshot, current model.DashboardSnapshot) ([]model.ThresholdEvent, error) {
	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	month := engine.MonthKey(current.GeneratedAt)
	monthSpent := engine.MonthExpense(current.Transactions, month)

	events := engine.EvaluateThresholds(previous, current, profile.MonthlyBudget, monthSpent)
	if len(events) == 0 {
		return nil, nil
	}

	history, err := s.alertRepo.LoadHistory(ctx, month)
	if err != nil {
		return nil, err
	}

	sent := make([]model.ThresholdEvent, 0, len(events))

	for _, event := range events {
		if !engine.ShouldAlert(history, month, event.ThresholdName) {
			continue
		}

		if err := s.notifier.Notify(ctx, event); err != nil {
			// Delivery failure leaves the history unmarked so the alert can
			// retry on the next sweep.
			log.Printf("failed to deliver %s alert: %v", event.ThresholdName, err)
			continue
		}

		if err := s.alertRepo.RecordAlert(ctx, month, event.ThresholdName); err != nil {
			return sent, fmt.Errorf("%w (%s): %w", apperrors.ErrFailedToRecordAlert, event.ThresholdName, err)
		}
		history = engine.RecordAlert(history, month, event.ThresholdName)
		sent = append(sent, event)
	}

	return sent, nil
}

// History returns all persisted alert records, newest first.
func (s *AlertService) History(ctx context.Context) ([]model.AlertRecord, error) {
	return s.alertRepo.ListAlerts(ctx)
}
