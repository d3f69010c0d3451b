package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// AlertRepository persists which threshold alerts fired in which calendar
// month. It backs the engine's explicit AlertHistory value so dedup state
// survives restarts.
type AlertRepository struct {
	db *sql.DB
}

// NewAlertRepository creates a new AlertRepository with the provided database connection.
func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// LoadHistory loads the alert history for one calendar month ("2006-01")
// as an engine-consumable AlertHistory value.
func (r *AlertRepository) LoadHistory(ctx context.Context, month string) (model.AlertHistory, error) {
	query := `SELECT month, threshold_name FROM alert_history WHERE month = ?`

	rows, err := r.db.QueryContext(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert_history table: %w", err)
	}
	defer rows.Close()

	history := make(model.AlertHistory)

	for rows.Next() {
		var rowMonth, threshold string
		if err := rows.Scan(&rowMonth, &threshold); err != nil {
			return nil, fmt.Errorf("failed to scan alert_history row: %w", err)
		}
		history[threshold+"_"+rowMonth] = true
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert_history table: %w", err)
	}

	return history, nil
}

// RecordAlert marks a threshold as fired for the month. Recording the same
// month/threshold pair twice is a no-op thanks to the unique constraint.
func (r *AlertRepository) RecordAlert(ctx context.Context, month, thresholdName string) error {
	query := `
		INSERT INTO alert_history (id, month, threshold_name)
		VALUES (?, ?, ?)
		ON CONFLICT(month, threshold_name) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, uuid.NewString(), month, thresholdName)
	if err != nil {
		return fmt.Errorf("failed to insert alert_history row: %w", err)
	}

	return nil
}

// ListAlerts returns all persisted alert records, newest first.
func (r *AlertRepository) ListAlerts(ctx context.Context) ([]model.AlertRecord, error) {
	query := `SELECT id, month, threshold_name, sent_at FROM alert_history ORDER BY sent_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alert_history table: %w", err)
	}
	defer rows.Close()

	records := make([]model.AlertRecord, 0)

	for rows.Next() {
		var record model.AlertRecord
		var sentAt sql.NullString

		if err := rows.Scan(&record.ID, &record.Month, &record.ThresholdName, &sentAt); err != nil {
			return nil, fmt.Errorf("failed to scan alert_history row: %w", err)
		}

		if sentAt.Valid {
			record.SentAt, err = ParseTime(sentAt.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse sent_at: %w", err)
			}
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert_history table: %w", err)
	}

	return records, nil
}
