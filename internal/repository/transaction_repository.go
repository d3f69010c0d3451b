package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// TransactionRepository provides data access methods for the transaction
// table. Rows hold canonical transactions only: the normalizer runs before
// anything is persisted.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// ListTransactions retrieves all transactions sorted by date ascending.
// Returns an empty slice, never nil, when no transactions exist.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	query := `
		SELECT id, amount, merchant, category, date, created_at
		FROM "transaction"
		ORDER BY date ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := make([]model.Transaction, 0)

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by ID.
// Returns apperrors.ErrTransactionNotFound if no row exists.
func (r *TransactionRepository) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	query := `
		SELECT id, amount, merchant, category, date, created_at
		FROM "transaction"
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, apperrors.ErrTransactionNotFound
		}
		return model.Transaction{}, err
	}

	return tx, nil
}

// InsertTransaction persists one canonical transaction.
// Returns apperrors.ErrDuplicateEntry when the ID is already taken.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, tx model.Transaction) error {
	query := `
		INSERT INTO "transaction" (id, amount, merchant, category, date)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.Amount, tx.Merchant, tx.Category, tx.Date.Format("2006-01-02"))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicateEntry, tx.ID)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// InsertTransactions persists a batch of canonical transactions in one
// database transaction so a failed bulk import leaves no partial rows.
func (r *TransactionRepository) InsertTransactions(ctx context.Context, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
		INSERT INTO "transaction" (id, amount, merchant, category, date)
		VALUES (?, ?, ?, ?, ?)
	`

	for _, tx := range transactions {
		_, err := dbTx.ExecContext(ctx, query,
			tx.ID, tx.Amount, tx.Merchant, tx.Category, tx.Date.Format("2006-01-02"))
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", tx.ID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction batch: %w", err)
	}

	return nil
}

// DeleteTransaction removes a transaction by ID.
// Returns apperrors.ErrTransactionNotFound if no row was deleted.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (model.Transaction, error) {
	var tx model.Transaction
	var dateStr string
	var createdAtStr sql.NullString

	err := row.Scan(&tx.ID, &tx.Amount, &tx.Merchant, &tx.Category, &dateStr, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Transaction{}, err
		}
		return model.Transaction{}, fmt.Errorf("failed to scan transaction row: %w", err)
	}

	tx.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if createdAtStr.Valid {
		tx.CreatedAt, err = ParseTime(createdAtStr.String)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("failed to parse created_at: %w", err)
		}
	}

	return tx, nil
}
