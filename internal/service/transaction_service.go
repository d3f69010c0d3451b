package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/thinktwice/finance-dashboard-backend/internal/apperrors"
	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
	"github.com/thinktwice/finance-dashboard-backend/internal/model"
	"github.com/thinktwice/finance-dashboard-backend/internal/repository"
)

// TransactionService is the normalization boundary of the system: every
// transaction, whether manually entered or bulk-imported, passes through
// engine.Normalize exactly once before persistence. Downstream consumers
// only ever see canonical signed-amount transactions.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependency.
func NewTransactionService(transactionRepo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// ImportResult reports the outcome of a bulk import: rows persisted and
// rows dropped by the normalizer.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ListTransactions returns all canonical transactions sorted by date.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx)
}

// GetTransaction returns a single transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(ctx, id)
}

// CreateTransaction normalizes and persists one manually entered record.
// A record the normalizer would drop is rejected with ErrInvalidDate or
// ErrInvalidAmount since a single manual entry, unlike a bulk import row,
// has no batch to hide in.
func (s *TransactionService) CreateTransaction(ctx context.Context, raw model.RawTransaction) (model.Transaction, error) {
	if _, err := engine.ParseDate(strings.TrimSpace(raw.Date)); err != nil {
		return model.Transaction{}, apperrors.ErrInvalidDate
	}

	transactions, skipped := engine.Normalize([]model.RawTransaction{raw})
	if skipped > 0 || len(transactions) == 0 {
		return model.Transaction{}, apperrors.ErrInvalidAmount
	}

	tx := transactions[0]
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	if err := s.transactionRepo.InsertTransaction(ctx, tx); err != nil {
		return model.Transaction{}, err
	}

	return tx, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.transactionRepo.DeleteTransaction(ctx, id)
}

// ImportCSV reads a CSV export, normalizes every row, and persists the
// surviving transactions in one batch. Rows with unparseable amounts or
// dates are skipped and counted, not fatal.
//
// Required columns (case-insensitive): date, amount. Recognized optional
// columns: id, merchant (or description/name), category, type (or rawtype).
func (s *TransactionService) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidCSVHeaders, err)
	}

	columns, err := mapCSVColumns(header)
	if err != nil {
		return ImportResult{}, err
	}

	var raws []model.RawTransaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return ImportResult{}, fmt.Errorf("failed to read CSV row: %w", err)
		}
		raws = append(raws, rawFromCSVRecord(record, columns))
	}

	transactions, skipped := engine.Normalize(raws)
	for i := range transactions {
		if transactions[i].ID == "" {
			transactions[i].ID = uuid.NewString()
		}
	}

	if err := s.transactionRepo.InsertTransactions(ctx, transactions); err != nil {
		return ImportResult{}, err
	}

	return ImportResult{Imported: len(transactions), Skipped: skipped}, nil
}

// csvColumns maps canonical field names to column indexes; -1 means absent.
type csvColumns struct {
	id       int
	date     int
	amount   int
	merchant int
	category int
	rawType  int
}

func mapCSVColumns(header []string) (csvColumns, error) {
	columns := csvColumns{id: -1, date: -1, amount: -1, merchant: -1, category: -1, rawType: -1}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			columns.id = i
		case "date":
			columns.date = i
		case "amount":
			columns.amount = i
		case "merchant", "description", "name":
			columns.merchant = i
		case "category":
			columns.category = i
		case "type", "rawtype":
			columns.rawType = i
		}
	}

	if columns.date == -1 || columns.amount == -1 {
		return csvColumns{}, fmt.Errorf("%w: date and amount columns are required", apperrors.ErrInvalidCSVHeaders)
	}

	return columns, nil
}

func rawFromCSVRecord(record []string, columns csvColumns) model.RawTransaction {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	return model.RawTransaction{
		ID:       field(columns.id),
		Date:     field(columns.date),
		Amount:   field(columns.amount),
		Merchant: field(columns.merchant),
		Category: field(columns.category),
		RawType:  field(columns.rawType),
	}
}
