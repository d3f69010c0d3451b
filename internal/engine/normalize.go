package engine

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thinktwice/finance-dashboard-backend/internal/model"
)

// Defaults applied when optional raw fields are absent.
const (
	DefaultMerchant = "Unknown"
	DefaultCategory = "Other"
)

var errEmptyAmount = errors.New("empty amount")

// Normalize converts heterogeneous raw records into canonical transactions.
// It returns the canonical list plus a count of rows that were dropped
// because their amount or date could not be parsed. Dropping is deliberate:
// bulk imports may contain partial garbage rows and a single bad row must
// not fail the whole batch.
//
// Sign convention: if the record carries a rawType, "DEBIT" forces the
// amount negative and "CREDIT" forces it positive (case-insensitive). An
// unrecognized or missing rawType leaves the supplied sign untouched —
// when direction is ambiguous the sign is never flipped.
//
// The input slice is not mutated.
func Normalize(raws []model.RawTransaction) ([]model.Transaction, int) {
	transactions := make([]model.Transaction, 0, len(raws))
	skipped := 0

	for _, raw := range raws {
		tx, err := normalizeOne(raw)
		if err != nil {
			skipped++
			continue
		}
		transactions = append(transactions, tx)
	}

	return transactions, skipped
}

// normalizeOne converts a single raw record, returning an error for rows
// that must be skipped.
func normalizeOne(raw model.RawTransaction) (model.Transaction, error) {
	amount, err := parseAmount(raw.Amount)
	if err != nil {
		return model.Transaction{}, err
	}

	switch strings.ToUpper(strings.TrimSpace(raw.RawType)) {
	case "DEBIT":
		amount = amount.Abs().Neg()
	case "CREDIT":
		amount = amount.Abs()
	}

	date, err := ParseDate(strings.TrimSpace(raw.Date))
	if err != nil {
		return model.Transaction{}, err
	}

	merchant := strings.TrimSpace(raw.Merchant)
	if merchant == "" {
		merchant = DefaultMerchant
	}

	category := strings.TrimSpace(raw.Category)
	if category == "" {
		category = DefaultCategory
	}

	return model.Transaction{
		ID:       raw.ID,
		Amount:   amount.InexactFloat64(),
		Merchant: merchant,
		Category: category,
		Date:     date,
	}, nil
}

// parseAmount parses a decimal amount from upstream text. Thousands
// separators and surrounding whitespace are tolerated since CSV exports
// frequently contain them.
func parseAmount(value string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return decimal.Zero, errEmptyAmount
	}
	return decimal.NewFromString(cleaned)
}
