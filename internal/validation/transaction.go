package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thinktwice/finance-dashboard-backend/internal/api/request"
	"github.com/thinktwice/finance-dashboard-backend/internal/engine"
)

// ValidRawType contains the recognized upstream direction indicators. An
// empty rawType is allowed: the amount is then taken as already signed.
var ValidRawType = map[string]bool{
	"DEBIT": true, "CREDIT": true,
}

// ValidateCreateTransaction validates a manual transaction entry request.
//
// Required fields:
//   - date: must parse as an ISO date
//   - amount: must be numeric
//
// Optional fields:
//   - rawType: DEBIT or CREDIT (case-insensitive) if provided
//
// Returns a validation Error with field-specific messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := engine.ParseDate(strings.TrimSpace(req.Date)); err != nil {
		errors["date"] = err.Error()
	}

	if strings.TrimSpace(req.Amount.String()) == "" {
		errors["amount"] = "amount is required"
	} else if _, err := decimal.NewFromString(req.Amount.String()); err != nil {
		errors["amount"] = fmt.Sprintf("amount is not numeric: %s", req.Amount.String())
	}

	if rawType := strings.ToUpper(strings.TrimSpace(req.RawType)); rawType != "" && !ValidRawType[rawType] {
		errors["rawType"] = fmt.Sprintf("invalid rawType: %s", req.RawType)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
