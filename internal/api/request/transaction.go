package request

import "encoding/json"

// CreateTransactionRequest is the body for manual transaction entry. The
// amount is accepted as a JSON number or numeric string; the normalizer
// settles the final signed value.
type CreateTransactionRequest struct {
	ID       string      `json:"id,omitempty"`
	Amount   json.Number `json:"amount"`
	RawType  string      `json:"rawType,omitempty"`
	Merchant string      `json:"merchant,omitempty"`
	Category string      `json:"category,omitempty"`
	Date     string      `json:"date"`
}
