package model

import "time"

// ThresholdEvent is the fact the core emits when a spending or burn-rate
// threshold is crossed. Delivery, retries and cross-month bookkeeping belong
// to the alerting collaborator, not the core.
type ThresholdEvent struct {
	ThresholdName string  `json:"thresholdName"`
	Percentage    float64 `json:"percentage"`
	Amount        float64 `json:"amount"`
}

// AlertHistory records which threshold alerts have already fired, keyed by
// calendar month and threshold name. It is an explicit value passed into
// the alert decision functions rather than ambient global state, so dedup
// behavior is testable and swappable.
type AlertHistory map[string]bool

// AlertRecord is one persisted alert-history row.
type AlertRecord struct {
	ID            string    `json:"id"`
	Month         string    `json:"month"`
	ThresholdName string    `json:"thresholdName"`
	SentAt        time.Time `json:"sentAt"`
}
