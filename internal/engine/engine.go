// Package engine contains the financial analytics core: transaction
// normalization, the financial-twin risk classifier, the burn-rate
// projector, the expense-autopsy ranker, and the pure aggregation that
// combines them into a dashboard snapshot.
//
// Every function in this package is a pure, synchronous computation: no
// I/O, no clocks, no hidden state. Recomputing from identical inputs yields
// identical outputs, which is what makes snapshot replacement on refresh
// safe.
package engine

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Date layouts accepted from upstream sources, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate parses an ISO-style date string from an upstream record.
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// MonthKey returns the year-month bucket key for a date, e.g. "2026-03".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// roundTo rounds v to the given number of decimal places, half away from
// zero. Infinities pass through untouched so the runway sentinel survives
// rounding.
func roundTo(v float64, places int32) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
