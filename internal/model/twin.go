package model

import (
	"encoding/json"
	"math"
)

// RiskLevel classifies how exposed the user is based on runway.
type RiskLevel string

// Risk levels ordered from least to most severe.
const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// FinancialTwin is a simplified model of the user's financial trajectory:
// average monthly spend, months of runway at that spend rate, and a risk
// classification derived from the runway.
//
// RunwayMonths is math.Inf(1) when there is no spending to burn through the
// savings. Because encoding/json cannot represent infinity, the JSON form
// renders an unlimited runway as null with runwayUnlimited set to true.
type FinancialTwin struct {
	MonthlyExpense float64
	RunwayMonths   float64
	Risk           RiskLevel
}

type financialTwinJSON struct {
	MonthlyExpense  float64   `json:"monthlyExpense"`
	RunwayMonths    *float64  `json:"runwayMonths"`
	RunwayUnlimited bool      `json:"runwayUnlimited"`
	Risk            RiskLevel `json:"risk"`
}

// MarshalJSON implements json.Marshaler.
func (ft FinancialTwin) MarshalJSON() ([]byte, error) {
	out := financialTwinJSON{
		MonthlyExpense: ft.MonthlyExpense,
		Risk:           ft.Risk,
	}
	if math.IsInf(ft.RunwayMonths, 1) {
		out.RunwayUnlimited = true
	} else {
		months := ft.RunwayMonths
		out.RunwayMonths = &months
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ft *FinancialTwin) UnmarshalJSON(data []byte) error {
	var in financialTwinJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	ft.MonthlyExpense = in.MonthlyExpense
	ft.Risk = in.Risk
	switch {
	case in.RunwayUnlimited:
		ft.RunwayMonths = math.Inf(1)
	case in.RunwayMonths != nil:
		ft.RunwayMonths = *in.RunwayMonths
	}
	return nil
}
