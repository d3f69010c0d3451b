package model

import (
	"encoding/json"
	"math"
)

// WarningLevel is the three-tier burn-rate warning.
type WarningLevel string

// Warning levels ordered from least to most severe.
const (
	WarningSafe     WarningLevel = "Safe"
	WarningCaution  WarningLevel = "Caution"
	WarningCritical WarningLevel = "Critical"
)

// BurnRate projects how many months the savings balance lasts at the
// current average monthly expense rate.
//
// MonthsLeft is math.Inf(1) when there is no monthly expense to burn
// through the savings; the JSON form renders that as null with
// monthsLeftUnlimited set to true.
type BurnRate struct {
	MonthsLeft float64
	Warning    WarningLevel
}

type burnRateJSON struct {
	MonthsLeft          *float64     `json:"monthsLeft"`
	MonthsLeftUnlimited bool         `json:"monthsLeftUnlimited"`
	Warning             WarningLevel `json:"warning"`
}

// MarshalJSON implements json.Marshaler.
func (br BurnRate) MarshalJSON() ([]byte, error) {
	out := burnRateJSON{Warning: br.Warning}
	if math.IsInf(br.MonthsLeft, 1) {
		out.MonthsLeftUnlimited = true
	} else {
		months := br.MonthsLeft
		out.MonthsLeft = &months
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (br *BurnRate) UnmarshalJSON(data []byte) error {
	var in burnRateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	br.Warning = in.Warning
	switch {
	case in.MonthsLeftUnlimited:
		br.MonthsLeft = math.Inf(1)
	case in.MonthsLeft != nil:
		br.MonthsLeft = *in.MonthsLeft
	}
	return nil
}
