package request

// UpdateProfileRequest is the body for profile updates. Savings is a
// pointer: absent means the user does not track a balance independently
// and the dashboard derives it from the net balance.
type UpdateProfileRequest struct {
	Name          string   `json:"name"`
	MonthlyIncome float64  `json:"monthlyIncome"`
	Savings       *float64 `json:"savings"`
	MonthlyBudget float64  `json:"monthlyBudget"`
	Phone         string   `json:"phone,omitempty"`
}
