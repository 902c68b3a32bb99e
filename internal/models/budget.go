// internal/models/budget.go
package models

// BudgetPlan is the backend's spend recommendation snapshot. Immutable after
// it is attached to a session.
type BudgetPlan struct {
    DailyBudget         float64 `json:"daily_budget"`
    MonthlyBudget       float64 `json:"monthly_budget"`
    ExpectedClicks      int     `json:"expected_clicks"`
    ExpectedConversions int     `json:"expected_conversions"`
    ExpectedCPA         float64 `json:"expected_cpa"`
    ExpectedROAS        float64 `json:"expected_roas"`
}
