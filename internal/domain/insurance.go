package domain

type InsurancePlan struct {
	ID             int32  `json:"plan_id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	DailyCost      Cents  `json:"daily_cost"`
	CoverageAmount Cents  `json:"coverage_amount"`
	Deductible     Cents  `json:"deductible"`
	IsActive       bool   `json:"is_active"`
}

type InsurancePlanCreate struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	DailyCost      Cents  `json:"daily_cost"`
	CoverageAmount Cents  `json:"coverage_amount"`
	Deductible     Cents  `json:"deductible"`
	IsActive       *bool  `json:"is_active,omitempty"`
}
