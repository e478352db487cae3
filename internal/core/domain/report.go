package domain

// ContractSummary aggregates the user's contracts by status.
type ContractSummary struct {
	Status         ContractStatus `json:"status"`
	TotalContracts int64          `json:"totalContracts"`
	TotalBudget    float64        `json:"totalBudget"`
}

// FinancialReport holds budget totals over the user's contracts.
type FinancialReport struct {
	TotalMinBudget float64 `json:"totalMinBudget"`
	TotalMaxBudget float64 `json:"totalMaxBudget"`
	AvgBudget      float64 `json:"avgBudget"`
}

// LanguageUsage counts how many of the user's contracts mention a skill.
type LanguageUsage struct {
	Language string `json:"language"`
	Total    int64  `json:"total"`
}

// Reports bundles the three report endpoints.
type Reports struct {
	Financial FinancialReport   `json:"financial"`
	Summary   []ContractSummary `json:"summary"`
	Languages []LanguageUsage   `json:"languages"`
}
