package models

// CostEntry is the quoted-vs-budget position for a single trade. BudgetAmount
// is currently always zero: trade entries are derived from accepted
// quotations only, and no BOM-category-to-trade mapping exists.
type CostEntry struct {
	TradeCategory   TradeCategory `json:"tradeCategory"`
	BudgetAmount    float64       `json:"budgetAmount"`
	QuotedAmount    float64       `json:"quotedAmount"`
	ActualAmount    float64       `json:"actualAmount"`
	Variance        float64       `json:"variance"`
	VariancePercent float64       `json:"variancePercent"`
}

// CostSummary is the derived cost roll-up for a project. It is computed on
// demand from the project, BOM and quotation state and is never persisted.
type CostSummary struct {
	ProjectID             string      `json:"projectId"`
	TotalBudget           float64     `json:"totalBudget"`
	ContingencyPercent    float64     `json:"contingencyPercent"`
	ContingencyAmount     float64     `json:"contingencyAmount"`
	BudgetInclContingency float64     `json:"budgetInclContingency"`
	TotalQuoted           float64     `json:"totalQuoted"`
	TotalActual           float64     `json:"totalActual"`
	TotalVariance         float64     `json:"totalVariance"`
	EntriesByTrade        []CostEntry `json:"entriesByTrade"`
	LastCalculated        string      `json:"lastCalculated"`
}
