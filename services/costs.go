package services

import "buildtrack/models"

// CalculateCostSummary derives the cost roll-up for a project from its
// budget, BOM and quotations. It is a pure read: nothing is persisted. Only
// accepted quotations count toward the quoted totals. When the project has
// no budget set, the BOM grand total stands in for it.
func CalculateCostSummary(project *models.Project, bom *models.BOMData, quotations []models.Quotation) models.CostSummary {
	totalBudget := project.TotalBudget
	if totalBudget == 0 && bom != nil {
		totalBudget = bom.GrandTotal
	}

	contingencyAmount := totalBudget * project.ContingencyPercent / 100

	var accepted []models.Quotation
	for _, q := range quotations {
		if q.Status == models.QuotationAccepted {
			accepted = append(accepted, q)
		}
	}

	var totalQuoted float64
	quotedByTrade := make(map[models.TradeCategory]float64)
	var tradeOrder []models.TradeCategory
	for _, q := range accepted {
		totalQuoted += q.TotalAmount
		if _, seen := quotedByTrade[q.TradeCategory]; !seen {
			tradeOrder = append(tradeOrder, q.TradeCategory)
		}
		quotedByTrade[q.TradeCategory] += q.TotalAmount
	}

	entries := make([]models.CostEntry, 0, len(tradeOrder))
	for _, trade := range tradeOrder {
		quoted := quotedByTrade[trade]
		entries = append(entries, models.CostEntry{
			TradeCategory: trade,
			// Would link to BOM categories in a fuller implementation.
			BudgetAmount:    0,
			QuotedAmount:    quoted,
			ActualAmount:    0,
			Variance:        -quoted,
			VariancePercent: 0,
		})
	}

	return models.CostSummary{
		ProjectID:             project.ID,
		TotalBudget:           totalBudget,
		ContingencyPercent:    project.ContingencyPercent,
		ContingencyAmount:     contingencyAmount,
		BudgetInclContingency: totalBudget + contingencyAmount,
		TotalQuoted:           totalQuoted,
		TotalActual:           0,
		TotalVariance:         totalBudget - totalQuoted,
		EntriesByTrade:        entries,
		LastCalculated:        nowISO(),
	}
}
