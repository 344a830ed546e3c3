package services

import (
	"math"
	"testing"

	"buildtrack/models"
)

func TestCalculateCostSummary(t *testing.T) {
	project := &models.Project{
		ID:                 "p1",
		TotalBudget:        2000000,
		ContingencyPercent: 10,
	}
	quotations := []models.Quotation{
		{ID: "q1", TradeCategory: models.TradePlumber, Status: models.QuotationAccepted, TotalAmount: 150000},
		{ID: "q2", TradeCategory: models.TradeElectrician, Status: models.QuotationAccepted, TotalAmount: 120000},
		{ID: "q3", TradeCategory: models.TradePlumber, Status: models.QuotationAccepted, TotalAmount: 30000},
		{ID: "q4", TradeCategory: models.TradeRoofing, Status: models.QuotationReceived, TotalAmount: 999999},
		{ID: "q5", TradeCategory: models.TradePainting, Status: models.QuotationRejected, TotalAmount: 888888},
	}

	summary := CalculateCostSummary(project, nil, quotations)

	if summary.ProjectID != "p1" {
		t.Errorf("projectId = %q", summary.ProjectID)
	}
	if summary.TotalBudget != 2000000 {
		t.Errorf("totalBudget = %v", summary.TotalBudget)
	}
	if summary.ContingencyAmount != 200000 {
		t.Errorf("contingencyAmount = %v, want 200000", summary.ContingencyAmount)
	}
	if summary.BudgetInclContingency != 2200000 {
		t.Errorf("budgetInclContingency = %v, want 2200000", summary.BudgetInclContingency)
	}

	// Only accepted quotations count.
	if summary.TotalQuoted != 300000 {
		t.Errorf("totalQuoted = %v, want 300000", summary.TotalQuoted)
	}
	if summary.TotalVariance != 1700000 {
		t.Errorf("totalVariance = %v, want 1700000", summary.TotalVariance)
	}

	// Per-trade entries appear in first-seen order with amounts grouped.
	if len(summary.EntriesByTrade) != 2 {
		t.Fatalf("entries = %d, want 2", len(summary.EntriesByTrade))
	}
	plumber := summary.EntriesByTrade[0]
	if plumber.TradeCategory != models.TradePlumber {
		t.Errorf("first entry trade = %q, want plumber", plumber.TradeCategory)
	}
	if plumber.QuotedAmount != 180000 {
		t.Errorf("plumber quoted = %v, want 180000", plumber.QuotedAmount)
	}
	if plumber.BudgetAmount != 0 {
		t.Errorf("budgetAmount = %v, want 0", plumber.BudgetAmount)
	}
	if plumber.Variance != -180000 {
		t.Errorf("variance = %v, want -180000", plumber.Variance)
	}
	if plumber.VariancePercent != 0 {
		t.Errorf("variancePercent = %v, want 0", plumber.VariancePercent)
	}
	if summary.EntriesByTrade[1].TradeCategory != models.TradeElectrician {
		t.Errorf("second entry trade = %q, want electrician", summary.EntriesByTrade[1].TradeCategory)
	}
}

func TestCalculateCostSummaryBudgetFallback(t *testing.T) {
	project := &models.Project{ID: "p", ContingencyPercent: 5}
	bom := &models.BOMData{GrandTotal: 1500000}

	summary := CalculateCostSummary(project, bom, nil)

	if summary.TotalBudget != 1500000 {
		t.Errorf("totalBudget = %v, want BOM grand total fallback", summary.TotalBudget)
	}
	if math.Abs(summary.ContingencyAmount-75000) > 0.001 {
		t.Errorf("contingencyAmount = %v, want 75000", summary.ContingencyAmount)
	}

	// Explicit budget wins over the BOM.
	project.TotalBudget = 900000
	summary = CalculateCostSummary(project, bom, nil)
	if summary.TotalBudget != 900000 {
		t.Errorf("totalBudget = %v, want explicit 900000", summary.TotalBudget)
	}
}

func TestCalculateCostSummaryEmpty(t *testing.T) {
	summary := CalculateCostSummary(&models.Project{ID: "p"}, nil, nil)

	if summary.TotalBudget != 0 || summary.TotalQuoted != 0 || summary.TotalVariance != 0 {
		t.Errorf("empty summary totals = %+v", summary)
	}
	if len(summary.EntriesByTrade) != 0 {
		t.Errorf("entries = %d, want 0", len(summary.EntriesByTrade))
	}
	if summary.LastCalculated == "" {
		t.Error("lastCalculated should be stamped")
	}
}
