package services

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"buildtrack/models"
)

func bomExportFixture() (*models.Project, *models.BOMData) {
	project := &models.Project{Name: "Erf 42 Midrand", ErfNumber: "42", Address: "42 Main Rd"}
	bom := &models.BOMData{
		ProjectID: "p1",
		Items: []models.BOMItem{
			{Category: models.CategoryRoofing, ItemNumber: "R-001", Description: "Roof trusses", Unit: "m2", Quantity: 120, Rate: 450, Amount: 54000},
			{Category: models.CategoryFoundations, ItemNumber: "F-001", Description: "Strip footings", Unit: "m3", Quantity: 20, Rate: 2500, Amount: 50000},
		},
		SubtotalsByCategory: map[models.BOMCategory]float64{
			models.CategoryFoundations: 50000,
			models.CategoryRoofing:     54000,
		},
		GrandTotal:        104000,
		VATRate:           0.15,
		GrandTotalInclVAT: 119600,
	}
	return project, bom
}

func TestBuildBOMExport(t *testing.T) {
	project, bom := bomExportFixture()
	data := BuildBOMExport(project, bom)

	if data.ProjectName != "Erf 42 Midrand" || data.ErfNumber != "42" {
		t.Errorf("header fields: %q / %q", data.ProjectName, data.ErfNumber)
	}
	if data.GrandTotal != 104000 || data.GrandTotalInclVAT != 119600 {
		t.Errorf("totals: %v / %v", data.GrandTotal, data.GrandTotalInclVAT)
	}
	if data.VATAmount != 104000*0.15 {
		t.Errorf("vatAmount = %v", data.VATAmount)
	}

	// Two non-empty categories, each contributing heading + item + subtotal.
	if len(data.Rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(data.Rows))
	}

	// Foundations comes before roofing in the fixed category order even
	// though roofing appears first in the item slice.
	if data.Rows[0].Level != 0 || data.Rows[0].Description != "Foundations" {
		t.Errorf("row 0 = %+v, want foundations heading", data.Rows[0])
	}
	if data.Rows[1].ItemNumber != "F-001" {
		t.Errorf("row 1 = %+v", data.Rows[1])
	}
	if data.Rows[2].Level != 2 || data.Rows[2].Amount != 50000 {
		t.Errorf("row 2 = %+v, want foundations subtotal", data.Rows[2])
	}
	if data.Rows[3].Description != "Roofing" {
		t.Errorf("row 3 = %+v, want roofing heading", data.Rows[3])
	}
}

func TestGenerateBOMExcel(t *testing.T) {
	project, bom := bomExportFixture()
	data := BuildBOMExport(project, bom)

	result, err := GenerateBOMExcel(data)
	if err != nil {
		t.Fatalf("GenerateBOMExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateBOMExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Erf 42 Midrand" {
		t.Errorf("expected sheet named after project, got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Erf 42 Midrand - Bill of Materials" {
		t.Errorf("title = %q", title)
	}
	erf, _ := f.GetCellValue(sheets[0], "A2")
	if erf != "Erf: 42" {
		t.Errorf("erf row = %q", erf)
	}

	header, _ := f.GetCellValue(sheets[0], "B5")
	if header != "Description" {
		t.Errorf("B5 = %q, want column header", header)
	}

	// Row 6 is the first category heading, row 7 the first item.
	cat, _ := f.GetCellValue(sheets[0], "B6")
	if cat != "Foundations" {
		t.Errorf("B6 = %q", cat)
	}
	item, _ := f.GetCellValue(sheets[0], "A7")
	if item != "F-001" {
		t.Errorf("A7 = %q", item)
	}
	rate, _ := f.GetCellValue(sheets[0], "E7")
	if rate != "R2 500.00" {
		t.Errorf("E7 = %q", rate)
	}
}

func TestGenerateBOMExcelLongProjectName(t *testing.T) {
	project, bom := bomExportFixture()
	project.Name = "An Exceedingly Long Project Name That Overflows The Sheet Limit"
	data := BuildBOMExport(project, bom)

	result, err := GenerateBOMExcel(data)
	if err != nil {
		t.Fatalf("GenerateBOMExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || len(sheets[0]) > 31 {
		t.Errorf("sheet name %q exceeds the 31 char limit", sheets)
	}
}

func TestBuildCostReportFiltersAccepted(t *testing.T) {
	project := &models.Project{Name: "Erf 7", Address: "7 Oak Ave"}
	quotations := []models.Quotation{
		{ID: "q1", SupplierName: "A", Status: models.QuotationAccepted},
		{ID: "q2", SupplierName: "B", Status: models.QuotationReceived},
		{ID: "q3", SupplierName: "C", Status: models.QuotationRejected},
	}

	data := BuildCostReport(project, models.CostSummary{}, quotations)
	if len(data.Accepted) != 1 || data.Accepted[0].ID != "q1" {
		t.Errorf("accepted = %+v, want only q1", data.Accepted)
	}
}

func TestGenerateCostPDF(t *testing.T) {
	data := CostReportData{
		ProjectName:   "Erf 7",
		Address:       "7 Oak Ave",
		GeneratedDate: "2026-09-01",
		Summary: models.CostSummary{
			TotalBudget:           2000000,
			ContingencyPercent:    10,
			ContingencyAmount:     200000,
			BudgetInclContingency: 2200000,
			TotalQuoted:           1800000,
			TotalVariance:         200000,
			EntriesByTrade: []models.CostEntry{
				{TradeCategory: models.TradePlumber, QuotedAmount: 180000, Variance: -180000},
			},
		},
		Accepted: []models.Quotation{
			{SupplierName: "Coastal Plumbing", TradeCategory: models.TradePlumber, TotalInclVAT: 207000, Status: models.QuotationAccepted},
		},
	}

	result, err := GenerateCostPDF(data)
	if err != nil {
		t.Fatalf("GenerateCostPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateCostPDF() returned empty bytes")
	}
	// PDF files start with the %PDF marker.
	if string(result[:4]) != "%PDF" {
		t.Errorf("output does not look like a PDF: %q", result[:4])
	}
}
