package services

import (
	"buildtrack/models"
)

// BOMExportRow is a single row of the BOM report: either a category heading,
// a line item, or a category subtotal.
type BOMExportRow struct {
	Level       int // 0 = category heading, 1 = item, 2 = category subtotal
	ItemNumber  string
	Description string
	Unit        string
	Qty         float64
	Rate        float64
	Amount      float64
}

// BOMExportData holds everything the BOM report generators need.
type BOMExportData struct {
	ProjectName       string
	ErfNumber         string
	GeneratedDate     string
	Rows              []BOMExportRow
	GrandTotal        float64
	VATAmount         float64
	GrandTotalInclVAT float64
}

// BuildBOMExport flattens the bill of materials into report rows grouped by
// category, in the fixed category order, with a subtotal row per non-empty
// category.
func BuildBOMExport(project *models.Project, bom *models.BOMData) BOMExportData {
	data := BOMExportData{
		ProjectName:       project.Name,
		ErfNumber:         project.ErfNumber,
		GeneratedDate:     nowISO()[:10],
		GrandTotal:        bom.GrandTotal,
		VATAmount:         bom.GrandTotal * bom.VATRate,
		GrandTotalInclVAT: bom.GrandTotalInclVAT,
	}

	for _, cat := range models.BOMCategoryOrder {
		var items []models.BOMItem
		for _, item := range bom.Items {
			if item.Category == cat {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}

		data.Rows = append(data.Rows, BOMExportRow{
			Level:       0,
			Description: models.BOMCategoryLabels[cat],
		})
		for _, item := range items {
			unit := item.Unit
			if label, ok := models.BOMUnitLabels[unit]; ok {
				unit = label
			}
			data.Rows = append(data.Rows, BOMExportRow{
				Level:       1,
				ItemNumber:  item.ItemNumber,
				Description: item.Description,
				Unit:        unit,
				Qty:         item.Quantity,
				Rate:        item.Rate,
				Amount:      item.Amount,
			})
		}
		data.Rows = append(data.Rows, BOMExportRow{
			Level:       2,
			Description: models.BOMCategoryLabels[cat] + " subtotal",
			Amount:      bom.SubtotalsByCategory[cat],
		})
	}

	return data
}

// CostReportData holds everything the cost-summary PDF needs.
type CostReportData struct {
	ProjectName   string
	Address       string
	GeneratedDate string
	Summary       models.CostSummary
	Accepted      []models.Quotation
}

// BuildCostReport assembles the printable cost summary for a project.
func BuildCostReport(project *models.Project, summary models.CostSummary, quotations []models.Quotation) CostReportData {
	data := CostReportData{
		ProjectName:   project.Name,
		Address:       project.Address,
		GeneratedDate: nowISO()[:10],
		Summary:       summary,
	}
	for _, q := range quotations {
		if q.Status == models.QuotationAccepted {
			data.Accepted = append(data.Accepted, q)
		}
	}
	return data
}
