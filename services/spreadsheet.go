// Package services holds the domain logic: BOM aggregation, cost roll-up,
// timeline generation, quotation document extraction and report generation.
package services

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/xuri/excelize/v2"

	"buildtrack/models"
)

// columnMap holds the resolved column index per semantic role. -1 means the
// role has no column, except description which always resolves (default 0).
type columnMap struct {
	desc   int
	unit   int
	qty    int
	rate   int
	amount int
}

// identifyColumns fuzzy-matches header cells to semantic roles. Headers are
// lower-cased and matched by substring against role keyword sets; the first
// matching column wins for each role.
func identifyColumns(headers []string) columnMap {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	find := func(match func(string) bool) int {
		for i, h := range lower {
			if match(h) {
				return i
			}
		}
		return -1
	}

	descCol := find(func(h string) bool {
		return strings.Contains(h, "description") ||
			strings.Contains(h, "item") ||
			strings.Contains(h, "detail") ||
			strings.Contains(h, "work") ||
			strings.Contains(h, "material")
	})
	unitCol := find(func(h string) bool {
		return strings.Contains(h, "unit") || h == "uom" || h == "u/m"
	})
	qtyCol := find(func(h string) bool {
		return strings.Contains(h, "qty") ||
			strings.Contains(h, "quantity") ||
			strings.Contains(h, "quant") ||
			h == "no"
	})
	rateCol := find(func(h string) bool {
		return strings.Contains(h, "rate") ||
			strings.Contains(h, "price") ||
			strings.Contains(h, "unit cost") ||
			strings.Contains(h, "unit price")
	})
	amountCol := find(func(h string) bool {
		return strings.Contains(h, "amount") ||
			strings.Contains(h, "total") ||
			strings.Contains(h, "value") ||
			strings.Contains(h, "cost") ||
			strings.Contains(h, "sum")
	})

	if descCol < 0 {
		descCol = 0
	}
	return columnMap{desc: descCol, unit: unitCol, qty: qtyCol, rate: rateCol, amount: amountCol}
}

// cellAt returns the trimmed cell at index i, or "" when the row is short.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// skipDescriptions are row descriptions treated as repeated headers.
var skipDescriptions = map[string]bool{"description": true, "item": true}

// skipPrefixes mark summary rows that must not become line items.
var skipPrefixes = []string{"total", "subtotal", "sub-total", "vat", "grand total"}

// parseRows converts data rows into extracted line items, skipping header
// repeats, summary rows and rows with no monetary value.
func parseRows(rows [][]string, cols columnMap) []models.ExtractedLineItem {
	var items []models.ExtractedLineItem

	for _, row := range rows {
		desc := cellAt(row, cols.desc)
		if desc == "" {
			continue
		}

		descLower := strings.ToLower(desc)
		if skipDescriptions[descLower] {
			continue
		}
		skip := false
		for _, prefix := range skipPrefixes {
			if strings.HasPrefix(descLower, prefix) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		quantity := 1.0
		if cols.qty >= 0 {
			quantity = ParseAmount(cellAt(row, cols.qty))
		}
		unitRate := 0.0
		if cols.rate >= 0 {
			unitRate = ParseAmount(cellAt(row, cols.rate))
		}
		amount := quantity * unitRate
		if cols.amount >= 0 {
			amount = ParseAmount(cellAt(row, cols.amount))
		}
		unit := "item"
		if cols.unit >= 0 {
			if u := cellAt(row, cols.unit); u != "" {
				unit = u
			}
		}

		// Rows with neither an amount nor a rate are non-monetary noise.
		if amount == 0 && unitRate == 0 {
			continue
		}

		if quantity == 0 {
			quantity = 1
		}
		if unitRate == 0 {
			unitRate = amount
		}
		if amount == 0 {
			amount = quantity * unitRate
		}

		items = append(items, models.ExtractedLineItem{
			Description: desc,
			Unit:        unit,
			Quantity:    quantity,
			UnitRate:    unitRate,
			Amount:      amount,
		})
	}

	return items
}

// tabularResult assembles the extraction result for spreadsheet sources.
// Supplier and date fields are structurally unavailable from a bare
// spreadsheet and stay nil; the warnings say so.
func tabularResult(items []models.ExtractedLineItem, warnings []string, sourceLabel string) models.ExtractedQuotationData {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount
	}
	vatAmount := subtotal * SAVATRate

	confidence := models.ConfidenceLow
	if len(items) > 0 {
		confidence = models.ConfidenceMedium
	}

	result := emptyExtraction(confidence)
	result.LineItems = items
	result.Subtotal = &subtotal
	result.VATAmount = &vatAmount
	total := subtotal + vatAmount
	result.TotalInclVAT = &total
	result.Warnings = append(warnings,
		"Parsed from "+sourceLabel+" - supplier details not available",
		"VAT calculated at 15% (standard SA rate)",
	)
	return result
}

// lowConfidenceResult is the well-formed zero result returned when a source
// cannot be parsed at all.
func lowConfidenceResult(warnings ...string) models.ExtractedQuotationData {
	result := emptyExtraction(models.ConfidenceLow)
	result.Warnings = warnings
	return result
}

// emptyExtraction returns an all-nil extraction result with empty slices, so
// callers always receive a structurally valid value.
func emptyExtraction(confidence models.Confidence) models.ExtractedQuotationData {
	return models.ExtractedQuotationData{
		LineItems:  []models.ExtractedLineItem{},
		Confidence: confidence,
		Warnings:   []string{},
	}
}

// ParseCSV extracts quotation line items from CSV text.
func ParseCSV(content string) models.ExtractedQuotationData {
	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil || len(allRows) < 2 {
		return lowConfidenceResult("CSV file has too few rows to extract data")
	}

	cols := identifyColumns(allRows[0])
	items := parseRows(allRows[1:], cols)

	var warnings []string
	if len(items) == 0 {
		warnings = append(warnings, "No cost line items could be identified in the CSV")
	}
	return tabularResult(items, warnings, "CSV")
}

// ParseExcel extracts quotation line items from the first worksheet of an
// xlsx/xls workbook. Malformed workbooks and empty sheets yield a well-formed
// low-confidence result rather than an error.
func ParseExcel(data []byte) models.ExtractedQuotationData {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return lowConfidenceResult("Failed to parse Excel file - it may be corrupted or in an unsupported format")
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil || len(rows) < 2 {
		return lowConfidenceResult("Excel file has no data or too few rows")
	}

	cols := identifyColumns(rows[0])
	items := parseRows(rows[1:], cols)

	var warnings []string
	if len(items) == 0 {
		warnings = append(warnings, "No cost line items could be identified in the Excel file")
	}
	return tabularResult(items, warnings, "Excel")
}
