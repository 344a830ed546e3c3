package services

import (
	"bytes"
	"math"
	"testing"

	"github.com/xuri/excelize/v2"

	"buildtrack/models"
)

func TestIdentifyColumns(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		expect  columnMap
	}{
		{
			name:    "standard headers",
			headers: []string{"Description", "Unit", "Qty", "Rate", "Amount"},
			expect:  columnMap{desc: 0, unit: 1, qty: 2, rate: 3, amount: 4},
		},
		{
			name:    "alternative names",
			headers: []string{"Item", "UOM", "Quantity", "Unit Price", "Total"},
			expect:  columnMap{desc: 0, unit: 1, qty: 2, rate: 3, amount: 4},
		},
		{
			name:    "no recognizable headers defaults desc to first column",
			headers: []string{"aaa", "bbb", "ccc"},
			expect:  columnMap{desc: 0, unit: -1, qty: -1, rate: -1, amount: -1},
		},
		{
			name:    "mixed case and whitespace",
			headers: []string{"  DESCRIPTION  ", "No", "PRICE"},
			expect:  columnMap{desc: 0, unit: -1, qty: 1, rate: 2, amount: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := identifyColumns(tt.headers)
			if got != tt.expect {
				t.Errorf("identifyColumns(%v) = %+v, want %+v", tt.headers, got, tt.expect)
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	csvData := "Description,Unit,Qty,Rate,Amount\n" +
		"Cement 42.5N,bag,100,95.50,9550\n" +
		"Building sand,m3,20,350,7000\n" +
		",,,,\n" +
		"Subtotal,,,,16550\n" +
		"VAT,,,,2482.50\n" +
		"Total,,,,19032.50\n"

	result := ParseCSV(csvData)

	if len(result.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(result.LineItems))
	}
	if result.LineItems[0].Description != "Cement 42.5N" {
		t.Errorf("description = %q", result.LineItems[0].Description)
	}
	if result.LineItems[0].Quantity != 100 || result.LineItems[0].UnitRate != 95.50 {
		t.Errorf("first item qty/rate = %v/%v", result.LineItems[0].Quantity, result.LineItems[0].UnitRate)
	}

	if result.Subtotal == nil || math.Abs(*result.Subtotal-16550) > 0.001 {
		t.Errorf("subtotal = %v, want 16550", result.Subtotal)
	}
	if result.VATAmount == nil || math.Abs(*result.VATAmount-2482.5) > 0.001 {
		t.Errorf("vatAmount = %v, want 2482.5", result.VATAmount)
	}
	if result.TotalInclVAT == nil || math.Abs(*result.TotalInclVAT-19032.5) > 0.001 {
		t.Errorf("totalInclVat = %v, want 19032.5", result.TotalInclVAT)
	}

	if result.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", result.Confidence)
	}
	if result.SupplierName != nil {
		t.Error("supplierName should be nil for spreadsheet sources")
	}

	wantWarnings := []string{
		"Parsed from CSV - supplier details not available",
		"VAT calculated at 15% (standard SA rate)",
	}
	if len(result.Warnings) != 2 || result.Warnings[0] != wantWarnings[0] || result.Warnings[1] != wantWarnings[1] {
		t.Errorf("warnings = %v, want %v", result.Warnings, wantWarnings)
	}
}

func TestParseCSVDerivedFields(t *testing.T) {
	t.Run("amount derived from qty and rate", func(t *testing.T) {
		result := ParseCSV("Description,Qty,Rate\nBricks,1000,2.50\n")
		if len(result.LineItems) != 1 {
			t.Fatalf("line items = %d, want 1", len(result.LineItems))
		}
		if got := result.LineItems[0].Amount; math.Abs(got-2500) > 0.001 {
			t.Errorf("amount = %v, want 2500", got)
		}
	})

	t.Run("missing qty defaults to 1", func(t *testing.T) {
		result := ParseCSV("Description,Amount\nSite clearance,15000\n")
		if len(result.LineItems) != 1 {
			t.Fatalf("line items = %d, want 1", len(result.LineItems))
		}
		item := result.LineItems[0]
		if item.Quantity != 1 {
			t.Errorf("quantity = %v, want 1", item.Quantity)
		}
		if item.UnitRate != 15000 {
			t.Errorf("unitRate = %v, want amount fallback 15000", item.UnitRate)
		}
	})

	t.Run("missing unit defaults to item", func(t *testing.T) {
		result := ParseCSV("Description,Amount\nScaffolding hire,5000\n")
		if got := result.LineItems[0].Unit; got != "item" {
			t.Errorf("unit = %q, want item", got)
		}
	})

	t.Run("zero-value rows skipped", func(t *testing.T) {
		result := ParseCSV("Description,Qty,Rate,Amount\nSection heading,0,0,0\nPaint,10,120,1200\n")
		if len(result.LineItems) != 1 {
			t.Fatalf("line items = %d, want 1", len(result.LineItems))
		}
		if result.LineItems[0].Description != "Paint" {
			t.Errorf("kept row = %q, want Paint", result.LineItems[0].Description)
		}
	})
}

func TestParseCSVTooFewRows(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"header only", "Description,Amount\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseCSV(tt.input)
			if result.Confidence != models.ConfidenceLow {
				t.Errorf("confidence = %q, want low", result.Confidence)
			}
			if len(result.Warnings) != 1 || result.Warnings[0] != "CSV file has too few rows to extract data" {
				t.Errorf("warnings = %v", result.Warnings)
			}
			if len(result.LineItems) != 0 {
				t.Errorf("line items = %d, want 0", len(result.LineItems))
			}
		})
	}
}

func TestParseCSVNoUsableRows(t *testing.T) {
	result := ParseCSV("Description,Amount\nNotes only,\n")
	if result.Confidence != models.ConfidenceLow {
		t.Errorf("confidence = %q, want low", result.Confidence)
	}
	if len(result.Warnings) == 0 || result.Warnings[0] != "No cost line items could be identified in the CSV" {
		t.Errorf("warnings = %v", result.Warnings)
	}
	if result.Subtotal == nil || *result.Subtotal != 0 {
		t.Errorf("subtotal = %v, want 0", result.Subtotal)
	}
}

func TestParseExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"Description", "Unit", "Qty", "Rate", "Amount"},
		{"Roof trusses", "no", 24, 1850, 44400},
		{"Roof sheeting", "m2", 180, 145, 26100},
	}
	for i, row := range rows {
		for j, val := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(sheet, cell, val)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	f.Close()

	result := ParseExcel(buf.Bytes())

	if len(result.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(result.LineItems))
	}
	if result.Subtotal == nil || math.Abs(*result.Subtotal-70500) > 0.001 {
		t.Errorf("subtotal = %v, want 70500", result.Subtotal)
	}
	if result.Confidence != models.ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", result.Confidence)
	}
	if len(result.Warnings) != 2 || result.Warnings[0] != "Parsed from Excel - supplier details not available" {
		t.Errorf("warnings = %v", result.Warnings)
	}
}

func TestParseExcelMalformed(t *testing.T) {
	result := ParseExcel([]byte("this is not a workbook"))
	if result.Confidence != models.ConfidenceLow {
		t.Errorf("confidence = %q, want low", result.Confidence)
	}
	if len(result.Warnings) != 1 ||
		result.Warnings[0] != "Failed to parse Excel file - it may be corrupted or in an unsupported format" {
		t.Errorf("warnings = %v", result.Warnings)
	}
	if result.LineItems == nil {
		t.Error("line items should be an empty slice, not nil")
	}
}
