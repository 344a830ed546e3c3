package services

import (
	"math"
	"testing"

	"buildtrack/models"
)

func TestNewQuotation(t *testing.T) {
	input := models.CreateQuotationInput{
		SupplierName:  "Coastal Plumbing",
		TradeCategory: models.TradePlumber,
		TotalAmount:   10000,
		LineItems: []models.QuotationLineItem{
			{Description: "Geyser install", Unit: "no", Quantity: 1, UnitRate: 10000, Amount: 10000},
		},
	}

	q, err := NewQuotation("p1", input)
	if err != nil {
		t.Fatalf("NewQuotation: %v", err)
	}

	if q.ID == "" {
		t.Error("quotation should get an ID")
	}
	if q.ProjectID != "p1" {
		t.Errorf("projectId = %q", q.ProjectID)
	}
	if q.Status != models.QuotationReceived {
		t.Errorf("status = %q, want received", q.Status)
	}

	// VAT defaults to 15% of the total when not supplied.
	if math.Abs(q.VATAmount-1500) > 0.001 {
		t.Errorf("vatAmount = %v, want 1500", q.VATAmount)
	}
	if math.Abs(q.TotalInclVAT-11500) > 0.001 {
		t.Errorf("totalInclVat = %v, want 11500", q.TotalInclVAT)
	}

	if len(q.LineItems) != 1 || q.LineItems[0].ID == "" {
		t.Error("line items should get IDs")
	}
}

func TestNewQuotationExplicitVAT(t *testing.T) {
	vat := 0.0
	q, err := NewQuotation("p1", models.CreateQuotationInput{
		SupplierName:  "Zero Rated Exports",
		TradeCategory: models.TradeOther,
		TotalAmount:   5000,
		VATAmount:     &vat,
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.VATAmount != 0 {
		t.Errorf("vatAmount = %v, want explicit 0", q.VATAmount)
	}
	if q.TotalInclVAT != 5000 {
		t.Errorf("totalInclVat = %v, want 5000", q.TotalInclVAT)
	}
}

func TestNewQuotationValidation(t *testing.T) {
	tests := []struct {
		name  string
		input models.CreateQuotationInput
	}{
		{"missing supplier", models.CreateQuotationInput{TradeCategory: models.TradePlumber}},
		{"unknown trade", models.CreateQuotationInput{SupplierName: "X", TradeCategory: "welding"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewQuotation("p1", tt.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAcceptRejectQuotation(t *testing.T) {
	q, err := NewQuotation("p1", models.CreateQuotationInput{
		SupplierName:  "Sparks Electrical",
		TradeCategory: models.TradeElectrician,
		TotalAmount:   20000,
	})
	if err != nil {
		t.Fatal(err)
	}

	AcceptQuotation(q)
	if q.Status != models.QuotationAccepted {
		t.Errorf("status = %q, want accepted", q.Status)
	}
	if q.AcceptedDate == nil || *q.AcceptedDate == "" {
		t.Error("acceptedDate should be stamped")
	}

	RejectQuotation(q, "price too high")
	if q.Status != models.QuotationRejected {
		t.Errorf("status = %q, want rejected", q.Status)
	}
	if q.RejectedReason == nil || *q.RejectedReason != "price too high" {
		t.Errorf("rejectedReason = %v", q.RejectedReason)
	}
}

func TestApplyQuotationUpdateRecomputesTotal(t *testing.T) {
	q, err := NewQuotation("p1", models.CreateQuotationInput{
		SupplierName:  "Roof Co",
		TradeCategory: models.TradeRoofing,
		TotalAmount:   10000,
	})
	if err != nil {
		t.Fatal(err)
	}

	total := 20000.0
	vat := 3000.0
	ApplyQuotationUpdate(q, QuotationUpdate{TotalAmount: &total, VATAmount: &vat})
	if q.TotalInclVAT != 23000 {
		t.Errorf("totalInclVat = %v, want 23000", q.TotalInclVAT)
	}

	name := "Roofing Company"
	before := q.TotalInclVAT
	ApplyQuotationUpdate(q, QuotationUpdate{SupplierName: &name})
	if q.SupplierName != "Roofing Company" {
		t.Errorf("supplierName = %q", q.SupplierName)
	}
	if q.TotalInclVAT != before {
		t.Errorf("totalInclVat changed to %v on non-monetary update", q.TotalInclVAT)
	}
}

func TestQuotationFromExtraction(t *testing.T) {
	supplier := "Extracted Supplier"
	trade := "tiling"
	subtotal := 8000.0
	vat := 1200.0

	input := QuotationFromExtraction(models.ExtractedQuotationData{
		SupplierName:  &supplier,
		TradeCategory: &trade,
		Subtotal:      &subtotal,
		VATAmount:     &vat,
		LineItems: []models.ExtractedLineItem{
			{Description: "Floor tiling", Unit: "m2", Quantity: 40, UnitRate: 200, Amount: 8000},
		},
	})

	if input.SupplierName != "Extracted Supplier" {
		t.Errorf("supplierName = %q", input.SupplierName)
	}
	if input.TradeCategory != models.TradeTiling {
		t.Errorf("tradeCategory = %q, want tiling", input.TradeCategory)
	}
	if input.TotalAmount != 8000 {
		t.Errorf("totalAmount = %v, want 8000", input.TotalAmount)
	}
	if input.VATAmount == nil || *input.VATAmount != 1200 {
		t.Errorf("vatAmount = %v", input.VATAmount)
	}
	if len(input.LineItems) != 1 || input.LineItems[0].Description != "Floor tiling" {
		t.Errorf("lineItems = %+v", input.LineItems)
	}
}

func TestQuotationFromExtractionDefaults(t *testing.T) {
	t.Run("nil trade defaults to other", func(t *testing.T) {
		input := QuotationFromExtraction(models.ExtractedQuotationData{})
		if input.TradeCategory != models.TradeOther {
			t.Errorf("tradeCategory = %q, want other", input.TradeCategory)
		}
	})

	t.Run("unknown trade defaults to other", func(t *testing.T) {
		trade := "blacksmith"
		input := QuotationFromExtraction(models.ExtractedQuotationData{TradeCategory: &trade})
		if input.TradeCategory != models.TradeOther {
			t.Errorf("tradeCategory = %q, want other", input.TradeCategory)
		}
	})
}
