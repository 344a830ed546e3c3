package services

import (
	"math"
	"testing"

	"buildtrack/models"
)

func TestInitializeBOM(t *testing.T) {
	bom := InitializeBOM("proj-1")

	if bom.ProjectID != "proj-1" {
		t.Errorf("ProjectID = %q, want %q", bom.ProjectID, "proj-1")
	}
	if len(bom.Items) != len(NHBRCBOMTemplate) {
		t.Fatalf("item count = %d, want %d", len(bom.Items), len(NHBRCBOMTemplate))
	}

	// Every category must have a subtotal, even when zero.
	for _, cat := range models.BOMCategoryOrder {
		if _, ok := bom.SubtotalsByCategory[cat]; !ok {
			t.Errorf("missing subtotal for category %s", cat)
		}
	}

	// Grand total is the sum of all item amounts.
	var want float64
	for _, item := range bom.Items {
		want += item.Quantity * item.Rate
	}
	if math.Abs(bom.GrandTotal-want) > 0.01 {
		t.Errorf("GrandTotal = %v, want %v", bom.GrandTotal, want)
	}
	if math.Abs(bom.GrandTotalInclVAT-want*1.15) > 0.01 {
		t.Errorf("GrandTotalInclVAT = %v, want %v", bom.GrandTotalInclVAT, want*1.15)
	}
	if bom.VATRate != 0.15 {
		t.Errorf("VATRate = %v, want 0.15", bom.VATRate)
	}

	for _, item := range bom.Items {
		if !item.IsStandard {
			t.Errorf("template item %s should be standard", item.ItemNumber)
		}
	}
}

func TestRecalculateBOM(t *testing.T) {
	bom := &models.BOMData{
		ProjectID: "p",
		Items: []models.BOMItem{
			{ID: "a", Category: models.CategoryFoundations, ItemNumber: "F-001", Quantity: 10, Rate: 100},
			{ID: "b", Category: models.CategoryFoundations, ItemNumber: "F-002", Quantity: 2, Rate: 50},
			{ID: "c", Category: models.CategoryRoofing, ItemNumber: "R-001", Quantity: 1, Rate: 5000},
		},
	}
	RecalculateBOM(bom)

	if bom.Items[0].Amount != 1000 {
		t.Errorf("item amount = %v, want 1000", bom.Items[0].Amount)
	}
	if got := bom.SubtotalsByCategory[models.CategoryFoundations]; got != 1100 {
		t.Errorf("foundations subtotal = %v, want 1100", got)
	}
	if got := bom.SubtotalsByCategory[models.CategoryRoofing]; got != 5000 {
		t.Errorf("roofing subtotal = %v, want 5000", got)
	}
	if got := bom.SubtotalsByCategory[models.CategoryElectrical]; got != 0 {
		t.Errorf("empty category subtotal = %v, want 0", got)
	}
	if len(bom.SubtotalsByCategory) != len(models.BOMCategoryOrder) {
		t.Errorf("subtotal count = %d, want %d", len(bom.SubtotalsByCategory), len(models.BOMCategoryOrder))
	}
	if bom.GrandTotal != 6100 {
		t.Errorf("GrandTotal = %v, want 6100", bom.GrandTotal)
	}
	if math.Abs(bom.GrandTotalInclVAT-7015) > 0.001 {
		t.Errorf("GrandTotalInclVAT = %v, want 7015", bom.GrandTotalInclVAT)
	}
}

func TestAddBOMItem(t *testing.T) {
	bom := InitializeBOM("p")
	before := bom.GrandTotal

	item := AddBOMItem(bom, NewBOMItemInput{
		Category:    models.CategoryElectrical,
		Description: "Extra DB board",
		Unit:        "item",
		Quantity:    2,
		Rate:        3500,
	})

	if item.IsStandard {
		t.Error("added item should not be standard")
	}
	if item.Amount != 7000 {
		t.Errorf("item amount = %v, want 7000", item.Amount)
	}
	if math.Abs(bom.GrandTotal-(before+7000)) > 0.01 {
		t.Errorf("GrandTotal = %v, want %v", bom.GrandTotal, before+7000)
	}
}

func TestNextItemNumber(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.BOMItem
		category models.BOMCategory
		expect   string
	}{
		{
			name:     "empty category",
			items:    nil,
			category: models.CategoryFoundations,
			expect:   "F-001",
		},
		{
			name: "existing items",
			items: []models.BOMItem{
				{Category: models.CategoryFoundations, ItemNumber: "F-001"},
				{Category: models.CategoryFoundations, ItemNumber: "F-007"},
			},
			category: models.CategoryFoundations,
			expect:   "F-008",
		},
		{
			name: "other categories ignored",
			items: []models.BOMItem{
				{Category: models.CategoryRoofing, ItemNumber: "R-010"},
			},
			category: models.CategoryFoundations,
			expect:   "F-001",
		},
		{
			name: "malformed numbers ignored",
			items: []models.BOMItem{
				{Category: models.CategoryFoundations, ItemNumber: "F-abc"},
				{Category: models.CategoryFoundations, ItemNumber: "F-002"},
			},
			category: models.CategoryFoundations,
			expect:   "F-003",
		},
		{
			name:     "provisional sums prefix",
			items:    nil,
			category: models.CategoryProvisionalSums,
			expect:   "PS-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextItemNumber(tt.items, tt.category)
			if got != tt.expect {
				t.Errorf("NextItemNumber = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestUpdateBOMItem(t *testing.T) {
	bom := InitializeBOM("p")
	target := bom.Items[0].ID

	qty := 25.0
	rate := 80.0
	if !UpdateBOMItem(bom, target, BOMItemUpdate{Quantity: &qty, Rate: &rate}) {
		t.Fatal("expected item to be found")
	}
	if bom.Items[0].Amount != 2000 {
		t.Errorf("amount = %v, want 2000", bom.Items[0].Amount)
	}

	if UpdateBOMItem(bom, "missing", BOMItemUpdate{Quantity: &qty}) {
		t.Error("expected missing item to report false")
	}
}

func TestDeleteBOMItem(t *testing.T) {
	bom := InitializeBOM("p")
	count := len(bom.Items)
	target := bom.Items[3]

	if !DeleteBOMItem(bom, target.ID) {
		t.Fatal("expected item to be found")
	}
	if len(bom.Items) != count-1 {
		t.Errorf("item count = %d, want %d", len(bom.Items), count-1)
	}
	for _, item := range bom.Items {
		if item.ID == target.ID {
			t.Error("deleted item still present")
		}
	}

	if DeleteBOMItem(bom, target.ID) {
		t.Error("expected second delete to report false")
	}
}

func TestLinkQuotation(t *testing.T) {
	bom := InitializeBOM("p")
	target := bom.Items[0].ID

	if !LinkQuotation(bom, target, "q-1") {
		t.Fatal("expected item to be found")
	}
	// Linking twice must not duplicate.
	LinkQuotation(bom, target, "q-1")
	if got := len(bom.Items[0].LinkedQuotationIDs); got != 1 {
		t.Errorf("linked quotations = %d, want 1", got)
	}

	if LinkQuotation(bom, "missing", "q-1") {
		t.Error("expected missing item to report false")
	}
}

func TestReinitializeDuplicatesTemplate(t *testing.T) {
	bom := InitializeBOM("p")
	template := InitializeBOM("p")
	bom.Items = append(bom.Items, template.Items...)
	RecalculateBOM(bom)

	if len(bom.Items) != 2*len(NHBRCBOMTemplate) {
		t.Errorf("item count = %d, want %d", len(bom.Items), 2*len(NHBRCBOMTemplate))
	}
}
