package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"buildtrack/models"
)

// RecalculateBOM recomputes every derived field of the aggregate from its
// items: per-item amount (quantity × rate), subtotals for all ten categories
// (absent categories get 0, never omitted), the grand total and the
// VAT-inclusive grand total. It is applied unconditionally after every
// mutation and is idempotent on unchanged items.
func RecalculateBOM(bom *models.BOMData) {
	for i := range bom.Items {
		bom.Items[i].Amount = bom.Items[i].Quantity * bom.Items[i].Rate
	}

	subtotals := make(map[models.BOMCategory]float64, len(models.BOMCategoryOrder))
	for _, cat := range models.BOMCategoryOrder {
		subtotals[cat] = 0
	}
	for _, item := range bom.Items {
		subtotals[item.Category] += item.Amount
	}

	var grandTotal float64
	for _, cat := range models.BOMCategoryOrder {
		grandTotal += subtotals[cat]
	}

	bom.SubtotalsByCategory = subtotals
	bom.GrandTotal = grandTotal
	bom.VATRate = SAVATRate
	bom.GrandTotalInclVAT = grandTotal * (1 + SAVATRate)
	bom.LastUpdated = nowISO()
}

// InitializeBOM builds a fresh bill of materials for a project from the
// standard NHBRC template. Calling it when a BOM already exists creates a
// second full copy of the template rows; the caller decides whether that is
// wanted.
func InitializeBOM(projectID string) *models.BOMData {
	items := make([]models.BOMItem, 0, len(NHBRCBOMTemplate))
	for _, tpl := range NHBRCBOMTemplate {
		items = append(items, models.BOMItem{
			ID:                 uuid.NewString(),
			Category:           tpl.Category,
			ItemNumber:         tpl.ItemNumber,
			Description:        tpl.Description,
			Unit:               tpl.Unit,
			Quantity:           tpl.DefaultQuantity,
			Rate:               tpl.EstimatedRate,
			IsStandard:         true,
			Notes:              "",
			LinkedQuotationIDs: []string{},
		})
	}

	bom := &models.BOMData{
		ProjectID: projectID,
		Items:     items,
	}
	RecalculateBOM(bom)
	return bom
}

// NewBOMItemInput carries the fields for an interactively added BOM item.
type NewBOMItemInput struct {
	Category    models.BOMCategory `json:"category"`
	Description string             `json:"description"`
	Unit        string             `json:"unit"`
	Quantity    float64            `json:"quantity"`
	Rate        float64            `json:"rate"`
	Notes       string             `json:"notes"`
}

// AddBOMItem appends a new item with the next sequential item number for its
// category and recomputes the aggregate.
func AddBOMItem(bom *models.BOMData, input NewBOMItemInput) *models.BOMItem {
	item := models.BOMItem{
		ID:                 uuid.NewString(),
		Category:           input.Category,
		ItemNumber:         NextItemNumber(bom.Items, input.Category),
		Description:        input.Description,
		Unit:               input.Unit,
		Quantity:           input.Quantity,
		Rate:               input.Rate,
		IsStandard:         false,
		Notes:              input.Notes,
		LinkedQuotationIDs: []string{},
	}
	bom.Items = append(bom.Items, item)
	RecalculateBOM(bom)
	return &bom.Items[len(bom.Items)-1]
}

// BOMItemUpdate is a partial update; nil fields are left unchanged.
type BOMItemUpdate struct {
	Category    *models.BOMCategory `json:"category"`
	Description *string             `json:"description"`
	Unit        *string             `json:"unit"`
	Quantity    *float64            `json:"quantity"`
	Rate        *float64            `json:"rate"`
	Notes       *string             `json:"notes"`
}

// UpdateBOMItem merges the update into the identified item and recomputes
// the aggregate. It reports whether the item was found.
func UpdateBOMItem(bom *models.BOMData, itemID string, update BOMItemUpdate) bool {
	for i := range bom.Items {
		if bom.Items[i].ID != itemID {
			continue
		}
		item := &bom.Items[i]
		if update.Category != nil {
			item.Category = *update.Category
		}
		if update.Description != nil {
			item.Description = *update.Description
		}
		if update.Unit != nil {
			item.Unit = *update.Unit
		}
		if update.Quantity != nil {
			item.Quantity = *update.Quantity
		}
		if update.Rate != nil {
			item.Rate = *update.Rate
		}
		if update.Notes != nil {
			item.Notes = *update.Notes
		}
		RecalculateBOM(bom)
		return true
	}
	return false
}

// DeleteBOMItem removes the identified item and recomputes the aggregate.
// It reports whether the item was found.
func DeleteBOMItem(bom *models.BOMData, itemID string) bool {
	for i := range bom.Items {
		if bom.Items[i].ID == itemID {
			bom.Items = append(bom.Items[:i], bom.Items[i+1:]...)
			RecalculateBOM(bom)
			return true
		}
	}
	return false
}

// LinkQuotation records a quotation reference on a BOM item, once.
func LinkQuotation(bom *models.BOMData, itemID, quotationID string) bool {
	for i := range bom.Items {
		if bom.Items[i].ID != itemID {
			continue
		}
		for _, existing := range bom.Items[i].LinkedQuotationIDs {
			if existing == quotationID {
				return true
			}
		}
		bom.Items[i].LinkedQuotationIDs = append(bom.Items[i].LinkedQuotationIDs, quotationID)
		return true
	}
	return false
}

// NextItemNumber produces the next item number within a category, formed as
// {prefix}-{NNN} where NNN is the highest existing numeric suffix in that
// category plus one, zero-padded to 3 digits.
func NextItemNumber(items []models.BOMItem, category models.BOMCategory) string {
	prefix := models.BOMCategoryPrefixes[category]
	maxSeq := 0
	for _, item := range items {
		if item.Category != category {
			continue
		}
		rest, ok := strings.CutPrefix(item.ItemNumber, prefix+"-")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > maxSeq {
			maxSeq = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, maxSeq+1)
}
