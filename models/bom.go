package models

// BOMCategory groups bill-of-materials items into the ten fixed sections of
// an NHBRC-style residential bill.
type BOMCategory string

const (
	CategoryPreliminaries    BOMCategory = "preliminaries"
	CategoryFoundations      BOMCategory = "foundations"
	CategoryStructural       BOMCategory = "structural"
	CategoryRoofing          BOMCategory = "roofing"
	CategoryPlumbing         BOMCategory = "plumbing"
	CategoryElectrical       BOMCategory = "electrical"
	CategoryFinishesInternal BOMCategory = "finishes_internal"
	CategoryFinishesExternal BOMCategory = "finishes_external"
	CategoryExternalWorks    BOMCategory = "external_works"
	CategoryProvisionalSums  BOMCategory = "provisional_sums"
)

// BOMCategoryOrder is the display and subtotal ordering of categories.
var BOMCategoryOrder = []BOMCategory{
	CategoryPreliminaries,
	CategoryFoundations,
	CategoryStructural,
	CategoryRoofing,
	CategoryPlumbing,
	CategoryElectrical,
	CategoryFinishesInternal,
	CategoryFinishesExternal,
	CategoryExternalWorks,
	CategoryProvisionalSums,
}

// BOMCategoryLabels maps categories to display names.
var BOMCategoryLabels = map[BOMCategory]string{
	CategoryPreliminaries:    "Preliminaries",
	CategoryFoundations:      "Foundations",
	CategoryStructural:       "Structural",
	CategoryRoofing:          "Roofing",
	CategoryPlumbing:         "Plumbing",
	CategoryElectrical:       "Electrical",
	CategoryFinishesInternal: "Internal Finishes",
	CategoryFinishesExternal: "External Finishes",
	CategoryExternalWorks:    "External Works",
	CategoryProvisionalSums:  "Provisional Sums",
}

// BOMCategoryPrefixes maps categories to their item-number prefixes,
// e.g. plumbing items are numbered PL-001, PL-002, ...
var BOMCategoryPrefixes = map[BOMCategory]string{
	CategoryPreliminaries:    "P",
	CategoryFoundations:      "F",
	CategoryStructural:       "S",
	CategoryRoofing:          "R",
	CategoryPlumbing:         "PL",
	CategoryElectrical:       "E",
	CategoryFinishesInternal: "FI",
	CategoryFinishesExternal: "FE",
	CategoryExternalWorks:    "EW",
	CategoryProvisionalSums:  "PS",
}

// IsValidBOMCategory reports whether s is a known category value.
func IsValidBOMCategory(s string) bool {
	_, ok := BOMCategoryLabels[BOMCategory(s)]
	return ok
}

// BOMUnitLabels maps unit codes to display labels.
var BOMUnitLabels = map[string]string{
	"m3":   "m³",
	"m2":   "m²",
	"m":    "m",
	"no":   "No.",
	"kg":   "kg",
	"bag":  "Bag",
	"item": "Item",
	"prov": "Prov. Sum",
	"day":  "Day",
	"load": "Load",
}

// BOMItem is one line of the bill of materials.
type BOMItem struct {
	ID                 string      `json:"id"`
	Category           BOMCategory `json:"category"`
	ItemNumber         string      `json:"itemNumber"`
	Description        string      `json:"description"`
	Unit               string      `json:"unit"`
	Quantity           float64     `json:"quantity"`
	Rate               float64     `json:"rate"`
	Amount             float64     `json:"amount"`
	IsStandard         bool        `json:"isStandard"`
	Notes              string      `json:"notes"`
	LinkedQuotationIDs []string    `json:"linkedQuotationIds"`
}

// BOMData is the full bill-of-materials aggregate for one project. The
// derived fields (subtotals, totals) are recomputed from Items on every
// mutation and are never authoritative on their own.
type BOMData struct {
	ProjectID           string                  `json:"projectId"`
	Items               []BOMItem               `json:"items"`
	LastUpdated         string                  `json:"lastUpdated"`
	SubtotalsByCategory map[BOMCategory]float64 `json:"subtotalsByCategory"`
	GrandTotal          float64                 `json:"grandTotal"`
	VATRate             float64                 `json:"vatRate"`
	GrandTotalInclVAT   float64                 `json:"grandTotalInclVat"`
}
