package models

// TradeCategory identifies the trade a supplier quotation belongs to.
type TradeCategory string

const (
	TradeGeneralBuilder  TradeCategory = "general_builder"
	TradePlumber         TradeCategory = "plumber"
	TradeElectrician     TradeCategory = "electrician"
	TradeRoofing         TradeCategory = "roofing"
	TradeTiling          TradeCategory = "tiling"
	TradePainting        TradeCategory = "painting"
	TradeCarpentry       TradeCategory = "carpentry"
	TradeGlazing         TradeCategory = "glazing"
	TradeWaterproofing   TradeCategory = "waterproofing"
	TradePlastering      TradeCategory = "plastering"
	TradeLandscaping     TradeCategory = "landscaping"
	TradeStructuralSteel TradeCategory = "structural_steel"
	TradeHVAC            TradeCategory = "hvac"
	TradeSecurity        TradeCategory = "security"
	TradeOther           TradeCategory = "other"
)

// TradeCategoryLabels maps trade categories to display names.
var TradeCategoryLabels = map[TradeCategory]string{
	TradeGeneralBuilder:  "General Builder",
	TradePlumber:         "Plumber",
	TradeElectrician:     "Electrician",
	TradeRoofing:         "Roofing",
	TradeTiling:          "Tiling",
	TradePainting:        "Painting",
	TradeCarpentry:       "Carpentry",
	TradeGlazing:         "Glazing",
	TradeWaterproofing:   "Waterproofing",
	TradePlastering:      "Plastering",
	TradeLandscaping:     "Landscaping",
	TradeStructuralSteel: "Structural Steel",
	TradeHVAC:            "HVAC",
	TradeSecurity:        "Security",
	TradeOther:           "Other",
}

// IsValidTradeCategory reports whether s is a known trade category value.
func IsValidTradeCategory(s string) bool {
	_, ok := TradeCategoryLabels[TradeCategory(s)]
	return ok
}
