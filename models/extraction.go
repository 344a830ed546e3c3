package models

// Confidence grades how trustworthy an extraction result is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ExtractedLineItem is a single cost line pulled out of a quotation document.
type ExtractedLineItem struct {
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitRate    float64 `json:"unitRate"`
	Amount      float64 `json:"amount"`
}

// ExtractedQuotationData is the normalized result of parsing a quotation
// document, whether from a spreadsheet or from the document-AI service. It is
// transient: callers re-validate every field before merging it into a
// Quotation or the BOM.
type ExtractedQuotationData struct {
	SupplierName    *string             `json:"supplierName"`
	SupplierContact *string             `json:"supplierContact"`
	SupplierEmail   *string             `json:"supplierEmail"`
	SupplierPhone   *string             `json:"supplierPhone"`
	QuotationNumber *string             `json:"quotationNumber"`
	QuotationDate   *string             `json:"quotationDate"`
	ValidUntil      *string             `json:"validUntil"`
	TradeCategory   *string             `json:"tradeCategory"`
	LineItems       []ExtractedLineItem `json:"lineItems"`
	Subtotal        *float64            `json:"subtotal"`
	VATAmount       *float64            `json:"vatAmount"`
	TotalInclVAT    *float64            `json:"totalInclVat"`
	Notes           *string             `json:"notes"`
	Confidence      Confidence          `json:"confidence"`
	Warnings        []string            `json:"warnings"`
}
