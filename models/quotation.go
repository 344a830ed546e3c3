package models

// QuotationStatus is the review state of a supplier quotation. Any status is
// reachable from any other via an explicit update; accept and reject
// additionally stamp acceptedDate / rejectedReason.
type QuotationStatus string

const (
	QuotationReceived    QuotationStatus = "received"
	QuotationUnderReview QuotationStatus = "under_review"
	QuotationAccepted    QuotationStatus = "accepted"
	QuotationRejected    QuotationStatus = "rejected"
	QuotationExpired     QuotationStatus = "expired"
	QuotationSuperseded  QuotationStatus = "superseded"
)

// QuotationStatusLabels maps quotation statuses to display names.
var QuotationStatusLabels = map[QuotationStatus]string{
	QuotationReceived:    "Received",
	QuotationUnderReview: "Under Review",
	QuotationAccepted:    "Accepted",
	QuotationRejected:    "Rejected",
	QuotationExpired:     "Expired",
	QuotationSuperseded:  "Superseded",
}

// IsValidQuotationStatus reports whether s is a known status value.
func IsValidQuotationStatus(s string) bool {
	_, ok := QuotationStatusLabels[QuotationStatus(s)]
	return ok
}

// QuotationLineItem is one priced line on a quotation. BOMItemID is a weak
// association to a BOM line, not ownership.
type QuotationLineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitRate    float64 `json:"unitRate"`
	Amount      float64 `json:"amount"`
	BOMItemID   *string `json:"bomItemId"`
}

// QuotationFile records an uploaded source document for a quotation.
type QuotationFile struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	MimeType    string `json:"mimeType"`
	UploadedAt  string `json:"uploadedAt"`
	StoragePath string `json:"storagePath"`
}

// Quotation is a supplier quotation for one project.
type Quotation struct {
	ID              string              `json:"id"`
	ProjectID       string              `json:"projectId"`
	SupplierName    string              `json:"supplierName"`
	SupplierContact string              `json:"supplierContact"`
	SupplierEmail   string              `json:"supplierEmail"`
	SupplierPhone   string              `json:"supplierPhone"`
	TradeCategory   TradeCategory       `json:"tradeCategory"`
	QuotationNumber string              `json:"quotationNumber"`
	QuotationDate   string              `json:"quotationDate"`
	ValidUntil      string              `json:"validUntil"`
	Status          QuotationStatus     `json:"status"`
	TotalAmount     float64             `json:"totalAmount"`
	VATAmount       float64             `json:"vatAmount"`
	TotalInclVAT    float64             `json:"totalInclVat"`
	LineItems       []QuotationLineItem `json:"lineItems"`
	Files           []QuotationFile     `json:"files"`
	Notes           string              `json:"notes"`
	ReceivedDate    string              `json:"receivedDate"`
	ReviewedDate    *string             `json:"reviewedDate"`
	AcceptedDate    *string             `json:"acceptedDate"`
	RejectedReason  *string             `json:"rejectedReason"`
	CreatedAt       string              `json:"createdAt"`
	UpdatedAt       string              `json:"updatedAt"`
}

// CreateQuotationInput carries the fields accepted when recording a new
// quotation. VATAmount, when nil, defaults to 15% of TotalAmount.
type CreateQuotationInput struct {
	SupplierName    string              `json:"supplierName"`
	SupplierContact string              `json:"supplierContact"`
	SupplierEmail   string              `json:"supplierEmail"`
	SupplierPhone   string              `json:"supplierPhone"`
	TradeCategory   TradeCategory       `json:"tradeCategory"`
	QuotationNumber string              `json:"quotationNumber"`
	QuotationDate   string              `json:"quotationDate"`
	ValidUntil      string              `json:"validUntil"`
	TotalAmount     float64             `json:"totalAmount"`
	VATAmount       *float64            `json:"vatAmount"`
	LineItems       []QuotationLineItem `json:"lineItems"`
	Notes           string              `json:"notes"`
}
