package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"buildtrack/models"
)

// NewQuotation builds a quotation record from creation input. When no VAT
// amount is supplied it defaults to 15% of the total, and the VAT-inclusive
// total is always total plus VAT.
func NewQuotation(projectID string, input models.CreateQuotationInput) (*models.Quotation, error) {
	if strings.TrimSpace(input.SupplierName) == "" {
		return nil, fmt.Errorf("supplier name is required")
	}
	if !models.IsValidTradeCategory(string(input.TradeCategory)) {
		return nil, fmt.Errorf("unknown trade category %q", input.TradeCategory)
	}

	vatAmount := input.TotalAmount * SAVATRate
	if input.VATAmount != nil {
		vatAmount = *input.VATAmount
	}

	lineItems := make([]models.QuotationLineItem, 0, len(input.LineItems))
	for _, li := range input.LineItems {
		li.ID = uuid.NewString()
		lineItems = append(lineItems, li)
	}

	now := nowISO()
	return &models.Quotation{
		ID:              uuid.NewString(),
		ProjectID:       projectID,
		SupplierName:    input.SupplierName,
		SupplierContact: input.SupplierContact,
		SupplierEmail:   input.SupplierEmail,
		SupplierPhone:   input.SupplierPhone,
		TradeCategory:   input.TradeCategory,
		QuotationNumber: input.QuotationNumber,
		QuotationDate:   input.QuotationDate,
		ValidUntil:      input.ValidUntil,
		Status:          models.QuotationReceived,
		TotalAmount:     input.TotalAmount,
		VATAmount:       vatAmount,
		TotalInclVAT:    input.TotalAmount + vatAmount,
		LineItems:       lineItems,
		Files:           []models.QuotationFile{},
		Notes:           input.Notes,
		ReceivedDate:    now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// QuotationUpdate is a partial update to a quotation; nil fields are
// unchanged. Status transitions are unconstrained: any status may be set
// from any other.
type QuotationUpdate struct {
	SupplierName    *string                 `json:"supplierName"`
	SupplierContact *string                 `json:"supplierContact"`
	SupplierEmail   *string                 `json:"supplierEmail"`
	SupplierPhone   *string                 `json:"supplierPhone"`
	TradeCategory   *models.TradeCategory   `json:"tradeCategory"`
	QuotationNumber *string                 `json:"quotationNumber"`
	QuotationDate   *string                 `json:"quotationDate"`
	ValidUntil      *string                 `json:"validUntil"`
	Status          *models.QuotationStatus `json:"status"`
	TotalAmount     *float64                `json:"totalAmount"`
	VATAmount       *float64                `json:"vatAmount"`
	Notes           *string                 `json:"notes"`
}

// ApplyQuotationUpdate merges the update into the quotation, recomputes the
// VAT-inclusive total when either monetary field changed, and stamps
// UpdatedAt.
func ApplyQuotationUpdate(q *models.Quotation, update QuotationUpdate) {
	if update.SupplierName != nil {
		q.SupplierName = *update.SupplierName
	}
	if update.SupplierContact != nil {
		q.SupplierContact = *update.SupplierContact
	}
	if update.SupplierEmail != nil {
		q.SupplierEmail = *update.SupplierEmail
	}
	if update.SupplierPhone != nil {
		q.SupplierPhone = *update.SupplierPhone
	}
	if update.TradeCategory != nil {
		q.TradeCategory = *update.TradeCategory
	}
	if update.QuotationNumber != nil {
		q.QuotationNumber = *update.QuotationNumber
	}
	if update.QuotationDate != nil {
		q.QuotationDate = *update.QuotationDate
	}
	if update.ValidUntil != nil {
		q.ValidUntil = *update.ValidUntil
	}
	if update.Status != nil {
		q.Status = *update.Status
	}
	if update.TotalAmount != nil {
		q.TotalAmount = *update.TotalAmount
	}
	if update.VATAmount != nil {
		q.VATAmount = *update.VATAmount
	}
	if update.TotalAmount != nil || update.VATAmount != nil {
		q.TotalInclVAT = q.TotalAmount + q.VATAmount
	}
	if update.Notes != nil {
		q.Notes = *update.Notes
	}
	q.UpdatedAt = nowISO()
}

// AcceptQuotation marks a quotation accepted and stamps the acceptance date.
func AcceptQuotation(q *models.Quotation) {
	now := nowISO()
	q.Status = models.QuotationAccepted
	q.AcceptedDate = &now
	q.RejectedReason = nil
	q.UpdatedAt = now
}

// RejectQuotation marks a quotation rejected with a reason.
func RejectQuotation(q *models.Quotation, reason string) {
	now := nowISO()
	q.Status = models.QuotationRejected
	q.RejectedReason = &reason
	q.AcceptedDate = nil
	q.UpdatedAt = now
}

// QuotationFromExtraction builds creation input from a reviewed extraction
// result, filling defaults where the extraction came back empty. The result
// is still subject to NewQuotation validation.
func QuotationFromExtraction(data models.ExtractedQuotationData) models.CreateQuotationInput {
	input := models.CreateQuotationInput{
		SupplierName:  stringOr(data.SupplierName, ""),
		TradeCategory: models.TradeOther,
	}
	if data.TradeCategory != nil && models.IsValidTradeCategory(*data.TradeCategory) {
		input.TradeCategory = models.TradeCategory(*data.TradeCategory)
	}
	input.SupplierContact = stringOr(data.SupplierContact, "")
	input.SupplierEmail = stringOr(data.SupplierEmail, "")
	input.SupplierPhone = stringOr(data.SupplierPhone, "")
	input.QuotationNumber = stringOr(data.QuotationNumber, "")
	input.QuotationDate = stringOr(data.QuotationDate, "")
	input.ValidUntil = stringOr(data.ValidUntil, "")
	input.Notes = stringOr(data.Notes, "")

	if data.Subtotal != nil {
		input.TotalAmount = *data.Subtotal
	}
	if data.VATAmount != nil {
		input.VATAmount = data.VATAmount
	}

	for _, li := range data.LineItems {
		input.LineItems = append(input.LineItems, models.QuotationLineItem{
			Description: li.Description,
			Unit:        li.Unit,
			Quantity:    li.Quantity,
			UnitRate:    li.UnitRate,
			Amount:      li.Amount,
		})
	}
	return input
}

func stringOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
