package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"buildtrack/models"
)

// NewDrawingInput carries the fields for a new drawings-register entry.
type NewDrawingInput struct {
	Title         string                 `json:"title"`
	DrawingNumber string                 `json:"drawingNumber"`
	Category      models.DrawingCategory `json:"category"`
	Description   string                 `json:"description"`
}

// NewDrawing builds a drawings-register entry with no revisions yet.
func NewDrawing(projectID string, input NewDrawingInput) (*models.Drawing, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("drawing title is required")
	}
	if !models.IsValidDrawingCategory(string(input.Category)) {
		return nil, fmt.Errorf("unknown drawing category %q", input.Category)
	}

	now := nowISO()
	return &models.Drawing{
		ID:              uuid.NewString(),
		ProjectID:       projectID,
		Title:           input.Title,
		DrawingNumber:   input.DrawingNumber,
		Category:        input.Category,
		Description:     input.Description,
		CurrentRevision: "—",
		Revisions:       []models.DrawingRevision{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// AddDrawingRevision appends an uploaded revision to a drawing and makes it
// current.
func AddDrawingRevision(drawing *models.Drawing, revision models.DrawingRevision) {
	if revision.ID == "" {
		revision.ID = uuid.NewString()
	}
	drawing.Revisions = append(drawing.Revisions, revision)
	drawing.CurrentRevision = revision.RevisionNumber
	drawing.UpdatedAt = nowISO()
}
