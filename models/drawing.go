package models

// DrawingCategory classifies an architectural or technical drawing.
type DrawingCategory string

const (
	DrawingSitePlan   DrawingCategory = "site_plan"
	DrawingFloorPlan  DrawingCategory = "floor_plan"
	DrawingElevation  DrawingCategory = "elevation"
	DrawingSection    DrawingCategory = "section"
	DrawingDetail     DrawingCategory = "detail"
	DrawingStructural DrawingCategory = "structural"
	DrawingElectrical DrawingCategory = "electrical"
	DrawingPlumbing   DrawingCategory = "plumbing"
	DrawingRender3D   DrawingCategory = "render_3d"
	DrawingOther      DrawingCategory = "other"
)

// DrawingCategoryLabels maps drawing categories to display names.
var DrawingCategoryLabels = map[DrawingCategory]string{
	DrawingSitePlan:   "Site Plan",
	DrawingFloorPlan:  "Floor Plan",
	DrawingElevation:  "Elevation",
	DrawingSection:    "Section",
	DrawingDetail:     "Detail",
	DrawingStructural: "Structural",
	DrawingElectrical: "Electrical",
	DrawingPlumbing:   "Plumbing",
	DrawingRender3D:   "3D Render",
	DrawingOther:      "Other",
}

// IsValidDrawingCategory reports whether s is a known category value.
func IsValidDrawingCategory(s string) bool {
	_, ok := DrawingCategoryLabels[DrawingCategory(s)]
	return ok
}

// DrawingRevision is one uploaded revision of a drawing.
type DrawingRevision struct {
	ID             string `json:"id"`
	RevisionNumber string `json:"revisionNumber"`
	FileName       string `json:"fileName"`
	FileSize       int64  `json:"fileSize"`
	MimeType       string `json:"mimeType"`
	StoragePath    string `json:"storagePath"`
	UploadedAt     string `json:"uploadedAt"`
	Notes          string `json:"notes"`
}

// Drawing is an entry in the project drawings register.
type Drawing struct {
	ID              string            `json:"id"`
	ProjectID       string            `json:"projectId"`
	Title           string            `json:"title"`
	DrawingNumber   string            `json:"drawingNumber"`
	Category        DrawingCategory   `json:"category"`
	Description     string            `json:"description"`
	CurrentRevision string            `json:"currentRevision"`
	Revisions       []DrawingRevision `json:"revisions"`
	CreatedAt       string            `json:"createdAt"`
	UpdatedAt       string            `json:"updatedAt"`
}
