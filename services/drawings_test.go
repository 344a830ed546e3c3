package services

import (
	"testing"

	"buildtrack/models"
)

func TestNewDrawing(t *testing.T) {
	d, err := NewDrawing("p1", NewDrawingInput{
		Title:         "Ground Floor Plan",
		DrawingNumber: "A-101",
		Category:      models.DrawingFloorPlan,
	})
	if err != nil {
		t.Fatalf("NewDrawing: %v", err)
	}

	if d.ID == "" || d.ProjectID != "p1" {
		t.Errorf("identity fields: id=%q projectId=%q", d.ID, d.ProjectID)
	}
	if d.CurrentRevision != "—" {
		t.Errorf("currentRevision = %q, want placeholder before first upload", d.CurrentRevision)
	}
	if len(d.Revisions) != 0 {
		t.Errorf("new drawing should have no revisions, got %d", len(d.Revisions))
	}
}

func TestNewDrawingValidation(t *testing.T) {
	tests := []struct {
		name  string
		input NewDrawingInput
	}{
		{"missing title", NewDrawingInput{Category: models.DrawingSitePlan}},
		{"unknown category", NewDrawingInput{Title: "X", Category: "perspective"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDrawing("p1", tt.input); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAddDrawingRevision(t *testing.T) {
	d, err := NewDrawing("p1", NewDrawingInput{Title: "Elevations", Category: models.DrawingElevation})
	if err != nil {
		t.Fatal(err)
	}

	AddDrawingRevision(d, models.DrawingRevision{RevisionNumber: "A", FileName: "elev-a.pdf"})
	AddDrawingRevision(d, models.DrawingRevision{RevisionNumber: "B", FileName: "elev-b.pdf"})

	if len(d.Revisions) != 2 {
		t.Fatalf("revisions = %d, want 2", len(d.Revisions))
	}
	if d.CurrentRevision != "B" {
		t.Errorf("currentRevision = %q, want latest", d.CurrentRevision)
	}
	for i, rev := range d.Revisions {
		if rev.ID == "" {
			t.Errorf("revision %d should get an ID", i)
		}
	}
}
