package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/models"
	"buildtrack/services"
	"buildtrack/store"
)

// HandleDrawingList returns the project drawings register.
func HandleDrawingList(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		drawings, err := repos.Drawings.List(projectIDFrom(e))
		if err != nil {
			log.Printf("drawing_list: %v", err)
			return serverError(e, "Could not list drawings")
		}
		return e.JSON(http.StatusOK, drawings)
	}
}

// HandleDrawingCreate adds a register entry with no revisions yet.
func HandleDrawingCreate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("drawing_create: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		var input services.NewDrawingInput
		if err := e.BindBody(&input); err != nil {
			return badRequest(e, "Invalid request body")
		}

		drawing, err := services.NewDrawing(projectID, input)
		if err != nil {
			return badRequest(e, err.Error())
		}

		drawings, err := repos.Drawings.List(projectID)
		if err != nil {
			log.Printf("drawing_create: %v", err)
			return serverError(e, "Could not read drawings")
		}
		drawings = append(drawings, *drawing)

		if err := repos.Drawings.SaveAll(projectID, drawings); err != nil {
			log.Printf("drawing_create: %v", err)
			return serverError(e, "Could not save drawing")
		}

		return e.JSON(http.StatusCreated, drawing)
	}
}

// HandleDrawingRevisionUpload stores an uploaded file as a new revision of a
// drawing and makes it the current one. 3D renders land under the renderings
// directory, everything else under drawings.
func HandleDrawingRevisionUpload(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		drawings, err := repos.Drawings.List(projectID)
		if err != nil {
			log.Printf("drawing_revision: %v", err)
			return serverError(e, "Could not read drawings")
		}

		drawingID := e.Request.PathValue("drawingId")
		var drawing *models.Drawing
		for i := range drawings {
			if drawings[i].ID == drawingID {
				drawing = &drawings[i]
				break
			}
		}
		if drawing == nil {
			return notFound(e, "Drawing not found")
		}

		if err := e.Request.ParseMultipartForm(maxUploadSize); err != nil {
			return badRequest(e, "Invalid multipart form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return badRequest(e, "No file provided")
		}
		defer file.Close()

		if header.Size > maxUploadSize {
			return badRequest(e, "File too large. Maximum size is 20MB.")
		}

		revisionNumber := strings.TrimSpace(e.Request.FormValue("revisionNumber"))
		if revisionNumber == "" {
			return badRequest(e, "Revision number is required")
		}

		kind := store.UploadDrawings
		if drawing.Category == models.DrawingRender3D {
			kind = store.UploadRenderings
		}

		stored, err := repos.Store.SaveUpload(projectID, kind, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			log.Printf("drawing_revision: %v", err)
			return serverError(e, "Could not store uploaded file")
		}

		services.AddDrawingRevision(drawing, models.DrawingRevision{
			ID:             stored.ID,
			RevisionNumber: revisionNumber,
			FileName:       stored.FileName,
			FileSize:       stored.FileSize,
			MimeType:       stored.MimeType,
			StoragePath:    stored.StoragePath,
			UploadedAt:     stored.UploadedAt,
			Notes:          strings.TrimSpace(e.Request.FormValue("notes")),
		})

		if err := repos.Drawings.SaveAll(projectID, drawings); err != nil {
			log.Printf("drawing_revision: %v", err)
			return serverError(e, "Could not save drawing")
		}

		return e.JSON(http.StatusOK, drawing)
	}
}

// HandleDrawingDelete removes a drawing from the register. Stored revision
// files stay on disk until the project itself is deleted.
func HandleDrawingDelete(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		drawings, err := repos.Drawings.List(projectID)
		if err != nil {
			log.Printf("drawing_delete: %v", err)
			return serverError(e, "Could not read drawings")
		}

		drawingID := e.Request.PathValue("drawingId")
		kept := drawings[:0]
		found := false
		for _, d := range drawings {
			if d.ID == drawingID {
				found = true
				continue
			}
			kept = append(kept, d)
		}
		if !found {
			return notFound(e, "Drawing not found")
		}

		if err := repos.Drawings.SaveAll(projectID, kept); err != nil {
			log.Printf("drawing_delete: %v", err)
			return serverError(e, "Could not save drawings")
		}

		return e.JSON(http.StatusOK, okResponse{OK: true})
	}
}
