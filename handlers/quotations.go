package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/models"
	"buildtrack/services"
	"buildtrack/store"
)

// maxUploadSize caps quotation and drawing uploads at 20 MB.
const maxUploadSize = 20 * 1024 * 1024

// HandleQuotationList returns all quotations for a project.
func HandleQuotationList(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotations, err := repos.Quotations.List(projectIDFrom(e))
		if err != nil {
			log.Printf("quotation_list: %v", err)
			return serverError(e, "Could not list quotations")
		}
		return e.JSON(http.StatusOK, quotations)
	}
}

// HandleQuotationCreate records a new supplier quotation.
func HandleQuotationCreate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("quotation_create: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		var input models.CreateQuotationInput
		if err := e.BindBody(&input); err != nil {
			return badRequest(e, "Invalid request body")
		}

		quotation, err := services.NewQuotation(projectID, input)
		if err != nil {
			return badRequest(e, err.Error())
		}

		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("quotation_create: %v", err)
			return serverError(e, "Could not read quotations")
		}
		quotations = append(quotations, *quotation)

		if err := repos.Quotations.SaveAll(projectID, quotations); err != nil {
			log.Printf("quotation_create: %v", err)
			return serverError(e, "Could not save quotation")
		}

		return e.JSON(http.StatusCreated, quotation)
	}
}

// HandleQuotationGet returns a single quotation.
func HandleQuotationGet(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotations, err := repos.Quotations.List(projectIDFrom(e))
		if err != nil {
			log.Printf("quotation_get: %v", err)
			return serverError(e, "Could not read quotations")
		}

		quotation := findQuotation(quotations, e.Request.PathValue("quotationId"))
		if quotation == nil {
			return notFound(e, "Quotation not found")
		}
		return e.JSON(http.StatusOK, quotation)
	}
}

// HandleQuotationUpdate applies a partial update to a quotation.
func HandleQuotationUpdate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("quotation_update: %v", err)
			return serverError(e, "Could not read quotations")
		}

		quotation := findQuotation(quotations, e.Request.PathValue("quotationId"))
		if quotation == nil {
			return notFound(e, "Quotation not found")
		}

		var update services.QuotationUpdate
		if err := e.BindBody(&update); err != nil {
			return badRequest(e, "Invalid request body")
		}
		if update.TradeCategory != nil && !models.IsValidTradeCategory(string(*update.TradeCategory)) {
			return badRequest(e, "Unknown trade category")
		}
		if update.Status != nil && !models.IsValidQuotationStatus(string(*update.Status)) {
			return badRequest(e, "Unknown quotation status")
		}

		services.ApplyQuotationUpdate(quotation, update)

		if err := repos.Quotations.SaveAll(projectID, quotations); err != nil {
			log.Printf("quotation_update: %v", err)
			return serverError(e, "Could not save quotation")
		}

		return e.JSON(http.StatusOK, quotation)
	}
}

// HandleQuotationAccept marks a quotation accepted and stamps the date.
func HandleQuotationAccept(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("quotation_accept: %v", err)
			return serverError(e, "Could not read quotations")
		}

		quotation := findQuotation(quotations, e.Request.PathValue("quotationId"))
		if quotation == nil {
			return notFound(e, "Quotation not found")
		}

		services.AcceptQuotation(quotation)

		if err := repos.Quotations.SaveAll(projectID, quotations); err != nil {
			log.Printf("quotation_accept: %v", err)
			return serverError(e, "Could not save quotation")
		}

		return e.JSON(http.StatusOK, quotation)
	}
}

// HandleQuotationReject marks a quotation rejected with an optional reason.
func HandleQuotationReject(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("quotation_reject: %v", err)
			return serverError(e, "Could not read quotations")
		}

		quotation := findQuotation(quotations, e.Request.PathValue("quotationId"))
		if quotation == nil {
			return notFound(e, "Quotation not found")
		}

		var body struct {
			Reason string `json:"reason"`
		}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "Invalid request body")
		}

		services.RejectQuotation(quotation, body.Reason)

		if err := repos.Quotations.SaveAll(projectID, quotations); err != nil {
			log.Printf("quotation_reject: %v", err)
			return serverError(e, "Could not save quotation")
		}

		return e.JSON(http.StatusOK, quotation)
	}
}

// HandleQuotationDelete removes a quotation from the project.
func HandleQuotationDelete(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("quotation_delete: %v", err)
			return serverError(e, "Could not read quotations")
		}

		quotationID := e.Request.PathValue("quotationId")
		kept := quotations[:0]
		found := false
		for _, q := range quotations {
			if q.ID == quotationID {
				found = true
				continue
			}
			kept = append(kept, q)
		}
		if !found {
			return notFound(e, "Quotation not found")
		}

		if err := repos.Quotations.SaveAll(projectID, kept); err != nil {
			log.Printf("quotation_delete: %v", err)
			return serverError(e, "Could not save quotations")
		}

		return e.JSON(http.StatusOK, okResponse{OK: true})
	}
}

// HandleQuotationFileUpload attaches an uploaded source document to a
// quotation. The file is stored under the project's files/quotations
// directory and its metadata recorded on the quotation.
func HandleQuotationFileUpload(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)
		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("quotation_file_upload: %v", err)
			return serverError(e, "Could not read quotations")
		}

		quotation := findQuotation(quotations, e.Request.PathValue("quotationId"))
		if quotation == nil {
			return notFound(e, "Quotation not found")
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

		stored, err := repos.Store.SaveUpload(projectID, store.UploadQuotations, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			log.Printf("quotation_file_upload: %v", err)
			return serverError(e, "Could not store uploaded file")
		}

		quotation.Files = append(quotation.Files, models.QuotationFile{
			ID:          stored.ID,
			FileName:    stored.FileName,
			FileSize:    stored.FileSize,
			MimeType:    stored.MimeType,
			UploadedAt:  stored.UploadedAt,
			StoragePath: stored.StoragePath,
		})
		quotation.UpdatedAt = stored.UploadedAt

		if err := repos.Quotations.SaveAll(projectID, quotations); err != nil {
			log.Printf("quotation_file_upload: %v", err)
			return serverError(e, "Could not save quotation")
		}

		return e.JSON(http.StatusOK, quotation)
	}
}

// findQuotation returns a pointer into the slice so handler mutations are
// persisted by SaveAll.
func findQuotation(quotations []models.Quotation, id string) *models.Quotation {
	for i := range quotations {
		if quotations[i].ID == id {
			return &quotations[i]
		}
	}
	return nil
}
