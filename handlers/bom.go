package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/services"
	"buildtrack/store"
)

// HandleBOMGet returns a project's bill of materials, or 404 if the BOM has
// not been initialized yet.
func HandleBOMGet(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bom, err := repos.BOM.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("bom_get: %v", err)
			return serverError(e, "Could not read BOM")
		}
		if bom == nil {
			return notFound(e, "BOM not initialized for this project")
		}
		return e.JSON(http.StatusOK, bom)
	}
}

// HandleBOMInitialize seeds the project's BOM from the standard NHBRC
// template. Calling it again appends a second copy of the template rows.
func HandleBOMInitialize(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("bom_initialize: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		bom, err := repos.BOM.Get(projectID)
		if err != nil {
			log.Printf("bom_initialize: %v", err)
			return serverError(e, "Could not read BOM")
		}

		if bom == nil {
			bom = services.InitializeBOM(projectID)
		} else {
			template := services.InitializeBOM(projectID)
			bom.Items = append(bom.Items, template.Items...)
			services.RecalculateBOM(bom)
		}

		if err := repos.BOM.Save(bom); err != nil {
			log.Printf("bom_initialize: %v", err)
			return serverError(e, "Could not save BOM")
		}

		return e.JSON(http.StatusOK, bom)
	}
}

// HandleBOMItemAdd appends a custom item to the BOM.
func HandleBOMItemAdd(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bom, err := repos.BOM.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("bom_item_add: %v", err)
			return serverError(e, "Could not read BOM")
		}
		if bom == nil {
			return notFound(e, "BOM not initialized for this project")
		}

		var input services.NewBOMItemInput
		if err := e.BindBody(&input); err != nil {
			return badRequest(e, "Invalid request body")
		}
		if input.Description == "" {
			return badRequest(e, "Item description is required")
		}

		item := services.AddBOMItem(bom, input)

		if err := repos.BOM.Save(bom); err != nil {
			log.Printf("bom_item_add: %v", err)
			return serverError(e, "Could not save BOM")
		}

		return e.JSON(http.StatusCreated, item)
	}
}

// HandleBOMItemUpdate applies a partial update to one BOM item.
func HandleBOMItemUpdate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bom, err := repos.BOM.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("bom_item_update: %v", err)
			return serverError(e, "Could not read BOM")
		}
		if bom == nil {
			return notFound(e, "BOM not initialized for this project")
		}

		var update services.BOMItemUpdate
		if err := e.BindBody(&update); err != nil {
			return badRequest(e, "Invalid request body")
		}

		if !services.UpdateBOMItem(bom, e.Request.PathValue("itemId"), update) {
			return notFound(e, "BOM item not found")
		}

		if err := repos.BOM.Save(bom); err != nil {
			log.Printf("bom_item_update: %v", err)
			return serverError(e, "Could not save BOM")
		}

		return e.JSON(http.StatusOK, bom)
	}
}

// HandleBOMItemLink records a quotation against a BOM item. The association
// is weak: deleting the quotation later does not touch the BOM.
func HandleBOMItemLink(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bom, err := repos.BOM.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("bom_item_link: %v", err)
			return serverError(e, "Could not read BOM")
		}
		if bom == nil {
			return notFound(e, "BOM not initialized for this project")
		}

		var body struct {
			QuotationID string `json:"quotationId"`
		}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "Invalid request body")
		}
		if body.QuotationID == "" {
			return badRequest(e, "Quotation ID is required")
		}

		if !services.LinkQuotation(bom, e.Request.PathValue("itemId"), body.QuotationID) {
			return notFound(e, "BOM item not found")
		}

		if err := repos.BOM.Save(bom); err != nil {
			log.Printf("bom_item_link: %v", err)
			return serverError(e, "Could not save BOM")
		}

		return e.JSON(http.StatusOK, bom)
	}
}

// HandleBOMItemDelete removes one BOM item.
func HandleBOMItemDelete(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		bom, err := repos.BOM.Get(projectIDFrom(e))
		if err != nil {
			log.Printf("bom_item_delete: %v", err)
			return serverError(e, "Could not read BOM")
		}
		if bom == nil {
			return notFound(e, "BOM not initialized for this project")
		}

		if !services.DeleteBOMItem(bom, e.Request.PathValue("itemId")) {
			return notFound(e, "BOM item not found")
		}

		if err := repos.BOM.Save(bom); err != nil {
			log.Printf("bom_item_delete: %v", err)
			return serverError(e, "Could not save BOM")
		}

		return e.JSON(http.StatusOK, bom)
	}
}
