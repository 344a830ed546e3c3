package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/services"
	"buildtrack/store"
)

// HandleCostSummary derives the cost roll-up from current project, BOM and
// quotation state. Nothing is persisted.
func HandleCostSummary(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("cost_summary: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		bom, err := repos.BOM.Get(projectID)
		if err != nil {
			log.Printf("cost_summary: %v", err)
			return serverError(e, "Could not read BOM")
		}

		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("cost_summary: %v", err)
			return serverError(e, "Could not read quotations")
		}

		summary := services.CalculateCostSummary(project, bom, quotations)
		return e.JSON(http.StatusOK, summary)
	}
}
