package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/services"
	"buildtrack/store"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// HandleBOMExportExcel generates and downloads the BOM workbook.
func HandleBOMExportExcel(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("bom_export_excel: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		bom, err := repos.BOM.Get(projectID)
		if err != nil {
			log.Printf("bom_export_excel: %v", err)
			return serverError(e, "Could not read BOM")
		}
		if bom == nil {
			return notFound(e, "BOM not initialized for this project")
		}

		data := services.BuildBOMExport(project, bom)
		xlsxBytes, err := services.GenerateBOMExcel(data)
		if err != nil {
			log.Printf("bom_export_excel: failed to generate: %v", err)
			return serverError(e, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("BOM_%s_%d.xlsx", sanitizeFilename(project.Name), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleCostExportPDF generates and downloads the cost summary PDF.
func HandleCostExportPDF(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("cost_export_pdf: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
		}

		bom, err := repos.BOM.Get(projectID)
		if err != nil {
			log.Printf("cost_export_pdf: %v", err)
			return serverError(e, "Could not read BOM")
		}

		quotations, err := repos.Quotations.List(projectID)
		if err != nil {
			log.Printf("cost_export_pdf: %v", err)
			return serverError(e, "Could not read quotations")
		}

		summary := services.CalculateCostSummary(project, bom, quotations)
		data := services.BuildCostReport(project, summary, quotations)

		pdfBytes, err := services.GenerateCostPDF(data)
		if err != nil {
			log.Printf("cost_export_pdf: failed to generate: %v", err)
			return serverError(e, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("CostSummary_%s_%d.pdf", sanitizeFilename(project.Name), time.Now().Year())

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
