package handlers

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/services"
	"buildtrack/store"
)

// supportedExtractionTypes is the MIME whitelist for quotation extraction
// uploads. Anything else is rejected before any processing.
var supportedExtractionTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/webp":      true,
	"image/gif":       true,
	"text/csv":        true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// HandleQuotationExtract accepts an uploaded quotation document and returns
// extracted data for review. CSV and Excel files are parsed locally; PDFs
// and images go through the document-AI call. Nothing is persisted here: the
// client submits the reviewed data through the normal quotation create route.
func HandleQuotationExtract(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		projectID := projectIDFrom(e)

		project, err := repos.Projects.Get(projectID)
		if err != nil {
			log.Printf("quotation_extract: %v", err)
			return serverError(e, "Could not read project")
		}
		if project == nil {
			return notFound(e, "Project not found")
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

		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = guessMimeType(header.Filename)
		}
		if !supportedExtractionTypes[mimeType] {
			return badRequest(e, "Unsupported file type: "+mimeType+". Supported: PDF, PNG, JPG, CSV, XLS, XLSX")
		}

		data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
		if err != nil {
			log.Printf("quotation_extract: read upload: %v", err)
			return serverError(e, "Could not read uploaded file")
		}
		if len(data) > maxUploadSize {
			return badRequest(e, "File too large. Maximum size is 20MB.")
		}

		// Spreadsheets are parsed locally, no AI involved.
		if mimeType == "text/csv" {
			return e.JSON(http.StatusOK, services.ParseCSV(string(data)))
		}
		if mimeType == "application/vnd.ms-excel" ||
			mimeType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
			return e.JSON(http.StatusOK, services.ParseExcel(data))
		}

		// PDF and images go to the document-AI call.
		settings, err := repos.Settings.Get()
		if err != nil {
			log.Printf("quotation_extract: %v", err)
			return serverError(e, "Could not read settings")
		}

		apiKey := services.ResolveAPIKey(settings, os.Getenv)
		if apiKey == "" {
			return serverError(e, "No API key configured. Go to Settings to add your Anthropic API key.")
		}

		responseText, err := services.ExtractDocument(e.Request.Context(), apiKey, mimeType, data)
		if err != nil {
			log.Printf("quotation_extract: %v", err)
			return serverError(e, services.ClassifyExtractionError(err))
		}

		return e.JSON(http.StatusOK, services.NormalizeResponse(responseText))
	}
}

// guessMimeType maps a file extension to a MIME type when the upload carries
// no Content-Type header.
func guessMimeType(fileName string) string {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".csv":
		return "text/csv"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
