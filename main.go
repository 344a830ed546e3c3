package main

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"buildtrack/handlers"
	"buildtrack/store"
)

type config struct {
	// DataDir is the root of the flat-file store. Each project gets its own
	// directory under DataDir/projects.
	DataDir   string `env:"BUILDTRACK_DATA_DIR" envDefault:"./data"`
	StaticDir string `env:"BUILDTRACK_STATIC_DIR" envDefault:"./static"`
}

func main() {
	// .env is optional; real env vars win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}
	repos := store.NewRepos(st)

	app := pocketbase.New()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from the configured directory.
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS(cfg.StaticDir), false))

		// ── Projects ─────────────────────────────────────────────
		se.Router.GET("/api/projects", handlers.HandleProjectList(repos))
		se.Router.POST("/api/projects", handlers.HandleProjectCreate(repos))
		se.Router.GET("/api/projects/{id}", handlers.HandleProjectGet(repos))
		se.Router.PATCH("/api/projects/{id}", handlers.HandleProjectUpdate(repos))
		se.Router.DELETE("/api/projects/{id}", handlers.HandleProjectDelete(repos))

		// ── Bill of materials ────────────────────────────────────
		se.Router.GET("/api/projects/{id}/bom", handlers.HandleBOMGet(repos))
		se.Router.POST("/api/projects/{id}/bom/initialize", handlers.HandleBOMInitialize(repos))
		se.Router.POST("/api/projects/{id}/bom/items", handlers.HandleBOMItemAdd(repos))
		se.Router.PATCH("/api/projects/{id}/bom/items/{itemId}", handlers.HandleBOMItemUpdate(repos))
		se.Router.DELETE("/api/projects/{id}/bom/items/{itemId}", handlers.HandleBOMItemDelete(repos))
		se.Router.POST("/api/projects/{id}/bom/items/{itemId}/link", handlers.HandleBOMItemLink(repos))

		// ── Quotations ───────────────────────────────────────────
		se.Router.GET("/api/projects/{id}/quotations", handlers.HandleQuotationList(repos))
		se.Router.POST("/api/projects/{id}/quotations", handlers.HandleQuotationCreate(repos))
		se.Router.POST("/api/projects/{id}/quotations/extract", handlers.HandleQuotationExtract(repos))
		se.Router.GET("/api/projects/{id}/quotations/{quotationId}", handlers.HandleQuotationGet(repos))
		se.Router.PATCH("/api/projects/{id}/quotations/{quotationId}", handlers.HandleQuotationUpdate(repos))
		se.Router.DELETE("/api/projects/{id}/quotations/{quotationId}", handlers.HandleQuotationDelete(repos))
		se.Router.POST("/api/projects/{id}/quotations/{quotationId}/accept", handlers.HandleQuotationAccept(repos))
		se.Router.POST("/api/projects/{id}/quotations/{quotationId}/reject", handlers.HandleQuotationReject(repos))
		se.Router.POST("/api/projects/{id}/quotations/{quotationId}/files", handlers.HandleQuotationFileUpload(repos))

		// ── Timeline ─────────────────────────────────────────────
		se.Router.GET("/api/projects/{id}/timeline", handlers.HandleTimelineGet(repos))
		se.Router.POST("/api/projects/{id}/timeline/initialize", handlers.HandleTimelineInitialize(repos))
		se.Router.PATCH("/api/projects/{id}/timeline/phases/{phaseId}", handlers.HandlePhaseUpdate(repos))
		se.Router.POST("/api/projects/{id}/timeline/milestones", handlers.HandleMilestoneAdd(repos))
		se.Router.POST("/api/projects/{id}/timeline/milestones/{milestoneId}/complete", handlers.HandleMilestoneComplete(repos))

		// ── Costs ────────────────────────────────────────────────
		se.Router.GET("/api/projects/{id}/costs", handlers.HandleCostSummary(repos))

		// ── Drawings register ────────────────────────────────────
		se.Router.GET("/api/projects/{id}/drawings", handlers.HandleDrawingList(repos))
		se.Router.POST("/api/projects/{id}/drawings", handlers.HandleDrawingCreate(repos))
		se.Router.POST("/api/projects/{id}/drawings/{drawingId}/revisions", handlers.HandleDrawingRevisionUpload(repos))
		se.Router.DELETE("/api/projects/{id}/drawings/{drawingId}", handlers.HandleDrawingDelete(repos))

		// ── Reports ──────────────────────────────────────────────
		se.Router.GET("/api/projects/{id}/reports/bom.xlsx", handlers.HandleBOMExportExcel(repos))
		se.Router.GET("/api/projects/{id}/reports/costs.pdf", handlers.HandleCostExportPDF(repos))

		// ── Settings ─────────────────────────────────────────────
		se.Router.GET("/api/settings", handlers.HandleSettingsGet(repos))
		se.Router.PUT("/api/settings", handlers.HandleSettingsUpdate(repos))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
