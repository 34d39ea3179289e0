package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"renoquote/clients"
	"renoquote/collections"
	"renoquote/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment as-is")
	}

	app := pocketbase.New()
	cfg := clients.LoadConfig()

	estimation := clients.NewEstimationClient(cfg.EstimationURL, cfg.UserID)
	learning := clients.NewLearningClient(cfg.LearningURL)
	projects := clients.NewProjectsClient(cfg.ProjectsURL)
	geocoder := clients.NewGeocodeClient(cfg.GeocodeURL)
	outbox := clients.NewLearningOutbox(app, learning)

	var documents *clients.DocumentsClient
	if cfg.DocumentsURL != "" {
		documents = clients.NewDocumentsClient(cfg.DocumentsURL)
	}

	sessions := handlers.NewSessionRegistry()

	// Create collections and start the outbox drain loop on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if pruned, err := collections.PruneDrafts(app, 7*24*time.Hour); err != nil {
			log.Printf("Warning: draft pruning failed: %v", err)
		} else if pruned > 0 {
			log.Printf("Pruned %d stale draft(s)", pruned)
		}
		outbox.Start(context.Background(), time.Minute)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Apply session middleware globally
		se.Router.BindFunc(handlers.SessionMiddleware(app, sessions))

		// ── Session & areas ──────────────────────────────────────
		se.Router.GET("/session", handlers.HandleSessionView(app))
		se.Router.POST("/session/client", handlers.HandleClientInfo(app))
		se.Router.POST("/session/extra", handlers.HandleExtraSelection(app))
		se.Router.POST("/session/areas", handlers.HandleAreaAdd(app))
		se.Router.DELETE("/session/areas/{index}", handlers.HandleAreaDelete(app))
		se.Router.POST("/session/areas/{index}/select", handlers.HandleAreaSelect(app))
		se.Router.PATCH("/session/areas/{index}", handlers.HandleAreaUpdate(app))
		se.Router.POST("/session/areas/{index}/components/{key}", handlers.HandleComponentToggle(app))
		se.Router.POST("/session/areas/{index}/components/{key}/{sub}", handlers.HandleSubtaskToggle(app))

		// ── Quote & adjustments ──────────────────────────────────
		se.Router.POST("/quote", handlers.HandleQuoteCreate(app, estimation))
		se.Router.POST("/quote/adjustments/commit", handlers.HandleAdjustmentCommit(app, outbox, cfg.UserID))
		se.Router.POST("/quote/adjustments/cancel", handlers.HandleAdjustmentCancel(app))
		se.Router.POST("/quote/adjustments/{index}", handlers.HandleAdjustmentSet(app))
		se.Router.DELETE("/quote/adjustments/{index}", handlers.HandleAdjustmentClear(app))

		// ── Exports ──────────────────────────────────────────────
		se.Router.GET("/quote/export/pdf", handlers.HandleExportPDF(app, documents))
		se.Router.GET("/quote/export/excel", handlers.HandleExportExcel(app))
		se.Router.GET("/quote/email", handlers.HandleQuoteEmail(app, cfg.EmailFrom))

		// ── Saved projects ───────────────────────────────────────
		se.Router.GET("/projects", handlers.HandleProjectList(app, projects))
		se.Router.POST("/projects", handlers.HandleProjectSave(app, projects))
		se.Router.POST("/projects/{id}/load", handlers.HandleProjectLoad(app, projects))
		se.Router.DELETE("/projects", handlers.HandleProjectBulkDelete(app, projects))

		// ── Geocoding ────────────────────────────────────────────
		se.Router.GET("/geocode", handlers.HandleGeocode(app, geocoder))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
