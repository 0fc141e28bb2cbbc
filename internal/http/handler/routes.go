package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"patternlab/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; all business logic lives in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.PatternService, traceURLExpiry time.Duration) {
	// Health endpoints
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Catalog
	app.Get("/patterns", ListPatterns(svc))
	app.Get("/patterns/:name", GetPattern(svc))
	app.Post("/patterns/:name/run", RunPattern(svc))

	// Run history
	app.Get("/runs", ListRuns(svc))
	app.Get("/runs/:id", GetRun(svc))
	app.Get("/runs/:id/trace", GetRunTrace(svc))
	app.Get("/runs/:id/trace-url", GetRunTraceURL(svc, traceURLExpiry))
	app.Delete("/runs/:id", DeleteRun(svc))
}
