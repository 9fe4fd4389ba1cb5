package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartax-ai/smartax-api/internal/application/cfdi"
	"github.com/smartax-ai/smartax-api/internal/application/optimization"
	"github.com/smartax-ai/smartax-api/internal/application/session"
	"github.com/smartax-ai/smartax-api/internal/application/simulator"
	"github.com/smartax-ai/smartax-api/internal/application/taxdraft"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC      *session.UseCase
	TaxUC          *taxdraft.UseCase
	SimulatorUC    *simulator.UseCase
	CFDIUC         *cfdi.UseCase
	OptimizationUC *optimization.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	sessionHandler := NewSessionHandler(deps.SessionUC)
	taxHandler := NewTaxHandler(deps.TaxUC)
	simulatorHandler := NewSimulatorHandler(deps.SimulatorUC)
	cfdiHandler := NewCFDIHandler(deps.CFDIUC)
	optimizationHandler := NewOptimizationHandler(deps.OptimizationUC)

	// Público: sesión, cálculo sin estado y catálogos
	api.Post("/sessions", sessionHandler.Create)
	api.Post("/tax/calculate", taxHandler.Calculate)

	opt := api.Group("/optimization")
	opt.Get("/strategies", optimizationHandler.Catalog)
	opt.Get("/industries", optimizationHandler.Industries)
	opt.Post("/analyze", optimizationHandler.Analyze)

	api.Get("/simulator/strategies", simulatorHandler.Strategies)
	api.Get("/cfdi/template", cfdiHandler.Template)

	// Rutas protegidas (requieren token de sesión)
	protected := api.Group("/", SessionMiddleware(deps.SessionUC))
	protected.Delete("/sessions", sessionHandler.End)

	comparison := protected.Group("/optimization/comparison")
	comparison.Post("/", optimizationHandler.AddToComparison)
	comparison.Get("/", optimizationHandler.ListComparison)
	comparison.Delete("/", optimizationHandler.ClearComparison)

	// Borradores: las rutas de /active antes de /:id
	drafts := protected.Group("/drafts")
	drafts.Post("/", taxHandler.NewDraft)
	drafts.Get("/", taxHandler.List)
	drafts.Get("/active", taxHandler.GetActive)
	drafts.Put("/active", taxHandler.UpdateActive)
	drafts.Post("/active/calculate", taxHandler.CalculateActive)
	drafts.Post("/active/save", taxHandler.SaveActive)
	drafts.Get("/active/export/json", taxHandler.ExportJSON)
	drafts.Get("/active/export/pdf", taxHandler.ExportPDF)
	drafts.Get("/:id", taxHandler.Get)
	drafts.Delete("/:id", taxHandler.Delete)
	drafts.Post("/:id/load", taxHandler.Load)

	sim := protected.Group("/simulator")
	sim.Get("/", simulatorHandler.Get)
	sim.Put("/situation", simulatorHandler.UpdateSituation)
	sim.Put("/name", simulatorHandler.Rename)
	sim.Put("/optimizations/:key", simulatorHandler.SetOptimization)
	sim.Post("/optimizations/:key/toggle", simulatorHandler.ToggleOptimization)
	sim.Post("/advance", simulatorHandler.Advance)
	sim.Post("/back", simulatorHandler.Back)
	sim.Post("/analyze", simulatorHandler.Analyze)
	sim.Post("/reset", simulatorHandler.Reset)

	cfdiGroup := protected.Group("/cfdi")
	cfdiGroup.Get("/", cfdiHandler.Get)
	cfdiGroup.Post("/records", cfdiHandler.AddRecord)
	cfdiGroup.Delete("/records/:index", cfdiHandler.RemoveRecord)
	cfdiGroup.Post("/upload/csv", cfdiHandler.UploadCSV)
	cfdiGroup.Post("/upload/xml", cfdiHandler.UploadXML)
	cfdiGroup.Post("/validate", cfdiHandler.ValidateAll)
	cfdiGroup.Post("/validate-single", cfdiHandler.ValidateSingle)
	cfdiGroup.Get("/export", cfdiHandler.Export)
	cfdiGroup.Post("/reset", cfdiHandler.Reset)
}
