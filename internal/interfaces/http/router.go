package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/scope3-api/internal/application/analytics"
	"github.com/jhoicas/scope3-api/internal/application/assistant"
	"github.com/jhoicas/scope3-api/internal/application/auth"
	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/ingest"
	"github.com/jhoicas/scope3-api/internal/application/report"
	"github.com/jhoicas/scope3-api/internal/application/wizard"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	AuthUC      *auth.AuthUseCase
	WizardSvc   *wizard.Service
	BatchSvc    *ingest.Service
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.UseCase
	AssistantSv *assistant.Service
	Templates   map[string]TemplateFormat
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", App: deps.AppName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Formulario paso a paso
	wizards := protected.Group("/wizard")
	wizardHandler := NewWizardHandler(deps.WizardSvc)
	wizards.Post("/", wizardHandler.Create)
	wizards.Get("/:id", wizardHandler.Get)
	wizards.Patch("/:id/draft", wizardHandler.UpdateDraft)
	wizards.Post("/:id/next", wizardHandler.Next)
	wizards.Post("/:id/back", wizardHandler.Back)
	wizards.Post("/:id/submit", wizardHandler.Submit)
	wizards.Delete("/:id", wizardHandler.Delete)

	// Carga por lotes (template antes de /:id)
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchSvc, deps.Templates)
	batches.Post("/", batchHandler.Create)
	batches.Get("/template", batchHandler.Template)
	batches.Get("/:id", batchHandler.Get)
	batches.Post("/:id/file", batchHandler.Upload)
	batches.Post("/:id/confirm", batchHandler.Confirm)
	batches.Post("/:id/reupload", batchHandler.Reupload)
	batches.Delete("/:id", batchHandler.Delete)

	// Tablero y análisis
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
	protected.Get("/analysis", dashboardHandler.GetAnalysis)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/templates", reportHandler.Templates)
	protected.Post("/reports", reportHandler.Generate)

	// Asistente
	assistantHandler := NewAssistantHandler(deps.AssistantSv)
	protected.Post("/assistant/messages", assistantHandler.Send)
}
