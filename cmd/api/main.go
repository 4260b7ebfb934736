package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/scope3-api/docs"
	"github.com/jhoicas/scope3-api/internal/application/analytics"
	"github.com/jhoicas/scope3-api/internal/application/assistant"
	"github.com/jhoicas/scope3-api/internal/application/auth"
	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/ingest"
	"github.com/jhoicas/scope3-api/internal/application/report"
	"github.com/jhoicas/scope3-api/internal/application/wizard"
	"github.com/jhoicas/scope3-api/internal/infrastructure/excel"
	"github.com/jhoicas/scope3-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/scope3-api/internal/infrastructure/pdf"
	"github.com/jhoicas/scope3-api/internal/infrastructure/submission"
	httpRouter "github.com/jhoicas/scope3-api/internal/interfaces/http"
	"github.com/jhoicas/scope3-api/pkg/config"
	"github.com/jhoicas/scope3-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("sink", cfg.Submission.Sink).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dest, closeSink, err := submission.NewFromConfig(ctx, cfg, "api", log.Component("submission"))
	if err != nil {
		log.Fatal().Err(err).Msg("destino de envío")
	}
	defer closeSink()

	wizards := memory.NewSessionStore[*wizard.Wizard](cfg.Session.TTL)
	batches := memory.NewSessionStore[*ingest.Pipeline](cfg.Session.TTL)
	conversations := memory.NewSessionStore[*assistant.Conversation](cfg.Session.TTL)
	if cfg.Session.TTL > 0 {
		go sweep(ctx, cfg.Session.TTL/2, log, wizards, batches, conversations)
	}

	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.Docs {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Scope 3 Emissions API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		AuthUC:      authUC,
		WizardSvc:   wizard.NewService(wizards, dest, log.Component("wizard")),
		BatchSvc:    ingest.NewService(batches, dest, log.Component("ingest")),
		DashboardUC: analytics.NewDashboardUseCase(dest, log.Component("dashboard")),
		ReportUC:    report.NewUseCase(infrapdf.NewMarotoReportGenerator(cfg.Report.Author), log.Component("report")),
		AssistantSv: assistant.NewService(conversations),
		Templates: map[string]httpRouter.TemplateFormat{
			"csv":  {ContentType: "text/csv; charset=utf-8", Write: ingest.WriteTemplateCSV},
			"xlsx": {ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Write: excel.WriteTemplate},
		},
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

type sweeper interface {
	Sweep() int
}

// sweep elimina periódicamente las sesiones inactivas.
func sweep(ctx context.Context, every time.Duration, log *logger.Logger, stores ...sweeper) {
	if every < time.Minute {
		every = time.Minute
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n := 0
			for _, s := range stores {
				n += s.Sweep()
			}
			if n > 0 {
				log.Debug().Int("sessions", n).Msg("sesiones expiradas eliminadas")
			}
		}
	}
}

// errorHandler responde los errores de fiber (404 de ruta, cuerpo demasiado grande, pánicos) en JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "error interno"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_" + statusText(code), Message: msg})
}

func statusText(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "ERROR"
	}
}
