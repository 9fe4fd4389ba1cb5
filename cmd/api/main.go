package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/smartax-ai/smartax-api/docs"
	appcfdi "github.com/smartax-ai/smartax-api/internal/application/cfdi"
	appopt "github.com/smartax-ai/smartax-api/internal/application/optimization"
	"github.com/smartax-ai/smartax-api/internal/application/session"
	"github.com/smartax-ai/smartax-api/internal/application/simulator"
	"github.com/smartax-ai/smartax-api/internal/application/taxdraft"
	infracfdi "github.com/smartax-ai/smartax-api/internal/infrastructure/cfdi"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/memory"
	"github.com/smartax-ai/smartax-api/internal/infrastructure/metrics"
	infrapdf "github.com/smartax-ai/smartax-api/internal/infrastructure/pdf"
	httpRouter "github.com/smartax-ai/smartax-api/internal/interfaces/http"
	"github.com/smartax-ai/smartax-api/pkg/config"
	"github.com/smartax-ai/smartax-api/pkg/logger"
)

// @title       SmarTax AI API
// @version     1.0
// @description Estimación fiscal para contribuyentes mexicanos: cálculo de impuestos, simulador de optimización y validación simulada de CFDI.
// @BasePath    /
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Estado por sesión en memoria; vive lo mismo que el token.
	ttl := cfg.Session.TTL()
	sessionRepo := memory.NewSessionRepository(ttl)
	draftRepo := memory.NewTaxDraftRepository(ttl)
	scenarioRepo := memory.NewScenarioRepository(ttl)
	batchRepo := memory.NewCFDIBatchRepository(ttl)
	comparisonRepo := memory.NewComparisonRepository(ttl)
	defer sessionRepo.Close()
	defer draftRepo.Close()
	defer scenarioRepo.Close()
	defer batchRepo.Close()
	defer comparisonRepo.Close()

	prom := metrics.NewPrometheus()

	verifier := infracfdi.NewSimulatedVerifier(
		infracfdi.NewRandomSource(cfg.Simulation.Seed),
		cfg.Simulation.CFDIDelay,
		cfg.Simulation.CFDISingleDelay,
	)

	sessionUC := session.NewUseCase(sessionRepo, prom, log.Component("session"),
		cfg.Session.Secret, cfg.Session.Issuer, ttl,
		draftRepo, scenarioRepo, batchRepo, comparisonRepo)
	taxUC := taxdraft.NewUseCase(draftRepo, infrapdf.NewMarotoTaxReportGenerator(), prom, log.Component("taxdraft"))
	simulatorUC := simulator.NewUseCase(scenarioRepo, prom, log.Component("simulator"), cfg.Simulation.AnalysisDelay)
	cfdiUC := appcfdi.NewUseCase(batchRepo, verifier, infracfdi.NewCodec(), prom, log.Component("cfdi"))
	optimizationUC := appopt.NewUseCase(comparisonRepo, log.Component("optimization"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		// La validación de lotes y el análisis del simulador esperan retardos simulados.
		WriteTimeout: time.Minute * 2,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SmarTax AI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(prom.Registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:      sessionUC,
		TaxUC:          taxUC,
		SimulatorUC:    simulatorUC,
		CFDIUC:         cfdiUC,
		OptimizationUC: optimizationUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
