package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/docuexpress/docuexpress-api/internal/application/analytics"
	"github.com/docuexpress/docuexpress-api/internal/application/auth"
	"github.com/docuexpress/docuexpress-api/internal/application/usecase"
	"github.com/docuexpress/docuexpress-api/internal/infrastructure/postgres"
	httpRouter "github.com/docuexpress/docuexpress-api/internal/interfaces/http"
	"github.com/docuexpress/docuexpress-api/pkg/config"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepo(pool)
	papeleriaRepo := postgres.NewPapeleriaRepo(pool)
	tramiteRepo := postgres.NewTramiteRepo(pool)
	costoRepo := postgres.NewCostoRepo(pool)
	precioRepo := postgres.NewPrecioRepo(pool)
	proveedorRepo := postgres.NewProveedorRepo(pool)
	gastoRepo := postgres.NewGastoRepo(pool)
	analyticsRepo := postgres.NewAnalyticsRepo(pool)

	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)
	papeleriaUC := usecase.NewPapeleriaUseCase(papeleriaRepo, log)
	tramiteUC := usecase.NewTramiteUseCase(tramiteRepo, papeleriaRepo, costoRepo, log)
	precioUC := usecase.NewPrecioUseCase(precioRepo, costoRepo, papeleriaRepo, tramiteRepo, log)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo, log)
	gastoUC := usecase.NewGastoUseCase(gastoRepo, proveedorRepo, log)
	buscarUC := usecase.NewBuscarUseCase(papeleriaRepo, tramiteRepo, proveedorRepo, gastoRepo)
	summaryUC := appanalytics.NewSummaryUseCase(analyticsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, tramiteRepo, gastoRepo, papeleriaRepo)
	avanzadoUC := appanalytics.NewAvanzadoUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DocuExpress API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PapeleriaUC: papeleriaUC,
		TramiteUC:   tramiteUC,
		PrecioUC:    precioUC,
		ProveedorUC: proveedorUC,
		GastoUC:     gastoUC,
		BuscarUC:    buscarUC,
		SummaryUC:   summaryUC,
		DashboardUC: dashboardUC,
		AvanzadoUC:  avanzadoUC,
		JWTSecret:   cfg.JWT.Secret,
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
