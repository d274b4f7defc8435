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
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/crm-sync-hook/internal/application/dto"
	"github.com/jhoicas/crm-sync-hook/internal/application/integration"
	"github.com/jhoicas/crm-sync-hook/internal/application/usecase"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
	"github.com/jhoicas/crm-sync-hook/internal/infrastructure/clock"
	"github.com/jhoicas/crm-sync-hook/internal/infrastructure/metrics"
	"github.com/jhoicas/crm-sync-hook/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/crm-sync-hook/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/crm-sync-hook/internal/interfaces/http"
	"github.com/jhoicas/crm-sync-hook/pkg/config"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Name:  cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("crm_env", cfg.CRM.Environment).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyClock, err := clock.New(cfg.Integration.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria de la compañía")
	}

	recordStore := postgres.NewRecordStore(pool)
	prefsRepo := postgres.NewCompanyPreferenceRepository(pool)
	financialRepo := postgres.NewFinancialRepository(pool)
	errorLogRepo := postgres.NewErrorLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	finTranRepo := postgres.NewFinTranRepository(txRunner)

	// Búsquedas: Postgres, con caché en Redis si está configurado.
	var search repository.SearchRepository = postgres.NewSearchRepository(pool)
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, búsquedas sin caché")
		} else {
			defer client.Close()
			search = infraredis.NewLookupCache(client, search, cfg.Redis.LookupTTL, log)
		}
	}

	companyConfigUC := usecase.NewCompanyConfigUseCase(prefsRepo, usecase.CRMURLs{
		Sandbox:    cfg.CRM.SandboxURL,
		Production: cfg.CRM.ProductionURL,
	})
	financialLib := usecase.NewFinancialLibrary(financialRepo, finTranRepo, errorLogRepo, companyClock, log)

	hookMetrics := metrics.NewHookMetrics()
	hook := integration.NewHook(
		integration.HookConfig{ServiceAccountEmail: cfg.Integration.ServiceAccountEmail},
		companyConfigUC, recordStore, search, financialLib, log, hookMetrics,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Sync Hook API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(hookMetrics.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Hooks:              hook,
		Auth:               httpRouter.AuthConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer},
		DefaultEnvironment: entity.NormalizeEnvKind(cfg.CRM.Environment),
		Logger:             log,
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
