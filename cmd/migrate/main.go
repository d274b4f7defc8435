// migrate aplica las migraciones SQL embebidas sobre la base configurada (DATABASE_URL o DB_*).
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"os"

	"github.com/jhoicas/crm-sync-hook/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-sync-hook/pkg/config"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Name: "migrate"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	version, err := postgres.Migrate(pool)
	if err != nil {
		log.Error().Err(err).Uint("version", version).Msg("migración fallida")
		pool.Close()
		os.Exit(1)
	}
	log.Info().Uint("version", version).Msg("migraciones al día")
}
