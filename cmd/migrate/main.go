// Comando migrate: crea las tablas stock_items y purchases si no existen.
// Útil para preparar una base nueva sin arrancar el menú.
package main

import (
	"context"

	"github.com/jhoicas/ventas-pro/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-pro/pkg/config"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.CreateSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("esquema creado")
}
