package main

import (
	"context"

	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
	infrapdf "github.com/jhoicas/ventas-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-pro/internal/infrastructure/postgres"
	"github.com/jhoicas/ventas-pro/internal/interfaces/console"
	"github.com/jhoicas/ventas-pro/pkg/config"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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

	if err := postgres.CreateSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	stockRepo := postgres.NewStockItemRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewUseCase(stockRepo, txRunner)
	salesUC := sales.NewUseCase(stockRepo, purchaseRepo, txRunner)
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name)

	ui := console.New(stockUC, salesUC, receipts, cfg.App.ReceiptDir, log)
	ui.Run(ctx)

	log.Info().Msg("aplicación detenida")
}
