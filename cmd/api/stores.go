package main

import (
	"context"

	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-repuestos/pkg/config"
)

// stores repositorios del backend elegido con DB_DRIVER.
type stores struct {
	entries   repository.EntryRepository
	exits     repository.ExitRepository
	parts     repository.PartRepository
	suppliers repository.SupplierRepository
	tracking  repository.TrackingRepository
	requests  repository.PartsRequestRepository
	stock     inventory.StockSource
}

// openStores abre PostgreSQL o, con DB_DRIVER=memory, stores en memoria que se pierden al salir.
func openStores(ctx context.Context, cfg config.DBConfig) (*stores, func(), error) {
	if cfg.Driver == "memory" {
		entries, exits := memory.NewEntryStore(), memory.NewExitStore()
		return &stores{
			entries:   entries,
			exits:     exits,
			parts:     memory.NewPartStore(),
			suppliers: memory.NewSupplierStore(),
			tracking:  memory.NewTrackingStore(),
			requests:  memory.NewPartsRequestStore(),
			stock:     memory.NewStockSource(entries, exits),
		}, func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return &stores{
		entries:   postgres.NewEntryRepository(pool),
		exits:     postgres.NewExitRepository(pool),
		parts:     postgres.NewPartRepository(pool),
		suppliers: postgres.NewSupplierRepository(pool),
		tracking:  postgres.NewTrackingRepository(pool),
		requests:  postgres.NewPartsRequestRepository(pool),
		stock:     postgres.NewStockSource(pool),
	}, pool.Close, nil
}
