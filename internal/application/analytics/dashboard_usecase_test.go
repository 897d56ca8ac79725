package analytics_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/application/analytics"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/memory"
)

type failingSource struct{}

func (failingSource) EntryQuantities(context.Context, domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	return nil, errors.New("sin conexión")
}

func (failingSource) ExitQuantities(context.Context, domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	return nil, nil
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	entries, exits, tracking := memory.NewEntryStore(), memory.NewExitStore(), memory.NewTrackingStore()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, entries.Create(ctx, &entity.ProductEntry{
			ID: fmt.Sprintf("e%d", i), PartNumber: "X", Quantity: decimal.NewFromInt(10), CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, exits.Create(ctx, &entity.ProductExit{ID: "s1", PartNumber: "X", Quantity: decimal.NewFromInt(8), CreatedAt: base}))
	for i := 0; i < 7; i++ {
		require.NoError(t, tracking.Create(ctx, &entity.TrackingRecord{ID: fmt.Sprintf("t%d", i), CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}

	stock := inventory.NewStockUseCase(memory.NewStockSource(entries, exits), nil)
	got, err := analytics.NewDashboardUseCase(entries, exits, tracking, stock).GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, got.EntriesCount)
	assert.Equal(t, 1, got.ExitsCount)
	assert.True(t, decimal.NewFromInt(42).Equal(got.CurrentStock))
	require.Len(t, got.RecentEntries, 3)
	assert.Equal(t, "e4", got.RecentEntries[0].ID)
	require.Len(t, got.RecentExits, 1)
	require.Len(t, got.RecentTracking, 5)
	assert.Equal(t, "t6", got.RecentTracking[0].ID)
	assert.NotEmpty(t, got.DateLabel)
}

func TestGetSummary_FalloDeStock(t *testing.T) {
	stock := inventory.NewStockUseCase(failingSource{}, nil)
	_, err := analytics.NewDashboardUseCase(memory.NewEntryStore(), memory.NewExitStore(), memory.NewTrackingStore(), stock).
		GetSummary(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
