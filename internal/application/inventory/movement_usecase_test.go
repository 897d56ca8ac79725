package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/memory"
)

type movementFixture struct {
	uc      *inventory.MovementUseCase
	stock   *inventory.StockUseCase
	entries *memory.EntryStore
	exits   *memory.ExitStore
	clock   time.Time
}

func newMovementFixture() *movementFixture {
	f := &movementFixture{
		entries: memory.NewEntryStore(),
		exits:   memory.NewExitStore(),
		clock:   time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	f.uc = inventory.NewMovementUseCase(f.entries, f.exits, nil).WithClock(func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	})
	f.stock = inventory.NewStockUseCase(memory.NewStockSource(f.entries, f.exits), nil)
	return f
}

func (f *movementFixture) entry(t *testing.T, part, qty, invoice, supplier string) {
	t.Helper()
	_, err := f.uc.RegisterEntry(context.Background(), "user-1", dto.RegisterEntryRequest{
		PartNumber: part, Quantity: d(qty), InvoiceNumber: invoice, Supplier: supplier,
	})
	require.NoError(t, err)
}

func (f *movementFixture) exit(t *testing.T, part, qty string) {
	t.Helper()
	_, err := f.uc.RegisterExit(context.Background(), "user-1", dto.RegisterExitRequest{
		PartNumber: part, Quantity: d(qty), Reason: "venta", Responsible: "Ana",
	})
	require.NoError(t, err)
}

// ── Registro ──────────────────────────────────────────────────────────────────

func TestRegisterEntry_FechaVaciaEsHoy(t *testing.T) {
	f := newMovementFixture()
	got, err := f.uc.RegisterEntry(context.Background(), "user-1", dto.RegisterEntryRequest{
		PartNumber: "  AB-100 ", Quantity: d("4"),
	})
	require.NoError(t, err)
	assert.Equal(t, "AB-100", got.PartNumber)
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, "user-1", got.CreatedBy)
	assert.NotEmpty(t, got.ID)
}

func TestRegisterEntry_Validaciones(t *testing.T) {
	f := newMovementFixture()
	casos := []dto.RegisterEntryRequest{
		{PartNumber: "", Quantity: d("1")},
		{PartNumber: "X", Quantity: d("0")},
		{PartNumber: "X", Quantity: d("-2")},
		{PartNumber: "X", Quantity: d("1"), Date: "10/03/2026"},
	}
	for _, in := range casos {
		_, err := f.uc.RegisterEntry(context.Background(), "u", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", in)
	}
}

func TestRegisterExit_PermiteStockNegativo(t *testing.T) {
	f := newMovementFixture()
	f.entry(t, "X", "2", "NF-1", "ACME")
	f.exit(t, "X", "9")

	got, err := f.stock.ComputeStock(context.Background(), "X", "")
	require.NoError(t, err)
	assert.True(t, d("-7").Equal(got.Stock))
}

func TestMovimientos_AlimentanElStock(t *testing.T) {
	f := newMovementFixture()
	f.entry(t, "X", "10", "NF-1", "ACME")
	f.entry(t, "X", "5", "NF-2", "ACME")
	f.exit(t, "X", "3")

	got, err := f.stock.ComputeStock(context.Background(), "X", "")
	require.NoError(t, err)
	assert.True(t, d("12").Equal(got.Stock))
}

// ── Búsqueda ──────────────────────────────────────────────────────────────────

func TestSearch_EntradasPorProveedor(t *testing.T) {
	f := newMovementFixture()
	f.entry(t, "A-1", "1", "NF-10", "Acme Ltda")
	f.entry(t, "B-2", "1", "NF-11", "Bosch")

	got, err := f.uc.Search(context.Background(), dto.MovementSearchRequest{
		Section: "entry", FilterType: "supplier", Term: "acme",
	})
	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	assert.Equal(t, "A-1", got.Entries[0].PartNumber)
}

func TestSearch_TerminoVacioDevuelveVacio(t *testing.T) {
	f := newMovementFixture()
	f.entry(t, "A-1", "1", "NF-10", "Acme")

	got, err := f.uc.Search(context.Background(), dto.MovementSearchRequest{Section: "entry", Term: "  "})
	require.NoError(t, err)
	assert.Zero(t, got.Total)
	assert.Empty(t, got.Entries)
}

func TestSearch_FiltroNoAplicaASalidas(t *testing.T) {
	f := newMovementFixture()
	_, err := f.uc.Search(context.Background(), dto.MovementSearchRequest{
		Section: "exit", FilterType: "invoiceNumber", Term: "NF",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Search(context.Background(), dto.MovementSearchRequest{Section: "entry", FilterType: "color", Term: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Search(context.Background(), dto.MovementSearchRequest{Section: "otro", Term: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearch_SalidasPorFecha(t *testing.T) {
	f := newMovementFixture()
	_, err := f.uc.RegisterExit(context.Background(), "u", dto.RegisterExitRequest{PartNumber: "X-1", Quantity: d("1"), Date: "2026-01-05"})
	require.NoError(t, err)
	_, err = f.uc.RegisterExit(context.Background(), "u", dto.RegisterExitRequest{PartNumber: "X-1", Quantity: d("2"), Date: "2026-01-06"})
	require.NoError(t, err)

	got, err := f.uc.Search(context.Background(), dto.MovementSearchRequest{Section: "exit", Term: "x-1", Date: "2026-01-06"})
	require.NoError(t, err)
	require.Equal(t, 1, got.Total)
	assert.True(t, d("2").Equal(got.Exits[0].Quantity))
}

// ── Último registro ───────────────────────────────────────────────────────────

func TestLastRecord(t *testing.T) {
	f := newMovementFixture()

	empty, err := f.uc.LastRecord(context.Background(), "entry")
	require.NoError(t, err)
	assert.Nil(t, empty.Entry)

	f.entry(t, "A", "1", "", "")
	f.entry(t, "B", "1", "", "")
	got, err := f.uc.LastRecord(context.Background(), "entry")
	require.NoError(t, err)
	require.NotNil(t, got.Entry)
	assert.Equal(t, "B", got.Entry.PartNumber)

	f.exit(t, "C", "1")
	gotExit, err := f.uc.LastRecord(context.Background(), "exit")
	require.NoError(t, err)
	require.NotNil(t, gotExit.Exit)
	assert.Equal(t, "C", gotExit.Exit.PartNumber)
}
