package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/usecase"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/infrastructure/memory"
)

type zeroDigits struct{}

func (zeroDigits) Digit() int { return 0 }

type fakePickList struct{ lines []usecase.PickListLine }

func (f *fakePickList) PickList(_ context.Context, _ string, lines []usecase.PickListLine) ([]byte, error) {
	f.lines = lines
	return []byte("%PDF"), nil
}

func ptr[T any](v T) *T { return &v }

// ── Repuestos ─────────────────────────────────────────────────────────────────

type partFixture struct {
	uc      *usecase.PartUseCase
	parts   *memory.PartStore
	entries *memory.EntryStore
	exits   *memory.ExitStore
}

func newPartFixture() *partFixture {
	f := &partFixture{parts: memory.NewPartStore(), entries: memory.NewEntryStore(), exits: memory.NewExitStore()}
	f.uc = usecase.NewPartUseCase(f.parts, f.entries, f.exits, barcode.NewGenerator(zeroDigits{}), "789")
	return f
}

func TestPartCreate_OriginalPorDefecto(t *testing.T) {
	f := newPartFixture()
	got, err := f.uc.Create(context.Background(), "u1", dto.CreatePartRequest{PartNumber: " AB-1 ", PartName: "Filtro"})
	require.NoError(t, err)
	assert.Equal(t, "AB-1", got.PartNumber)
	assert.True(t, got.IsOriginal)
	assert.Equal(t, "u1", got.CreatedBy)

	other, err := f.uc.Create(context.Background(), "u1", dto.CreatePartRequest{PartNumber: "AB-2", PartName: "Filtro", IsOriginal: ptr(false)})
	require.NoError(t, err)
	assert.False(t, other.IsOriginal)
}

func TestPartCreate_Errores(t *testing.T) {
	f := newPartFixture()
	_, err := f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "X", PartName: "n", EANCode: "7891234560017"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "X", PartName: "n", EANCode: "789"})
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	_, err = f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "X", PartName: "n", EANCode: "7891234560018"})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "X", PartName: "otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPartAssignEAN(t *testing.T) {
	f := newPartFixture()
	p, err := f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "X", PartName: "n"})
	require.NoError(t, err)

	got, err := f.uc.AssignEAN(context.Background(), p.ID, dto.AssignEANRequest{})
	require.NoError(t, err)
	assert.Equal(t, "7890000000000", got.EANCode)

	stored, err := f.uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "7890000000000", stored.EANCode)

	_, err = f.uc.AssignEAN(context.Background(), "no-existe", dto.AssignEANRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.AssignEAN(context.Background(), p.ID, dto.AssignEANRequest{Prefix: "1234567890123"})
	assert.ErrorIs(t, err, domain.ErrInvalidPrefix)
}

func TestPartDelete_ConMovimientosEsConflicto(t *testing.T) {
	f := newPartFixture()
	p, err := f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "X", PartName: "n"})
	require.NoError(t, err)
	require.NoError(t, f.exits.Create(context.Background(), &entity.ProductExit{ID: "e1", PartNumber: "X", Quantity: decimal.NewFromInt(1)}))

	assert.ErrorIs(t, f.uc.Delete(context.Background(), p.ID), domain.ErrConflict)

	libre, err := f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: "Y", PartName: "n"})
	require.NoError(t, err)
	require.NoError(t, f.uc.Delete(context.Background(), libre.ID))
	assert.ErrorIs(t, f.uc.Delete(context.Background(), libre.ID), domain.ErrNotFound)
}

func TestPartList_Paginacion(t *testing.T) {
	f := newPartFixture()
	for _, pn := range []string{"A", "B", "C"} {
		_, err := f.uc.Create(context.Background(), "u", dto.CreatePartRequest{PartNumber: pn, PartName: pn})
		require.NoError(t, err)
	}
	got, err := f.uc.List(context.Background(), dto.PageRequest{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "B", got.Items[0].PartNumber)
}

// ── Proveedores y seguimiento ─────────────────────────────────────────────────

func TestSupplierCreateYList(t *testing.T) {
	uc := usecase.NewSupplierUseCase(memory.NewSupplierStore())
	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Acme Ltda", Document: "12.345.678/0001-90"})
	require.NoError(t, err)
	got, err := uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 20, got.Page.Limit)
}

func TestTrackingCreate(t *testing.T) {
	uc := usecase.NewTrackingUseCase(memory.NewTrackingStore())
	_, err := uc.Create(context.Background(), dto.CreateTrackingRequest{OrderNumber: "P-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateTrackingRequest{OrderNumber: "P-1", TrackingCode: "BR1", OrderValue: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.Create(context.Background(), dto.CreateTrackingRequest{
		OrderNumber: "P-1", TrackingCode: "BR1", OrderValue: decimal.RequireFromString("150.90"), Date: "2026-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", got.Date)
}

func TestTrackingRecent_MasNuevosPrimero(t *testing.T) {
	uc := usecase.NewTrackingUseCase(memory.NewTrackingStore())
	for _, code := range []string{"A", "B", "C"} {
		_, err := uc.Create(context.Background(), dto.CreateTrackingRequest{OrderNumber: "P", TrackingCode: code})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}
	got, err := uc.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].TrackingCode)
	assert.Equal(t, "B", got[1].TrackingCode)
}

// ── Solicitudes ───────────────────────────────────────────────────────────────

func TestPartsRequest_FlujoCompleto(t *testing.T) {
	parts := memory.NewPartStore()
	require.NoError(t, parts.Create(context.Background(), &entity.Part{ID: "p1", PartNumber: "AB-1", PartName: "Filtro", EANCode: "7891234560018"}))
	pdf := &fakePickList{}
	uc := usecase.NewPartsRequestUseCase(memory.NewPartsRequestStore(), parts, pdf)

	_, err := uc.Create(context.Background(), dto.CreatePartsRequestRequest{PartNumber: "AB-1", Quantity: decimal.NewFromInt(2), Location: "sótano"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req, err := uc.Create(context.Background(), dto.CreatePartsRequestRequest{
		PartNumber: "AB-1", Quantity: decimal.NewFromInt(2), Location: entity.LocationSecondFloor, Requester: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PartsRequestPending, req.Status)

	_, err = uc.PickList(context.Background())
	require.NoError(t, err)
	require.Len(t, pdf.lines, 1)
	assert.Equal(t, "Filtro", pdf.lines[0].PartName)
	assert.Equal(t, "7891234560018", pdf.lines[0].EANCode)

	done, err := uc.Complete(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PartsRequestCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = uc.Complete(context.Background(), req.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Complete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pending, err := uc.List(context.Background(), entity.PartsRequestPending)
	require.NoError(t, err)
	assert.Zero(t, pending.Total)

	_, err = uc.List(context.Background(), "cancelada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
