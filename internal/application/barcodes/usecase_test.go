package barcodes_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/application/barcodes"
	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/barcode"
)

type fixedDigits struct{ d int }

func (f fixedDigits) Digit() int { return f.d }

type fakeRenderer struct {
	lastCode string
	lastSize [2]int
	err      error
}

func (f *fakeRenderer) EAN13PNG(code string, w, h int) ([]byte, error) {
	f.lastCode, f.lastSize = code, [2]int{w, h}
	return []byte("png:" + code), f.err
}

func (f *fakeRenderer) QRPNG(text string, size int) ([]byte, error) {
	f.lastSize = [2]int{size, size}
	return []byte("qr"), f.err
}

type fakeSheets struct{ labels []barcodes.Label }

func (f *fakeSheets) LabelSheet(_ context.Context, _ string, labels []barcodes.Label) ([]byte, error) {
	f.labels = labels
	return []byte("%PDF"), nil
}

func newUC(r *fakeRenderer, s *fakeSheets) *barcodes.UseCase {
	return barcodes.NewUseCase(
		barcode.NewGenerator(fixedDigits{0}), r, s,
		barcodes.Settings{Prefix: "789", Width: 380, Height: 150, QRSize: 256}, nil,
	)
}

// ── Generate ──────────────────────────────────────────────────────────────────

func TestGenerate_PorDefectoUnCodigo(t *testing.T) {
	got, err := newUC(&fakeRenderer{}, &fakeSheets{}).Generate("", 0)
	require.NoError(t, err)
	require.Len(t, got.Codes, 1)
	assert.Equal(t, "7890000000000", got.Code)
}

func TestGenerate_Lote(t *testing.T) {
	got, err := barcodes.NewUseCase(nil, nil, nil, barcodes.Settings{}, nil).Generate("560", 25)
	require.NoError(t, err)
	require.Len(t, got.Codes, 25)
	for _, c := range got.Codes {
		assert.True(t, strings.HasPrefix(c, "560"))
		ok, err := barcode.Validate(c)
		require.NoError(t, err)
		assert.True(t, ok, c)
	}
}

func TestGenerate_Limites(t *testing.T) {
	uc := newUC(&fakeRenderer{}, &fakeSheets{})
	_, err := uc.Generate("", barcodes.MaxGenerateCount+1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Generate("", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Generate("78A", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidPrefix)
}

// ── CheckDigit / Validate ─────────────────────────────────────────────────────

func TestCheckDigit(t *testing.T) {
	got, err := newUC(&fakeRenderer{}, &fakeSheets{}).CheckDigit("789123456001")
	require.NoError(t, err)
	assert.Equal(t, 8, got.CheckDigit)
	assert.Equal(t, "7891234560018", got.Code)

	_, err = newUC(&fakeRenderer{}, &fakeSheets{}).CheckDigit("123")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestValidate(t *testing.T) {
	uc := newUC(&fakeRenderer{}, &fakeSheets{})
	ok, err := uc.Validate("7891234560018")
	require.NoError(t, err)
	assert.True(t, ok.Valid)

	bad, err := uc.Validate("7891234560017")
	require.NoError(t, err)
	assert.False(t, bad.Valid)

	_, err = uc.Validate("78912")
	assert.ErrorIs(t, err, domain.ErrInvalidLength)
}

// ── Render ────────────────────────────────────────────────────────────────────

func TestRenderEAN13_UsaTamañoConfigurado(t *testing.T) {
	r := &fakeRenderer{}
	out, err := newUC(r, &fakeSheets{}).RenderEAN13("7891234560018")
	require.NoError(t, err)
	assert.Equal(t, "png:7891234560018", string(out))
	assert.Equal(t, [2]int{380, 150}, r.lastSize)
}

func TestRenderEAN13_RechazaCodigoInvalido(t *testing.T) {
	r := &fakeRenderer{}
	_, err := newUC(r, &fakeSheets{}).RenderEAN13("7891234560017")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, r.lastCode)
}

func TestRenderQR(t *testing.T) {
	uc := newUC(&fakeRenderer{}, &fakeSheets{})
	_, err := uc.RenderQR("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RenderQR(strings.Repeat("x", barcodes.MaxQRBytes+1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.RenderQR("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "qr", string(out))
}

func TestRenderQR_FalloDelRenderer(t *testing.T) {
	causa := errors.New("boom")
	_, err := newUC(&fakeRenderer{err: causa}, &fakeSheets{}).RenderQR("x")
	assert.ErrorIs(t, err, causa)
}

// ── LabelSheet ────────────────────────────────────────────────────────────────

func TestLabelSheet(t *testing.T) {
	s := &fakeSheets{}
	uc := newUC(&fakeRenderer{}, s)

	_, err := uc.LabelSheet(context.Background(), dto.LabelSheetRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.LabelSheet(context.Background(), dto.LabelSheetRequest{Codes: []string{"7891234560018", "123"}})
	assert.ErrorIs(t, err, domain.ErrInvalidLength)

	out, err := uc.LabelSheet(context.Background(), dto.LabelSheetRequest{Codes: []string{" 7891234560018 "}})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out))
	require.Len(t, s.labels, 1)
	assert.Equal(t, "7891234560018", s.labels[0].Code)
}
