package inventory_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func rows(part string, values ...any) []inventory.MovementQuantity {
	out := make([]inventory.MovementQuantity, 0, len(values))
	for _, v := range values {
		out = append(out, inventory.MovementQuantity{PartNumber: part, Value: v})
	}
	return out
}

// ── ParseQuantity ─────────────────────────────────────────────────────────────

func TestParseQuantity_Tipos(t *testing.T) {
	texto := " 2.5 "
	casos := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"decimal", dec("4.25"), "4.25", true},
		{"int", 10, "10", true},
		{"int64", int64(-3), "-3", true},
		{"float64", 1.5, "1.5", true},
		{"json.Number", json.Number("7"), "7", true},
		{"texto", "12", "12", true},
		{"texto con espacios", &texto, "2.5", true},
		{"texto no numérico", "abc", "0", false},
		{"número con sufijo", "12abc", "0", false},
		{"unidad pegada", "3 un", "0", false},
		{"texto vacío", "", "0", false},
		{"nil", nil, "0", false},
		{"puntero nil", (*string)(nil), "0", false},
		{"NaN", math.NaN(), "0", false},
		{"tipo desconocido", struct{}{}, "0", false},
	}
	for _, c := range casos {
		t.Run(c.name, func(t *testing.T) {
			got, ok := inventory.ParseQuantity(c.in)
			assert.Equal(t, c.ok, ok)
			assert.True(t, dec(c.want).Equal(got), "got %s want %s", got, c.want)
		})
	}
}

// ── Summarize ─────────────────────────────────────────────────────────────────

func TestSummarize_EntradasMenosSalidas(t *testing.T) {
	s := inventory.Summarize("X", rows("X", 10, 5), rows("X", 3))
	assert.True(t, dec("12").Equal(s.Stock))
	assert.True(t, dec("15").Equal(s.TotalEntries))
	assert.True(t, dec("3").Equal(s.TotalExits))
	assert.Zero(t, s.UnparsedQuantities)
}

func TestSummarize_StockNegativoNoSeRecorta(t *testing.T) {
	s := inventory.Summarize("X", rows("X", 2), rows("X", 9))
	assert.True(t, dec("-7").Equal(s.Stock), "stock = %s", s.Stock)
}

func TestSummarize_CantidadInvalidaCuentaCero(t *testing.T) {
	s := inventory.Summarize("X", rows("X", "abc", "4", nil), rows("X", "1"))
	assert.True(t, dec("4").Equal(s.TotalEntries))
	assert.True(t, dec("3").Equal(s.Stock))
	assert.Equal(t, 2, s.UnparsedQuantities)
}

func TestSummarize_SinFilas(t *testing.T) {
	s := inventory.Summarize("X", nil, nil)
	assert.True(t, s.Stock.IsZero())
	assert.True(t, s.TotalEntries.IsZero())
	assert.True(t, s.TotalExits.IsZero())
}

func TestSummarizeByPart_AgrupaYOrdena(t *testing.T) {
	entries := append(rows("B-2", 5), rows("A-1", 1, 1)...)
	exits := append(rows("A-1", 3), rows("C-3", 4)...)

	list := inventory.SummarizeByPart(entries, exits)
	require.Len(t, list, 3)
	assert.Equal(t, "A-1", list[0].PartNumber)
	assert.True(t, dec("-1").Equal(list[0].Stock))
	assert.Equal(t, "B-2", list[1].PartNumber)
	assert.True(t, dec("5").Equal(list[1].Stock))
	assert.Equal(t, "C-3", list[2].PartNumber)
	assert.True(t, dec("-4").Equal(list[2].Stock))
}

// ── MatchMode ─────────────────────────────────────────────────────────────────

func TestParseMatchMode(t *testing.T) {
	m, err := inventory.ParseMatchMode("")
	require.NoError(t, err)
	assert.Equal(t, inventory.MatchContains, m)

	m, err = inventory.ParseMatchMode("EXACT")
	require.NoError(t, err)
	assert.Equal(t, inventory.MatchExact, m)

	_, err = inventory.ParseMatchMode("prefix")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMatchMode_Matches(t *testing.T) {
	assert.True(t, inventory.MatchContains.Matches("FILTRO-OLEO-123", "oleo"))
	assert.False(t, inventory.MatchContains.Matches("FILTRO-AR", "oleo"))
	assert.True(t, inventory.MatchExact.Matches("ABC-1", "ABC-1"))
	assert.False(t, inventory.MatchExact.Matches("ABC-1", "abc-1"))
	assert.False(t, inventory.MatchExact.Matches("ABC-10", "ABC-1"))
}
