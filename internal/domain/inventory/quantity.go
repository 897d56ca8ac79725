package inventory

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity normaliza la cantidad cruda de un movimiento tal como llega del backend.
// Números se usan tal cual; texto se interpreta como decimal. Si el valor falta o no es
// interpretable devuelve (0, false): el movimiento suma cero y el llamador lo contabiliza.
func ParseQuantity(v any) (decimal.Decimal, bool) {
	switch q := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return q, true
	case *decimal.Decimal:
		if q == nil {
			return decimal.Zero, false
		}
		return *q, true
	case decimal.NullDecimal:
		if !q.Valid {
			return decimal.Zero, false
		}
		return q.Decimal, true
	case int:
		return decimal.NewFromInt(int64(q)), true
	case int32:
		return decimal.NewFromInt32(q), true
	case int64:
		return decimal.NewFromInt(q), true
	case float32:
		return fromFloat(float64(q))
	case float64:
		return fromFloat(q)
	case json.Number:
		return fromText(q.String())
	case string:
		return fromText(q)
	case *string:
		if q == nil {
			return decimal.Zero, false
		}
		return fromText(*q)
	default:
		return decimal.Zero, false
	}
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

// fromText exige el texto completo como número: "12abc" no es 12.
func fromText(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
