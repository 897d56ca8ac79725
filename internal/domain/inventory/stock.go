package inventory

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MovementQuantity fila mínima que necesita el cálculo de stock: la parte y la cantidad cruda
// (decimal, número, texto o nil, según la devuelva el backend).
type MovementQuantity struct {
	ID         string
	PartNumber string
	Value      any
}

// Totals acumulado de una colección de movimientos.
type Totals struct {
	Sum      decimal.Decimal
	Records  int
	Unparsed int // registros cuya cantidad se contó como 0
}

// SumQuantities suma las cantidades; los valores no interpretables aportan 0.
func SumQuantities(rows []MovementQuantity) Totals {
	t := Totals{Sum: decimal.Zero}
	for _, r := range rows {
		q, ok := ParseQuantity(r.Value)
		if !ok {
			t.Unparsed++
		}
		t.Sum = t.Sum.Add(q)
		t.Records++
	}
	return t
}

// StockSummary vista derivada: stock = Σ entradas − Σ salidas. Puede ser negativo.
type StockSummary struct {
	PartNumber         string
	Stock              decimal.Decimal
	TotalEntries       decimal.Decimal
	TotalExits         decimal.Decimal
	UnparsedQuantities int
}

// EmptySummary resumen en cero para una búsqueda sin término.
func EmptySummary(partNumber string) StockSummary {
	return StockSummary{
		PartNumber:   partNumber,
		Stock:        decimal.Zero,
		TotalEntries: decimal.Zero,
		TotalExits:   decimal.Zero,
	}
}

// Summarize calcula el resumen a partir de las filas ya filtradas.
func Summarize(partNumber string, entries, exits []MovementQuantity) StockSummary {
	in := SumQuantities(entries)
	out := SumQuantities(exits)
	return StockSummary{
		PartNumber:         partNumber,
		Stock:              in.Sum.Sub(out.Sum),
		TotalEntries:       in.Sum,
		TotalExits:         out.Sum,
		UnparsedQuantities: in.Unparsed + out.Unparsed,
	}
}

// SummarizeByPart agrupa por número de parte exacto y ordena por número de parte.
func SummarizeByPart(entries, exits []MovementQuantity) []StockSummary {
	inByPart := make(map[string][]MovementQuantity)
	outByPart := make(map[string][]MovementQuantity)
	for _, e := range entries {
		inByPart[e.PartNumber] = append(inByPart[e.PartNumber], e)
	}
	for _, e := range exits {
		outByPart[e.PartNumber] = append(outByPart[e.PartNumber], e)
	}

	parts := make([]string, 0, len(inByPart)+len(outByPart))
	for p := range inByPart {
		parts = append(parts, p)
	}
	for p := range outByPart {
		if _, seen := inByPart[p]; !seen {
			parts = append(parts, p)
		}
	}
	sort.Strings(parts)

	out := make([]StockSummary, 0, len(parts))
	for _, p := range parts {
		out = append(out, Summarize(p, inByPart[p], outByPart[p]))
	}
	return out
}
