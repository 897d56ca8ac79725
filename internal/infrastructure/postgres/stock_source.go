package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

var _ inventory.StockSource = (*StockSource)(nil)

// StockSource lee cantidades crudas de product_entries y product_exits.
// quantity se lee como texto: filas importadas con valores ilegibles o NULL no
// rompen la lectura y el dominio las cuenta como 0.
type StockSource struct {
	q Querier
}

// NewStockSource construye la fuente. Pasar pool o tx (Querier).
func NewStockSource(q Querier) *StockSource {
	return &StockSource{q: q}
}

// EntryQuantities cantidades de entradas que cumplen el filtro.
func (s *StockSource) EntryQuantities(ctx context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	return s.quantities(ctx, inventory.CollectionEntries, f)
}

// ExitQuantities cantidades de salidas que cumplen el filtro.
func (s *StockSource) ExitQuantities(ctx context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	return s.quantities(ctx, inventory.CollectionExits, f)
}

func (s *StockSource) quantities(ctx context.Context, table string, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	query := `SELECT id, part_number, quantity::text FROM ` + table
	var args []any
	if f.PartNumber != "" {
		cond, arg := matchCondition("part_number", f.Match, f.PartNumber, "$1")
		query += ` WHERE ` + cond
		args = append(args, arg)
	}

	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]domaininv.MovementQuantity, 0)
	for rows.Next() {
		var id, partNumber string
		var qty *string
		if err := rows.Scan(&id, &partNumber, &qty); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out = append(out, domaininv.MovementQuantity{ID: id, PartNumber: partNumber, Value: qty})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows %s: %w", table, err)
	}
	return out, nil
}
