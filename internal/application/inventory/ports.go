package inventory

import (
	"context"

	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

// Colecciones leídas por el cálculo de stock (nombres de tabla en el backend).
const (
	CollectionEntries = "product_entries"
	CollectionExits   = "product_exits"
)

// StockSource lectura de cantidades de movimientos. Solo lectura: el cálculo de stock
// nunca escribe. Las implementaciones deben respetar la cancelación de ctx.
type StockSource interface {
	EntryQuantities(ctx context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error)
	ExitQuantities(ctx context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error)
}
