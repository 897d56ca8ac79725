package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
)

// Campos por los que se buscan movimientos.
const (
	FilterPartNumber    = "partNumber"
	FilterInvoiceNumber = "invoiceNumber" // solo entradas
	FilterSupplier      = "supplier"      // solo entradas
)

// MovementSearch criterios de búsqueda de entradas o salidas.
// Term se compara por subcadena sin distinguir mayúsculas sobre el campo FilterType.
// En salidas solo aplica FilterPartNumber; el caso de uso rechaza los demás.
type MovementSearch struct {
	FilterType string
	Term       string
	Date       *time.Time
}

// EntryRepository puerto de persistencia de entradas (solo alta y lectura).
type EntryRepository interface {
	Create(ctx context.Context, entry *entity.ProductEntry) error
	Search(ctx context.Context, s MovementSearch) ([]*entity.ProductEntry, error)
	Last(ctx context.Context) (*entity.ProductEntry, error)
	Recent(ctx context.Context, limit int) ([]*entity.ProductEntry, error)
	Count(ctx context.Context) (int, error)
	ExistsForPart(ctx context.Context, partNumber string) (bool, error)
}

// ExitRepository puerto de persistencia de salidas (solo alta y lectura).
type ExitRepository interface {
	Create(ctx context.Context, exit *entity.ProductExit) error
	Search(ctx context.Context, s MovementSearch) ([]*entity.ProductExit, error)
	Last(ctx context.Context) (*entity.ProductExit, error)
	Recent(ctx context.Context, limit int) ([]*entity.ProductExit, error)
	Count(ctx context.Context) (int, error)
	ExistsForPart(ctx context.Context, partNumber string) (bool, error)
}
