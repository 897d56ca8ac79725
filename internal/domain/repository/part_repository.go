package repository

import (
	"context"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
)

// PartRepository puerto de persistencia del catálogo de repuestos.
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	GetByPartNumber(ctx context.Context, partNumber string) (*entity.Part, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Part, error)
	UpdateEAN(ctx context.Context, id, eanCode string) error
	Delete(ctx context.Context, id string) error
}
