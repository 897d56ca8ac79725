package repository

import (
	"context"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
)

// TrackingRepository puerto de persistencia de seguimientos de envío.
type TrackingRepository interface {
	Create(ctx context.Context, record *entity.TrackingRecord) error
	// List devuelve los registros más recientes primero.
	List(ctx context.Context, limit, offset int) ([]*entity.TrackingRecord, error)
}
