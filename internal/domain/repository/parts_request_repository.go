package repository

import (
	"context"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
)

// PartsRequestRepository puerto de persistencia de solicitudes de repuestos.
type PartsRequestRepository interface {
	Create(ctx context.Context, req *entity.PartsRequest) error
	GetByID(ctx context.Context, id string) (*entity.PartsRequest, error)
	// List filtra por estado; status vacío devuelve todas. Orden: más recientes primero.
	List(ctx context.Context, status string) ([]*entity.PartsRequest, error)
	// MarkCompleted cambia pending → completed; devuelve false si la fila no estaba pendiente.
	MarkCompleted(ctx context.Context, req *entity.PartsRequest) (bool, error)
}
