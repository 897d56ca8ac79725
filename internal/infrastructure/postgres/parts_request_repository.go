package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

var _ repository.PartsRequestRepository = (*PartsRequestRepo)(nil)

const partsRequestColumns = `id, part_number, quantity, location, requester, status, completed_at, created_at`

// PartsRequestRepo solicitudes sobre la tabla parts_requests.
type PartsRequestRepo struct {
	q Querier
}

// NewPartsRequestRepository construye el adaptador.
func NewPartsRequestRepository(q Querier) *PartsRequestRepo {
	return &PartsRequestRepo{q: q}
}

// Create persiste una solicitud.
func (r *PartsRequestRepo) Create(ctx context.Context, req *entity.PartsRequest) error {
	query := `INSERT INTO parts_requests (` + partsRequestColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		req.ID, req.PartNumber, req.Quantity, req.Location, nullIfEmpty(req.Requester),
		req.Status, req.CompletedAt, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert parts_request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud; (nil, nil) si no existe.
func (r *PartsRequestRepo) GetByID(ctx context.Context, id string) (*entity.PartsRequest, error) {
	req, err := scanPartsRequest(r.q.QueryRow(ctx, `SELECT `+partsRequestColumns+` FROM parts_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parts_request: %w", err)
	}
	return req, nil
}

// List filtra por estado; vacío = todas.
func (r *PartsRequestRepo) List(ctx context.Context, status string) ([]*entity.PartsRequest, error) {
	query := `SELECT ` + partsRequestColumns + ` FROM parts_requests
		WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list parts_requests: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.PartsRequest, 0)
	for rows.Next() {
		req, err := scanPartsRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan parts_request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

// MarkCompleted actualiza solo si la fila sigue pendiente; dos sesiones no pueden completarla ambas.
func (r *PartsRequestRepo) MarkCompleted(ctx context.Context, req *entity.PartsRequest) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE parts_requests SET status = $2, completed_at = $3 WHERE id = $1 AND status = $4`,
		req.ID, entity.PartsRequestCompleted, req.CompletedAt, entity.PartsRequestPending,
	)
	if err != nil {
		return false, fmt.Errorf("complete parts_request: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

func scanPartsRequest(row pgx.Row) (*entity.PartsRequest, error) {
	var req entity.PartsRequest
	var requester *string
	if err := row.Scan(&req.ID, &req.PartNumber, &req.Quantity, &req.Location, &requester,
		&req.Status, &req.CompletedAt, &req.CreatedAt); err != nil {
		return nil, err
	}
	req.Requester = deref(requester)
	return &req, nil
}
