package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, part_number, part_name, is_original, location, photo_url, ean_code, created_at, created_by`

// PartRepo implementación del puerto PartRepository sobre la tabla parts.
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para repuestos. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste un repuesto. part_number repetido devuelve ErrDuplicate.
func (r *PartRepo) Create(ctx context.Context, p *entity.Part) error {
	query := `INSERT INTO parts (` + partColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.PartNumber, p.PartName, p.IsOriginal, nullIfEmpty(p.Location), nullIfEmpty(p.PhotoURL),
		nullIfEmpty(p.EANCode), p.CreatedAt, nullIfEmpty(p.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: part_number %s", domain.ErrDuplicate, p.PartNumber)
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	return r.getOne(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1`, id)
}

// GetByPartNumber obtiene un repuesto por número de parte exacto.
func (r *PartRepo) GetByPartNumber(ctx context.Context, partNumber string) (*entity.Part, error) {
	return r.getOne(ctx, `SELECT `+partColumns+` FROM parts WHERE part_number = $1`, partNumber)
}

// List lista repuestos por número de parte con paginación.
func (r *PartRepo) List(ctx context.Context, limit, offset int) ([]*entity.Part, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partColumns+` FROM parts ORDER BY part_number LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Part, 0)
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateEAN fija el código EAN del repuesto.
func (r *PartRepo) UpdateEAN(ctx context.Context, id, eanCode string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE parts SET ean_code = $2 WHERE id = $1`, id, eanCode)
	if err != nil {
		return fmt.Errorf("update part ean: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un repuesto por ID.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PartRepo) getOne(ctx context.Context, query string, arg string) (*entity.Part, error) {
	p, err := scanPart(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	var location, photo, ean, createdBy *string
	if err := row.Scan(&p.ID, &p.PartNumber, &p.PartName, &p.IsOriginal, &location, &photo, &ean, &p.CreatedAt, &createdBy); err != nil {
		return nil, err
	}
	p.Location, p.PhotoURL, p.EANCode, p.CreatedBy = deref(location), deref(photo), deref(ean), deref(createdBy)
	return &p, nil
}
