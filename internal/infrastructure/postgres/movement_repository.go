package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

var (
	_ repository.EntryRepository = (*EntryRepo)(nil)
	_ repository.ExitRepository  = (*ExitRepo)(nil)
)

const entryColumns = `id, part_number, quantity, invoice_number, supplier, inspector, date, created_at, created_by`

const exitColumns = `id, part_number, quantity, reason, responsible, order_number, document_type, document_number,
	sector, vehicle_name, vehicle_plate, withdrawal_responsible, purchase_responsible, date, created_at, created_by`

// searchColumn traduce el filtro de búsqueda a columna; entries indica la colección de entradas.
func searchColumn(filterType string, entries bool) (string, error) {
	switch filterType {
	case "", repository.FilterPartNumber:
		return "part_number", nil
	case repository.FilterInvoiceNumber:
		if entries {
			return "invoice_number", nil
		}
	case repository.FilterSupplier:
		if entries {
			return "supplier", nil
		}
	}
	return "", fmt.Errorf("%w: filter_type %q", domain.ErrInvalidInput, filterType)
}

// searchWhere arma WHERE para Search; devuelve cláusula y argumentos.
func searchWhere(s repository.MovementSearch, entries bool) (string, []any, error) {
	col, err := searchColumn(s.FilterType, entries)
	if err != nil {
		return "", nil, err
	}
	conds := []string{fmt.Sprintf(`%s ILIKE $1 ESCAPE '\'`, col)}
	args := []any{containsPattern(s.Term)}
	if s.Date != nil {
		conds = append(conds, "date = $2")
		args = append(args, *s.Date)
	}
	return strings.Join(conds, " AND "), args, nil
}

// ── Entradas ──────────────────────────────────────────────────────────────────

// EntryRepo entradas sobre la tabla product_entries.
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create inserta la entrada.
func (r *EntryRepo) Create(ctx context.Context, e *entity.ProductEntry) error {
	query := `INSERT INTO product_entries (` + entryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.PartNumber, e.Quantity, e.InvoiceNumber, e.Supplier, e.Inspector,
		e.Date, e.CreatedAt, nullIfEmpty(e.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert product_entry: %w", err)
	}
	return nil
}

// Search entradas por subcadena del campo elegido, más recientes primero.
func (r *EntryRepo) Search(ctx context.Context, s repository.MovementSearch) ([]*entity.ProductEntry, error) {
	where, args, err := searchWhere(s, true)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, `SELECT `+entryColumns+` FROM product_entries WHERE `+where+` ORDER BY created_at DESC`, args...)
}

// Last devuelve la entrada más reciente; (nil, nil) si no hay.
func (r *EntryRepo) Last(ctx context.Context) (*entity.ProductEntry, error) {
	row := r.q.QueryRow(ctx, `SELECT `+entryColumns+` FROM product_entries ORDER BY created_at DESC LIMIT 1`)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last product_entry: %w", err)
	}
	return e, nil
}

// Recent últimas limit entradas.
func (r *EntryRepo) Recent(ctx context.Context, limit int) ([]*entity.ProductEntry, error) {
	return r.list(ctx, `SELECT `+entryColumns+` FROM product_entries ORDER BY created_at DESC LIMIT $1`, limit)
}

// Count total de entradas.
func (r *EntryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM product_entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count product_entries: %w", err)
	}
	return n, nil
}

// ExistsForPart indica si hay entradas para el número de parte exacto.
func (r *EntryRepo) ExistsForPart(ctx context.Context, partNumber string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_entries WHERE part_number = $1)`, partNumber).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists product_entries: %w", err)
	}
	return ok, nil
}

func (r *EntryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProductEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query product_entries: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product_entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEntry(row pgx.Row) (*entity.ProductEntry, error) {
	var e entity.ProductEntry
	var qty decimal.NullDecimal
	var invoice, supplier, inspector, createdBy *string
	err := row.Scan(&e.ID, &e.PartNumber, &qty, &invoice, &supplier, &inspector, &e.Date, &e.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	e.Quantity = qty.Decimal
	e.InvoiceNumber, e.Supplier, e.Inspector, e.CreatedBy = deref(invoice), deref(supplier), deref(inspector), deref(createdBy)
	return &e, nil
}

// ── Salidas ───────────────────────────────────────────────────────────────────

// ExitRepo salidas sobre la tabla product_exits.
type ExitRepo struct {
	q Querier
}

// NewExitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

// Create inserta la salida.
func (r *ExitRepo) Create(ctx context.Context, e *entity.ProductExit) error {
	query := `INSERT INTO product_exits (` + exitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	sector := e.Sector
	if sector == nil {
		sector = []string{}
	}
	_, err := r.q.Exec(ctx, query,
		e.ID, e.PartNumber, e.Quantity, e.Reason, e.Responsible, e.OrderNumber, e.DocumentType, e.DocumentNumber,
		sector, e.VehicleName, e.VehiclePlate, e.WithdrawalResponsible, e.PurchaseResponsible,
		e.Date, e.CreatedAt, nullIfEmpty(e.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert product_exit: %w", err)
	}
	return nil
}

// Search salidas por número de parte, más recientes primero.
func (r *ExitRepo) Search(ctx context.Context, s repository.MovementSearch) ([]*entity.ProductExit, error) {
	where, args, err := searchWhere(s, false)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, `SELECT `+exitColumns+` FROM product_exits WHERE `+where+` ORDER BY created_at DESC`, args...)
}

// Last devuelve la salida más reciente; (nil, nil) si no hay.
func (r *ExitRepo) Last(ctx context.Context) (*entity.ProductExit, error) {
	row := r.q.QueryRow(ctx, `SELECT `+exitColumns+` FROM product_exits ORDER BY created_at DESC LIMIT 1`)
	e, err := scanExit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last product_exit: %w", err)
	}
	return e, nil
}

// Recent últimas limit salidas.
func (r *ExitRepo) Recent(ctx context.Context, limit int) ([]*entity.ProductExit, error) {
	return r.list(ctx, `SELECT `+exitColumns+` FROM product_exits ORDER BY created_at DESC LIMIT $1`, limit)
}

// Count total de salidas.
func (r *ExitRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM product_exits`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count product_exits: %w", err)
	}
	return n, nil
}

// ExistsForPart indica si hay salidas para el número de parte exacto.
func (r *ExitRepo) ExistsForPart(ctx context.Context, partNumber string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_exits WHERE part_number = $1)`, partNumber).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists product_exits: %w", err)
	}
	return ok, nil
}

func (r *ExitRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProductExit, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query product_exits: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductExit, 0)
	for rows.Next() {
		e, err := scanExit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product_exit: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanExit(row pgx.Row) (*entity.ProductExit, error) {
	var e entity.ProductExit
	var qty decimal.NullDecimal
	var reason, responsible, order, docType, docNumber, vehicle, plate, withdrawal, purchase, createdBy *string
	err := row.Scan(&e.ID, &e.PartNumber, &qty, &reason, &responsible, &order, &docType, &docNumber,
		&e.Sector, &vehicle, &plate, &withdrawal, &purchase, &e.Date, &e.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	e.Quantity = qty.Decimal
	e.Reason, e.Responsible = deref(reason), deref(responsible)
	e.OrderNumber, e.DocumentType, e.DocumentNumber = deref(order), deref(docType), deref(docNumber)
	e.VehicleName, e.VehiclePlate = deref(vehicle), deref(plate)
	e.WithdrawalResponsible, e.PurchaseResponsible = deref(withdrawal), deref(purchase)
	e.CreatedBy = deref(createdBy)
	return &e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
