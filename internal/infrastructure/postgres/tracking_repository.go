package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

var _ repository.TrackingRepository = (*TrackingRepo)(nil)

// TrackingRepo seguimientos sobre la tabla tracking.
type TrackingRepo struct {
	q Querier
}

// NewTrackingRepository construye el adaptador.
func NewTrackingRepository(q Querier) *TrackingRepo {
	return &TrackingRepo{q: q}
}

// Create persiste un seguimiento.
func (r *TrackingRepo) Create(ctx context.Context, t *entity.TrackingRecord) error {
	query := `
		INSERT INTO tracking (id, order_number, customer, invoice_number, order_value, sale_location,
			tracking_code, tracking_link, transport, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.OrderNumber, t.Customer, t.InvoiceNumber, t.OrderValue, t.SaleLocation,
		t.TrackingCode, nullIfEmpty(t.TrackingLink), t.Transport, t.Date, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tracking: %w", err)
	}
	return nil
}

// List más recientes primero.
func (r *TrackingRepo) List(ctx context.Context, limit, offset int) ([]*entity.TrackingRecord, error) {
	query := `
		SELECT id, order_number, customer, invoice_number, order_value, sale_location,
			tracking_code, tracking_link, transport, date, created_at
		FROM tracking ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tracking: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.TrackingRecord, 0)
	for rows.Next() {
		var t entity.TrackingRecord
		var value decimal.NullDecimal
		var customer, invoice, sale, link, transport *string
		if err := rows.Scan(&t.ID, &t.OrderNumber, &customer, &invoice, &value, &sale,
			&t.TrackingCode, &link, &transport, &t.Date, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tracking: %w", err)
		}
		t.OrderValue = value.Decimal
		t.Customer, t.InvoiceNumber, t.SaleLocation = deref(customer), deref(invoice), deref(sale)
		t.TrackingLink, t.Transport = deref(link), deref(transport)
		list = append(list, &t)
	}
	return list, rows.Err()
}
