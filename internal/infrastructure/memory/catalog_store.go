package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-repuestos/internal/domain"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

var (
	_ repository.PartRepository         = (*PartStore)(nil)
	_ repository.SupplierRepository     = (*SupplierStore)(nil)
	_ repository.TrackingRepository     = (*TrackingStore)(nil)
	_ repository.PartsRequestRepository = (*PartsRequestStore)(nil)
)

// PartStore catálogo de repuestos en memoria, en orden de alta.
type PartStore struct {
	mu   sync.RWMutex
	rows []entity.Part
}

// NewPartStore crea el store vacío.
func NewPartStore() *PartStore { return &PartStore{} }

// Create agrega el repuesto; número de parte repetido devuelve ErrDuplicate.
func (s *PartStore) Create(ctx context.Context, p *entity.Part) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rows {
		if r.PartNumber == p.PartNumber {
			return domain.ErrDuplicate
		}
	}
	s.rows = append(s.rows, *p)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (s *PartStore) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			p := s.rows[i]
			return &p, nil
		}
	}
	return nil, ctx.Err()
}

// GetByPartNumber devuelve (nil, nil) si no existe.
func (s *PartStore) GetByPartNumber(ctx context.Context, partNumber string) (*entity.Part, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rows {
		if s.rows[i].PartNumber == partNumber {
			p := s.rows[i]
			return &p, nil
		}
	}
	return nil, ctx.Err()
}

// List pagina en orden de alta.
func (s *PartStore) List(ctx context.Context, limit, offset int) ([]*entity.Part, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Part, 0)
	for i := offset; i < len(s.rows) && len(out) < limit; i++ {
		p := s.rows[i]
		out = append(out, &p)
	}
	return out, nil
}

// UpdateEAN fija el código EAN; ErrNotFound si el id no existe.
func (s *PartStore) UpdateEAN(ctx context.Context, id, eanCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].EANCode = eanCode
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el repuesto; ErrNotFound si el id no existe.
func (s *PartStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// SupplierStore proveedores en memoria.
type SupplierStore struct {
	mu   sync.RWMutex
	rows []entity.Supplier
}

// NewSupplierStore crea el store vacío.
func NewSupplierStore() *SupplierStore { return &SupplierStore{} }

// Create agrega el proveedor.
func (s *SupplierStore) Create(ctx context.Context, sup *entity.Supplier) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, *sup)
	return nil
}

// List pagina en orden de alta.
func (s *SupplierStore) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Supplier, 0)
	for i := offset; i < len(s.rows) && len(out) < limit; i++ {
		sup := s.rows[i]
		out = append(out, &sup)
	}
	return out, nil
}

// TrackingStore seguimientos en memoria.
type TrackingStore struct {
	mu   sync.RWMutex
	rows []entity.TrackingRecord
}

// NewTrackingStore crea el store vacío.
func NewTrackingStore() *TrackingStore { return &TrackingStore{} }

// Create agrega el seguimiento.
func (s *TrackingStore) Create(ctx context.Context, rec *entity.TrackingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, *rec)
	return nil
}

// List más recientes primero.
func (s *TrackingStore) List(ctx context.Context, limit, offset int) ([]*entity.TrackingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	all := make([]*entity.TrackingRecord, 0, len(s.rows))
	for i := range s.rows {
		r := s.rows[i]
		all = append(all, &r)
	}
	s.mu.RUnlock()
	sortNewestFirst(all, func(r *entity.TrackingRecord) int64 { return r.CreatedAt.UnixNano() })
	if offset >= len(all) {
		return []*entity.TrackingRecord{}, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// PartsRequestStore solicitudes de repuestos en memoria.
type PartsRequestStore struct {
	mu   sync.RWMutex
	rows []entity.PartsRequest
}

// NewPartsRequestStore crea el store vacío.
func NewPartsRequestStore() *PartsRequestStore { return &PartsRequestStore{} }

// Create agrega la solicitud.
func (s *PartsRequestStore) Create(ctx context.Context, req *entity.PartsRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, *req)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (s *PartsRequestStore) GetByID(ctx context.Context, id string) (*entity.PartsRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rows {
		if s.rows[i].ID == id {
			r := s.rows[i]
			return &r, nil
		}
	}
	return nil, ctx.Err()
}

// List filtra por estado, más recientes primero.
func (s *PartsRequestStore) List(ctx context.Context, status string) ([]*entity.PartsRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]*entity.PartsRequest, 0)
	for i := range s.rows {
		if status != "" && s.rows[i].Status != status {
			continue
		}
		r := s.rows[i]
		out = append(out, &r)
	}
	s.mu.RUnlock()
	sortNewestFirst(out, func(r *entity.PartsRequest) int64 { return r.CreatedAt.UnixNano() })
	return out, nil
}

// MarkCompleted aplica la transición solo si la fila sigue pendiente.
func (s *PartsRequestStore) MarkCompleted(ctx context.Context, req *entity.PartsRequest) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].ID != req.ID {
			continue
		}
		if s.rows[i].Status != entity.PartsRequestPending {
			return false, nil
		}
		s.rows[i].Status = entity.PartsRequestCompleted
		s.rows[i].CompletedAt = req.CompletedAt
		return true, nil
	}
	return false, nil
}

func sameDay(t time.Time, day *time.Time) bool {
	if day == nil {
		return true
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
