// Package memory implementa los puertos de persistencia en memoria.
// Se usa en pruebas y con DB_DRIVER=memory para desarrollo local sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	domaininv "github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

var (
	_ repository.EntryRepository = (*EntryStore)(nil)
	_ repository.ExitRepository  = (*ExitStore)(nil)
	_ inventory.StockSource      = (*StockSource)(nil)
)

// EntryStore entradas en memoria.
type EntryStore struct {
	mu   sync.RWMutex
	rows []entity.ProductEntry
}

// NewEntryStore crea el store vacío.
func NewEntryStore() *EntryStore { return &EntryStore{} }

// Create agrega una entrada (copia).
func (s *EntryStore) Create(ctx context.Context, e *entity.ProductEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, *e)
	return nil
}

// Search filtra por el campo indicado (subcadena sin mayúsculas) y fecha.
func (s *EntryStore) Search(ctx context.Context, q repository.MovementSearch) ([]*entity.ProductEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.ProductEntry
	for i := range s.rows {
		e := s.rows[i]
		var field string
		switch q.FilterType {
		case repository.FilterInvoiceNumber:
			field = e.InvoiceNumber
		case repository.FilterSupplier:
			field = e.Supplier
		default:
			field = e.PartNumber
		}
		if !domaininv.MatchContains.Matches(field, q.Term) || !sameDay(e.Date, q.Date) {
			continue
		}
		out = append(out, &e)
	}
	sortNewestFirst(out, func(e *entity.ProductEntry) int64 { return e.CreatedAt.UnixNano() })
	return out, nil
}

// Last devuelve la entrada más reciente o nil.
func (s *EntryStore) Last(ctx context.Context) (*entity.ProductEntry, error) {
	list, err := s.Recent(ctx, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// Recent devuelve las últimas limit entradas por created_at.
func (s *EntryStore) Recent(ctx context.Context, limit int) ([]*entity.ProductEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]*entity.ProductEntry, 0, len(s.rows))
	for i := range s.rows {
		e := s.rows[i]
		out = append(out, &e)
	}
	s.mu.RUnlock()
	sortNewestFirst(out, func(e *entity.ProductEntry) int64 { return e.CreatedAt.UnixNano() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Count total de entradas.
func (s *EntryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), ctx.Err()
}

// ExistsForPart indica si hay entradas con ese número de parte exacto.
func (s *EntryStore) ExistsForPart(ctx context.Context, partNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.rows {
		if e.PartNumber == partNumber {
			return true, nil
		}
	}
	return false, ctx.Err()
}

func (s *EntryStore) quantities(f domaininv.QuantityFilter) []domaininv.MovementQuantity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domaininv.MovementQuantity
	for _, e := range s.rows {
		if f.PartNumber != "" && !f.Match.Matches(e.PartNumber, f.PartNumber) {
			continue
		}
		out = append(out, domaininv.MovementQuantity{ID: e.ID, PartNumber: e.PartNumber, Value: e.Quantity})
	}
	return out
}

// ExitStore salidas en memoria.
type ExitStore struct {
	mu   sync.RWMutex
	rows []entity.ProductExit
}

// NewExitStore crea el store vacío.
func NewExitStore() *ExitStore { return &ExitStore{} }

// Create agrega una salida (copia).
func (s *ExitStore) Create(ctx context.Context, e *entity.ProductExit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, *e)
	return nil
}

// Search en salidas solo compara número de parte.
func (s *ExitStore) Search(ctx context.Context, q repository.MovementSearch) ([]*entity.ProductExit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*entity.ProductExit
	for i := range s.rows {
		e := s.rows[i]
		if !domaininv.MatchContains.Matches(e.PartNumber, q.Term) || !sameDay(e.Date, q.Date) {
			continue
		}
		out = append(out, &e)
	}
	sortNewestFirst(out, func(e *entity.ProductExit) int64 { return e.CreatedAt.UnixNano() })
	return out, nil
}

// Last devuelve la salida más reciente o nil.
func (s *ExitStore) Last(ctx context.Context) (*entity.ProductExit, error) {
	list, err := s.Recent(ctx, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// Recent devuelve las últimas limit salidas por created_at.
func (s *ExitStore) Recent(ctx context.Context, limit int) ([]*entity.ProductExit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	out := make([]*entity.ProductExit, 0, len(s.rows))
	for i := range s.rows {
		e := s.rows[i]
		out = append(out, &e)
	}
	s.mu.RUnlock()
	sortNewestFirst(out, func(e *entity.ProductExit) int64 { return e.CreatedAt.UnixNano() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Count total de salidas.
func (s *ExitStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows), ctx.Err()
}

// ExistsForPart indica si hay salidas con ese número de parte exacto.
func (s *ExitStore) ExistsForPart(ctx context.Context, partNumber string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.rows {
		if e.PartNumber == partNumber {
			return true, nil
		}
	}
	return false, ctx.Err()
}

func (s *ExitStore) quantities(f domaininv.QuantityFilter) []domaininv.MovementQuantity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domaininv.MovementQuantity
	for _, e := range s.rows {
		if f.PartNumber != "" && !f.Match.Matches(e.PartNumber, f.PartNumber) {
			continue
		}
		out = append(out, domaininv.MovementQuantity{ID: e.ID, PartNumber: e.PartNumber, Value: e.Quantity})
	}
	return out
}

// StockSource lee cantidades de los stores en memoria.
type StockSource struct {
	entries *EntryStore
	exits   *ExitStore
}

// NewStockSource construye la fuente sobre los stores dados.
func NewStockSource(entries *EntryStore, exits *ExitStore) *StockSource {
	return &StockSource{entries: entries, exits: exits}
}

// EntryQuantities cantidades de entradas que cumplen el filtro.
func (s *StockSource) EntryQuantities(ctx context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.entries.quantities(f), nil
}

// ExitQuantities cantidades de salidas que cumplen el filtro.
func (s *StockSource) ExitQuantities(ctx context.Context, f domaininv.QuantityFilter) ([]domaininv.MovementQuantity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.exits.quantities(f), nil
}

func sortNewestFirst[T any](list []*T, key func(*T) int64) {
	sort.SliceStable(list, func(i, j int) bool { return key(list[i]) > key(list[j]) })
}
