// Package analytics contiene el resumen del tablero: totales de movimientos,
// stock global y los últimos registros de cada sección.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-repuestos/internal/application/dto"
	"github.com/jhoicas/Inventario-repuestos/internal/application/inventory"
	"github.com/jhoicas/Inventario-repuestos/internal/application/usecase"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
	"github.com/jhoicas/Inventario-repuestos/internal/domain/repository"
)

const (
	dashboardRecentMovements = 3 // entradas y salidas en el widget
	dashboardRecentTracking  = 5
)

// DashboardUseCase genera el resumen del tablero.
//
// Fuentes: repositorios de movimientos y seguimiento (solo lectura) y el cálculo de stock.
type DashboardUseCase struct {
	entries  repository.EntryRepository
	exits    repository.ExitRepository
	tracking repository.TrackingRepository
	stock    *inventory.StockUseCase
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(entries repository.EntryRepository, exits repository.ExitRepository, tracking repository.TrackingRepository, stock *inventory.StockUseCase) *DashboardUseCase {
	return &DashboardUseCase{entries: entries, exits: exits, tracking: tracking, stock: stock, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro lecturas en paralelo:
//  1. Count + Recent(3) de entradas
//  2. Count + Recent(3) de salidas
//  3. List(5) de seguimientos
//  4. ComputeTotalStock → CurrentStock
//
// Cualquier fallo invalida el resumen completo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type entriesResult struct {
		count  int
		recent []*entity.ProductEntry
		err    error
	}
	type exitsResult struct {
		count  int
		recent []*entity.ProductExit
		err    error
	}
	type trackingResult struct {
		list []*entity.TrackingRecord
		err  error
	}
	type stockResult struct {
		summary *dto.StockSummaryResponse
		err     error
	}

	entriesCh := make(chan entriesResult, 1)
	exitsCh := make(chan exitsResult, 1)
	trackingCh := make(chan trackingResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		n, err := uc.entries.Count(ctx)
		if err != nil {
			entriesCh <- entriesResult{err: err}
			return
		}
		list, err := uc.entries.Recent(ctx, dashboardRecentMovements)
		entriesCh <- entriesResult{n, list, err}
	}()
	go func() {
		n, err := uc.exits.Count(ctx)
		if err != nil {
			exitsCh <- exitsResult{err: err}
			return
		}
		list, err := uc.exits.Recent(ctx, dashboardRecentMovements)
		exitsCh <- exitsResult{n, list, err}
	}()
	go func() {
		list, err := uc.tracking.List(ctx, dashboardRecentTracking, 0)
		trackingCh <- trackingResult{list, err}
	}()
	go func() {
		s, err := uc.stock.ComputeTotalStock(ctx)
		stockCh <- stockResult{s, err}
	}()

	entries := <-entriesCh
	exits := <-exitsCh
	tracking := <-trackingCh
	stock := <-stockCh

	if entries.err != nil {
		return nil, fmt.Errorf("dashboard: entradas: %w", entries.err)
	}
	if exits.err != nil {
		return nil, fmt.Errorf("dashboard: salidas: %w", exits.err)
	}
	if tracking.err != nil {
		return nil, fmt.Errorf("dashboard: seguimientos: %w", tracking.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock: %w", stock.err)
	}

	out := &dto.DashboardSummaryDTO{
		EntriesCount:       entries.count,
		ExitsCount:         exits.count,
		CurrentStock:       stock.summary.Stock,
		UnparsedQuantities: stock.summary.UnparsedQuantities,
		RecentEntries:      make([]dto.EntryResponse, 0, len(entries.recent)),
		RecentExits:        make([]dto.ExitResponse, 0, len(exits.recent)),
		RecentTracking:     make([]dto.TrackingResponse, 0, len(tracking.list)),
		DateLabel:          monthLabel(uc.now()),
	}
	for _, e := range entries.recent {
		out.RecentEntries = append(out.RecentEntries, *inventory.ToEntryResponse(e))
	}
	for _, e := range exits.recent {
		out.RecentExits = append(out.RecentExits, *inventory.ToExitResponse(e))
	}
	for _, r := range tracking.list {
		out.RecentTracking = append(out.RecentTracking, *usecase.ToTrackingResponse(r))
	}
	return out, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
