package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Tarjetas de totales más los últimos movimientos y envíos.
type DashboardSummaryDTO struct {
	EntriesCount int             `json:"entries_count"`
	ExitsCount   int             `json:"exits_count"`
	CurrentStock decimal.Decimal `json:"current_stock"` // Σ entradas − Σ salidas de todas las partes

	// UnparsedQuantities registros contados como 0 al calcular CurrentStock
	UnparsedQuantities int `json:"unparsed_quantities"`

	RecentEntries  []EntryResponse    `json:"recent_entries"`  // últimas 3
	RecentExits    []ExitResponse     `json:"recent_exits"`    // últimas 3
	RecentTracking []TrackingResponse `json:"recent_tracking"` // últimos 5

	DateLabel string `json:"date_label"` // ej. "Octubre 2026"
}
