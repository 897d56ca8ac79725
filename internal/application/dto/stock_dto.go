package dto

import "github.com/shopspring/decimal"

// StockSummaryResponse resumen de stock de GET /api/stock.
// Stock puede ser negativo (más salidas que entradas registradas).
type StockSummaryResponse struct {
	PartNumber         string          `json:"part_number"`
	MatchMode          string          `json:"match_mode,omitempty"`
	Stock              decimal.Decimal `json:"stock"`
	TotalEntries       decimal.Decimal `json:"total_entries"`
	TotalExits         decimal.Decimal `json:"total_exits"`
	UnparsedQuantities int             `json:"unparsed_quantities"` // registros con cantidad ilegible contados como 0
}

// StockListResponse stock por número de parte.
type StockListResponse struct {
	Items []StockSummaryResponse `json:"items"`
	Total int                    `json:"total"`
}
