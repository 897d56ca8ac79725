package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartsRequestRequest entrada para solicitar repuestos.
type CreatePartsRequestRequest struct {
	PartNumber string          `json:"part_number"`
	Quantity   decimal.Decimal `json:"quantity"`
	Location   string          `json:"location"`
	Requester  string          `json:"requester"`
}

// PartsRequestResponse salida de una solicitud.
type PartsRequestResponse struct {
	ID          string          `json:"id"`
	PartNumber  string          `json:"part_number"`
	Quantity    decimal.Decimal `json:"quantity"`
	Location    string          `json:"location"`
	Requester   string          `json:"requester"`
	Status      string          `json:"status"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PartsRequestListResponse solicitudes filtradas por estado.
type PartsRequestListResponse struct {
	Items []PartsRequestResponse `json:"items"`
	Total int                    `json:"total"`
}
