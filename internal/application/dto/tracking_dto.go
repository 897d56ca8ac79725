package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTrackingRequest entrada para registrar un seguimiento de envío.
type CreateTrackingRequest struct {
	OrderNumber   string          `json:"order_number"`
	Customer      string          `json:"customer"`
	InvoiceNumber string          `json:"invoice_number"`
	OrderValue    decimal.Decimal `json:"order_value"`
	SaleLocation  string          `json:"sale_location"`
	TrackingCode  string          `json:"tracking_code"`
	TrackingLink  string          `json:"tracking_link,omitempty"`
	Transport     string          `json:"transport"`
	Date          string          `json:"date,omitempty"`
}

// TrackingResponse salida de un seguimiento.
type TrackingResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Customer      string          `json:"customer"`
	InvoiceNumber string          `json:"invoice_number"`
	OrderValue    decimal.Decimal `json:"order_value"`
	SaleLocation  string          `json:"sale_location"`
	TrackingCode  string          `json:"tracking_code"`
	TrackingLink  string          `json:"tracking_link,omitempty"`
	Transport     string          `json:"transport"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TrackingListResponse lista paginada de seguimientos.
type TrackingListResponse struct {
	Items []TrackingResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
