package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas de negocio (día, sin hora).
const DateLayout = "2006-01-02"

// RegisterEntryRequest body para POST /api/entries.
type RegisterEntryRequest struct {
	PartNumber    string          `json:"part_number"`
	Quantity      decimal.Decimal `json:"quantity"`
	InvoiceNumber string          `json:"invoice_number"`
	Supplier      string          `json:"supplier"`
	Inspector     string          `json:"inspector"`
	Date          string          `json:"date,omitempty"` // YYYY-MM-DD; vacío = hoy
}

// RegisterExitRequest body para POST /api/exits.
type RegisterExitRequest struct {
	PartNumber            string          `json:"part_number"`
	Quantity              decimal.Decimal `json:"quantity"`
	Reason                string          `json:"reason"`
	Responsible           string          `json:"responsible"`
	OrderNumber           string          `json:"order_number,omitempty"`
	DocumentType          string          `json:"document_type,omitempty"`
	DocumentNumber        string          `json:"document_number,omitempty"`
	Sector                []string        `json:"sector,omitempty"`
	VehicleName           string          `json:"vehicle_name,omitempty"`
	VehiclePlate          string          `json:"vehicle_plate,omitempty"`
	WithdrawalResponsible string          `json:"withdrawal_responsible,omitempty"`
	PurchaseResponsible   string          `json:"purchase_responsible,omitempty"`
	Date                  string          `json:"date,omitempty"`
}

// EntryResponse salida de una entrada.
type EntryResponse struct {
	ID            string          `json:"id"`
	PartNumber    string          `json:"part_number"`
	Quantity      decimal.Decimal `json:"quantity"`
	InvoiceNumber string          `json:"invoice_number"`
	Supplier      string          `json:"supplier"`
	Inspector     string          `json:"inspector"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by"`
}

// ExitResponse salida de una salida de repuestos.
type ExitResponse struct {
	ID                    string          `json:"id"`
	PartNumber            string          `json:"part_number"`
	Quantity              decimal.Decimal `json:"quantity"`
	Reason                string          `json:"reason"`
	Responsible           string          `json:"responsible"`
	OrderNumber           string          `json:"order_number,omitempty"`
	DocumentType          string          `json:"document_type,omitempty"`
	DocumentNumber        string          `json:"document_number,omitempty"`
	Sector                []string        `json:"sector,omitempty"`
	VehicleName           string          `json:"vehicle_name,omitempty"`
	VehiclePlate          string          `json:"vehicle_plate,omitempty"`
	WithdrawalResponsible string          `json:"withdrawal_responsible,omitempty"`
	PurchaseResponsible   string          `json:"purchase_responsible,omitempty"`
	Date                  string          `json:"date"`
	CreatedAt             time.Time       `json:"created_at"`
	CreatedBy             string          `json:"created_by"`
}

// MovementSearchRequest query de GET /api/movements/search.
type MovementSearchRequest struct {
	Section    string `query:"section"`     // entry | exit
	FilterType string `query:"filter_type"` // partNumber | invoiceNumber | supplier
	Term       string `query:"term"`
	Date       string `query:"date"`
}

// MovementSearchResponse resultados de búsqueda; solo se llena la lista de la sección pedida.
type MovementSearchResponse struct {
	Section string          `json:"section"`
	Total   int             `json:"total"`
	Entries []EntryResponse `json:"entries,omitempty"`
	Exits   []ExitResponse  `json:"exits,omitempty"`
}

// LastRecordResponse último movimiento registrado de una sección (nil si no hay).
type LastRecordResponse struct {
	Section string         `json:"section"`
	Entry   *EntryResponse `json:"entry,omitempty"`
	Exit    *ExitResponse  `json:"exit,omitempty"`
}
