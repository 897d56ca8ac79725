package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackingRecord seguimiento de un envío a cliente.
type TrackingRecord struct {
	ID            string
	OrderNumber   string
	Customer      string
	InvoiceNumber string
	OrderValue    decimal.Decimal
	SaleLocation  string
	TrackingCode  string
	TrackingLink  string
	Transport     string
	Date          time.Time
	CreatedAt     time.Time
}
