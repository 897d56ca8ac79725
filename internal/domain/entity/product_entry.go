package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductEntry entrada de repuestos al almacén. Inmutable una vez registrada.
type ProductEntry struct {
	ID            string
	PartNumber    string
	Quantity      decimal.Decimal
	InvoiceNumber string // nota fiscal del proveedor
	Supplier      string
	Inspector     string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
