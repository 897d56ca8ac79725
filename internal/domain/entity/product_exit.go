package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductExit salida de repuestos. Inmutable una vez registrada.
type ProductExit struct {
	ID                    string
	PartNumber            string
	Quantity              decimal.Decimal
	Reason                string
	Responsible           string
	OrderNumber           string // opcional
	DocumentType          string
	DocumentNumber        string
	Sector                []string
	VehicleName           string
	VehiclePlate          string
	WithdrawalResponsible string
	PurchaseResponsible   string
	Date                  time.Time
	CreatedAt             time.Time
	CreatedBy             string
}
