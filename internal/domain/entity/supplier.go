package entity

import "time"

// Supplier proveedor de repuestos.
type Supplier struct {
	ID        string
	Name      string
	Document  string // CNPJ/CPF
	Contact   string
	Phone     string
	Email     string
	CreatedAt time.Time
}
