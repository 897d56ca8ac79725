package entity

import "time"

// Part repuesto del catálogo. PartNumber es único.
// EANCode se guarda como texto; solo se acepta un EAN-13 válido.
type Part struct {
	ID         string
	PartNumber string
	PartName   string
	IsOriginal bool
	Location   string
	PhotoURL   string
	EANCode    string
	CreatedAt  time.Time
	CreatedBy  string
}
