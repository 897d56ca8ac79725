package usecase

import (
	"context"
	"time"
)

// PickListLine una línea de la lista de separación de solicitudes pendientes.
type PickListLine struct {
	PartNumber  string
	PartName    string
	EANCode     string
	Quantity    string
	Location    string
	Requester   string
	RequestedAt time.Time
}

// PickListGenerator genera el PDF de separación para el almacén.
type PickListGenerator interface {
	PickList(ctx context.Context, title string, lines []PickListLine) ([]byte, error)
}
