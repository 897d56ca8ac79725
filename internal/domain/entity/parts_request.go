package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una solicitud de repuestos. La transición es única: pending → completed.
const (
	PartsRequestPending   = "pending"
	PartsRequestCompleted = "completed"
)

// Ubicaciones (pisos) desde donde se solicitan repuestos.
const (
	LocationGroundFloor = "terreo"
	LocationFirstFloor  = "1° andar"
	LocationSecondFloor = "2° andar"
	LocationThirdFloor  = "3° andar"
)

// ValidLocations ubicaciones aceptadas en una solicitud.
var ValidLocations = []string{LocationGroundFloor, LocationFirstFloor, LocationSecondFloor, LocationThirdFloor}

// PartsRequest solicitud de repuestos entre ubicaciones.
type PartsRequest struct {
	ID          string
	PartNumber  string
	Quantity    decimal.Decimal
	Location    string
	Requester   string
	Status      string
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// IsCompleted indica si la solicitud ya fue atendida.
func (r *PartsRequest) IsCompleted() bool { return r.Status == PartsRequestCompleted }

// Complete marca la solicitud como atendida. Devuelve false si ya lo estaba (no hay reapertura).
func (r *PartsRequest) Complete(at time.Time) bool {
	if r.IsCompleted() {
		return false
	}
	r.Status = PartsRequestCompleted
	r.CompletedAt = &at
	return true
}

// IsValidLocation verifica que la ubicación pertenezca al conjunto conocido.
func IsValidLocation(loc string) bool {
	for _, l := range ValidLocations {
		if l == loc {
			return true
		}
	}
	return false
}
