package inventory

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Inventario-repuestos/internal/domain"
)

// MatchMode modo de comparación del número de parte.
type MatchMode string

const (
	MatchContains MatchMode = "contains" // subcadena, sin distinguir mayúsculas (por defecto)
	MatchExact    MatchMode = "exact"
)

// ParseMatchMode interpreta el modo recibido por HTTP o CLI. Vacío = MatchContains.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchContains:
		return MatchContains, nil
	case MatchExact:
		return MatchExact, nil
	default:
		return "", fmt.Errorf("%w: modo de búsqueda %q", domain.ErrInvalidInput, s)
	}
}

// Matches aplica el modo sobre un valor ya cargado en memoria.
// Un término vacío coincide con todo; el caso de uso evita llegar aquí con término vacío.
func (m MatchMode) Matches(value, term string) bool {
	if term == "" {
		return true
	}
	if m == MatchExact {
		return value == term
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(value), fold.String(term))
}

// QuantityFilter filtro de lectura de cantidades. PartNumber vacío = todos los registros.
type QuantityFilter struct {
	PartNumber string
	Match      MatchMode
}
