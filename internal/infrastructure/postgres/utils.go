package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/inventory"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern patrón ILIKE que busca term como subcadena literal.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// matchCondition condición SQL sobre column para el modo indicado; arg es el placeholder ($n).
func matchCondition(column string, mode inventory.MatchMode, term, arg string) (string, any) {
	if mode == inventory.MatchExact {
		return fmt.Sprintf("%s = %s", column, arg), term
	}
	return fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, column, arg), containsPattern(term)
}
