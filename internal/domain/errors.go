package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores de validación de códigos EAN-13. Siempre deterministas; nunca se reintentan.
var (
	ErrInvalidPrefix  = errors.New("prefijo EAN inválido")
	ErrInvalidPayload = errors.New("carga EAN inválida: se esperan 12 dígitos")
	ErrInvalidLength  = errors.New("longitud EAN inválida: se esperan 13 caracteres")
	ErrInvalidDigits  = errors.New("el código EAN solo admite dígitos 0-9")
)

// ErrFetchFailed indica que el backend de persistencia no pudo entregar una colección.
// Es transitorio: el llamador puede reintentar.
var ErrFetchFailed = errors.New("fallo al consultar el backend")

// FetchError envuelve el fallo de lectura de una colección conservando la causa original.
type FetchError struct {
	Collection string
	Err        error
}

// NewFetchError construye el error para la colección indicada.
func NewFetchError(collection string, err error) *FetchError {
	return &FetchError{Collection: collection, Err: err}
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrFetchFailed.Error(), e.Collection, e.Err)
}

// Unwrap devuelve la causa (error de transporte o de consulta).
func (e *FetchError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrFetchFailed).
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }
