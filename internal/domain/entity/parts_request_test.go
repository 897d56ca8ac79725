package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-repuestos/internal/domain/entity"
)

func TestPartsRequest_CompleteUnaSolaVez(t *testing.T) {
	r := &entity.PartsRequest{Status: entity.PartsRequestPending}
	at := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	require.True(t, r.Complete(at))
	assert.True(t, r.IsCompleted())
	require.NotNil(t, r.CompletedAt)
	assert.Equal(t, at, *r.CompletedAt)

	assert.False(t, r.Complete(at.Add(time.Hour)), "una solicitud completada no se vuelve a completar")
	assert.Equal(t, at, *r.CompletedAt, "la fecha de cierre no cambia")
}

func TestIsValidLocation(t *testing.T) {
	assert.True(t, entity.IsValidLocation("terreo"))
	assert.True(t, entity.IsValidLocation("2° andar"))
	assert.False(t, entity.IsValidLocation("4° andar"))
	assert.False(t, entity.IsValidLocation(""))
}
