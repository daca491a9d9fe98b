package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFechaSolo(t *testing.T) {
	instante := time.Date(2025, 3, 10, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), fechaSolo(instante))
}

func TestDiasEntre(t *testing.T) {
	hoy := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, diasEntre(hoy, hoy))
	assert.Equal(t, 3, diasEntre(hoy, time.Date(2025, 3, 13, 1, 0, 0, 0, time.UTC)))
	assert.Equal(t, -2, diasEntre(hoy, time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)))
}

func TestResultadoError(t *testing.T) {
	resultado := resultadoError(assert.AnError)

	assert.Equal(t, "error", resultado.Status)
	assert.Equal(t, assert.AnError.Error(), resultado.Error)
	assert.NotEmpty(t, resultado.FechaEjecucion)
	assert.Zero(t, resultado.NotificacionesGeneradas)
}
