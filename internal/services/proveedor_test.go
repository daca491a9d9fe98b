package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ti-management/internal/entities"
)

func TestEstadoContrato(t *testing.T) {
	ahora := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	casos := []struct {
		nombre   string
		fechaFin time.Time
		esperado string
	}{
		{"fin en el futuro", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), entities.ContratoVigente},
		{"fin hoy sigue vigente", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), entities.ContratoVigente},
		{"fin ayer ya venció", time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), entities.ContratoVencido},
		{"fin hace un año", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), entities.ContratoVencido},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, EstadoContrato(c.fechaFin, ahora))
		})
	}
}
