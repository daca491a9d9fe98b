package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type equipoPrueba struct {
	EstadoOperativo string `validate:"omitempty,estado_operativo"`
	EstadoFisico    string `validate:"omitempty,estado_fisico"`
}

type mantenimientoPrueba struct {
	Tipo      string `validate:"required,tipo_mantenimiento"`
	Prioridad string `validate:"omitempty,prioridad"`
}

type proveedorPrueba struct {
	RUC string `validate:"required,ruc"`
}

func TestValidator_EstadosDeEquipo(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(&equipoPrueba{EstadoOperativo: "en_reparacion", EstadoFisico: "bueno"}))
	assert.NoError(t, v.Validate(&equipoPrueba{}))
	assert.Error(t, v.Validate(&equipoPrueba{EstadoOperativo: "roto"}))
	assert.Error(t, v.Validate(&equipoPrueba{EstadoFisico: "perfecto"}))
}

func TestValidator_Mantenimiento(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(&mantenimientoPrueba{Tipo: "preventivo"}))
	assert.NoError(t, v.Validate(&mantenimientoPrueba{Tipo: "correctivo", Prioridad: "urgente"}))
	assert.Error(t, v.Validate(&mantenimientoPrueba{Tipo: "predictivo"}))
	assert.Error(t, v.Validate(&mantenimientoPrueba{Tipo: "preventivo", Prioridad: "critica"}))
}

func TestValidator_RUC(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(&proveedorPrueba{RUC: "20123456789"}))
	assert.Error(t, v.Validate(&proveedorPrueba{RUC: "123"}))
	assert.Error(t, v.Validate(&proveedorPrueba{RUC: "2012345678X"}))
}
