package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/types"
	"ti-management/pkg/utils"
)

func TestMantenimientoRepository_CreateAndFind(t *testing.T) {
	requirePool(t)
	repo := NewMantenimientoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)
	tecnicoID := seedUsuario(t, "jperez", "tecnico")

	id, err := repo.CreateMantenimiento(ctx, dto.CreateMantenimientoDTO{
		EquipoID:          equipoID,
		Tipo:              entities.MantenimientoCorrectivo,
		FechaProgramada:   "2025-04-01",
		TecnicoID:         &tecnicoID,
		Descripcion:       "Cambio de disco",
		ProblemaReportado: utils.StringPtr("No arranca"),
		Prioridad:         "alta",
	}, entities.MantenimientoProgramado)
	require.NoError(t, err)

	m, err := repo.FindMantenimiento(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, equipoID, m.EquipoID)
	assert.Equal(t, entities.MantenimientoCorrectivo, m.Tipo)
	assert.Equal(t, entities.MantenimientoProgramado, m.Estado)
	assert.Equal(t, "alta", m.Prioridad)
	assert.Equal(t, "INV-0001", m.CodigoInventario.String)
}

func TestMantenimientoRepository_FindResumen(t *testing.T) {
	requirePool(t)
	repo := NewMantenimientoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	id, err := repo.CreateMantenimiento(ctx, dto.CreateMantenimientoDTO{
		EquipoID:        equipoID,
		Tipo:            entities.MantenimientoPreventivo,
		FechaProgramada: "2025-04-01",
		Descripcion:     "Limpieza",
	}, entities.MantenimientoProgramado)
	require.NoError(t, err)

	eqID, estado, tipo, err := repo.FindResumen(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, equipoID, eqID)
	assert.Equal(t, entities.MantenimientoProgramado, estado)
	assert.Equal(t, entities.MantenimientoPreventivo, tipo)

	_, _, _, err = repo.FindResumen(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMantenimientoRepository_FiltrosDeRango(t *testing.T) {
	requirePool(t)
	repo := NewMantenimientoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	for _, fecha := range []string{"2025-01-15", "2025-02-15", "2025-03-15"} {
		_, err := repo.CreateMantenimiento(ctx, dto.CreateMantenimientoDTO{
			EquipoID:        equipoID,
			Tipo:            entities.MantenimientoPreventivo,
			FechaProgramada: fecha,
			Descripcion:     "Revisión " + fecha,
		}, entities.MantenimientoProgramado)
		require.NoError(t, err)
	}

	lista, err := repo.GetMantenimientos(ctx, types.ListParams{
		Filter: map[string]string{
			"fecha_desde": "2025-02-01",
			"fecha_hasta": "2025-02-28",
		},
		Limit: 200,
	})
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "2025-02-15", lista[0].FechaProgramada.Format("2006-01-02"))
}

func TestMantenimientoRepository_UpdateEstado(t *testing.T) {
	requirePool(t)
	repo := NewMantenimientoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	id, err := repo.CreateMantenimiento(ctx, dto.CreateMantenimientoDTO{
		EquipoID:        equipoID,
		Tipo:            entities.MantenimientoCorrectivo,
		FechaProgramada: "2025-04-01",
		Descripcion:     "Reparación",
	}, entities.MantenimientoProgramado)
	require.NoError(t, err)

	err = repo.UpdateMantenimiento(ctx, id, dto.UpdateMantenimientoDTO{
		Estado:           utils.StringPtr(entities.MantenimientoCompletado),
		FechaRealizada:   utils.StringPtr("2025-04-03"),
		Costo:            utils.Float64Ptr(150),
		SolucionAplicada: utils.StringPtr("Disco reemplazado"),
	})
	require.NoError(t, err)

	m, err := repo.FindMantenimiento(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.MantenimientoCompletado, m.Estado)
	assert.Equal(t, 150.0, m.Costo.Float64)
}

func TestMantenimientoRepository_Calendario(t *testing.T) {
	requirePool(t)
	repo := NewMantenimientoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	_, err := repo.CreateMantenimiento(ctx, dto.CreateMantenimientoDTO{
		EquipoID:        equipoID,
		Tipo:            entities.MantenimientoPreventivo,
		FechaProgramada: "2025-06-10",
		Descripcion:     "Dentro del mes",
	}, entities.MantenimientoProgramado)
	require.NoError(t, err)
	_, err = repo.CreateMantenimiento(ctx, dto.CreateMantenimientoDTO{
		EquipoID:        equipoID,
		Tipo:            entities.MantenimientoPreventivo,
		FechaProgramada: "2025-07-10",
		Descripcion:     "Fuera del mes",
	}, entities.MantenimientoProgramado)
	require.NoError(t, err)

	items, err := repo.GetCalendario(ctx, 6, 2025)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, time.June, items[0].FechaProgramada.Month())
}

func TestMantenimientoRepository_Estadisticas(t *testing.T) {
	requirePool(t)
	repo := NewMantenimientoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	id, err := repo.CreateMantenimiento(ctx, dto.CreateMantenimientoDTO{
		EquipoID:        equipoID,
		Tipo:            entities.MantenimientoCorrectivo,
		FechaProgramada: fechaISO(time.Now()),
		Descripcion:     "Con costo",
	}, entities.MantenimientoProgramado)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateMantenimiento(ctx, id, dto.UpdateMantenimientoDTO{
		Estado:         utils.StringPtr(entities.MantenimientoCompletado),
		FechaRealizada: utils.StringPtr(fechaISO(time.Now())),
		Costo:          utils.Float64Ptr(300),
	}))

	stats, err := repo.GetEstadisticas(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, 300.0, stats.CostoTotal)
	require.NotEmpty(t, stats.PorTipo)
}
