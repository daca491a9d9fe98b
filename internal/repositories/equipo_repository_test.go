package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/types"
	"ti-management/pkg/utils"
)

func TestEquipoRepository_CreateAndFind(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	ubicacionID := seedUbicacion(t, "Edificio Principal", "Aula 101")
	proveedorID := seedProveedor(t, "20123456789")

	id, err := repo.CreateEquipo(ctx, dto.CreateEquipoDTO{
		CodigoInventario:  "INV-LAP-0001",
		CategoriaID:       categoriaID,
		Nombre:            "Dell Latitude 5520",
		Marca:             utils.StringPtr("Dell"),
		NumeroSerie:       utils.StringPtr("SN100001"),
		Especificaciones:  []byte(`{"ram": "16GB"}`),
		ProveedorID:       &proveedorID,
		FechaCompra:       utils.StringPtr("2023-05-10"),
		CostoCompra:       utils.Float64Ptr(1200),
		UbicacionActualID: &ubicacionID,
		EstadoOperativo:   entities.EstadoOperativo,
		EstadoFisico:      "bueno",
	})
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	equipo, err := repo.FindEquipo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "INV-LAP-0001", equipo.CodigoInventario)
	assert.Equal(t, "Dell Latitude 5520", equipo.Nombre)
	assert.Equal(t, "Laptop", equipo.CategoriaNombre.String)
	assert.Equal(t, "Edificio Principal - Aula 101", equipo.UbicacionNombre.String)
	assert.True(t, equipo.ProveedorNombre.Valid)
	assert.JSONEq(t, `{"ram": "16GB"}`, string(equipo.Especificaciones))
}

func TestEquipoRepository_CodigoDuplicado(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	_, err := repo.CreateEquipo(ctx, dto.CreateEquipoDTO{
		CodigoInventario: "INV-0001",
		CategoriaID:      categoriaID,
		Nombre:           "Duplicado",
		EstadoOperativo:  entities.EstadoOperativo,
		EstadoFisico:     "bueno",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "El código de inventario ya está registrado", httpErr.Message)
}

func TestEquipoRepository_FiltroPorEstado(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Desktop", 6)
	seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)
	seedEquipo(t, "INV-0002", categoriaID, entities.EstadoEnReparacion)
	seedEquipo(t, "INV-0003", categoriaID, entities.EstadoOperativo)

	equipos, err := repo.GetEquipos(ctx, types.ListParams{
		Filter: map[string]string{"estado": entities.EstadoEnReparacion},
		Limit:  200,
	})
	require.NoError(t, err)
	require.Len(t, equipos, 1)
	assert.Equal(t, "INV-0002", equipos[0].CodigoInventario)
}

func TestEquipoRepository_FiltrosCombinados(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	laptops := seedCategoria(t, "Laptop", 5)
	desktops := seedCategoria(t, "Desktop", 6)
	seedEquipo(t, "INV-0001", laptops, entities.EstadoOperativo)
	seedEquipo(t, "INV-0002", laptops, entities.EstadoEnReparacion)
	seedEquipo(t, "INV-0003", desktops, entities.EstadoOperativo)

	// Los filtros se combinan con AND.
	equipos, err := repo.GetEquipos(ctx, types.ListParams{
		Filter: map[string]string{"categoria": "Laptop", "estado": entities.EstadoOperativo},
		Limit:  200,
	})
	require.NoError(t, err)
	require.Len(t, equipos, 1)
	assert.Equal(t, "INV-0001", equipos[0].CodigoInventario)
}

func TestEquipoRepository_Update(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Monitor", 8)
	id := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	err := repo.UpdateEquipo(ctx, id, dto.UpdateEquipoDTO{
		Nombre:          utils.StringPtr("Monitor renombrado"),
		EstadoOperativo: utils.StringPtr(entities.EstadoEnAlmacen),
	})
	require.NoError(t, err)

	equipo, err := repo.FindEquipo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Monitor renombrado", equipo.Nombre)
	assert.Equal(t, entities.EstadoEnAlmacen, equipo.EstadoOperativo)
}

func TestEquipoRepository_UpdateSinCampos(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())

	categoriaID := seedCategoria(t, "Monitor", 8)
	id := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	err := repo.UpdateEquipo(context.Background(), id, dto.UpdateEquipoDTO{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)
}

func TestEquipoRepository_UpdateInexistente(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())

	err := repo.UpdateEquipo(context.Background(), 9999, dto.UpdateEquipoDTO{
		Nombre: utils.StringPtr("Nada"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEquipoRepository_Delete(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Tablet", 4)
	id := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	require.NoError(t, repo.DeleteEquipo(ctx, id))

	_, err := repo.FindEquipo(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteEquipo(ctx, id), apperrors.ErrNotFound)
}

func TestEquipoRepository_UpdateEstadoOperativo(t *testing.T) {
	requirePool(t)
	repo := NewEquipoRepository(testPool, zap.NewNop())
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Impresora", 5)
	id := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	require.NoError(t, repo.UpdateEstadoOperativo(ctx, id, entities.EstadoEnReparacion))

	equipo, err := repo.FindEquipo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.EstadoEnReparacion, equipo.EstadoOperativo)
}
