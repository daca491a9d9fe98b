package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ti-management/internal/entities"
)

func seedMantenimientoProgramado(t *testing.T, equipoID int64, fecha time.Time) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO mantenimientos (equipo_id, tipo, fecha_programada, descripcion, estado)
		VALUES ($1, 'preventivo', $2, 'Revisión programada', 'programado')
		RETURNING id
	`, equipoID, fecha).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestNotificacionRepository_ListadoYMarcarLeida(t *testing.T) {
	requirePool(t)
	repo := NewNotificacionRepository(testPool)
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	require.NoError(t, repo.CreateNotificacion(ctx,
		entities.NotifMantenimientoProximo, "Aviso", "Mensaje de prueba", &equipoID, nil))

	noLeidas, err := repo.GetNotificaciones(ctx, false, 50)
	require.NoError(t, err)
	require.Len(t, noLeidas, 1)
	assert.Equal(t, "Aviso", noLeidas[0].Titulo)
	assert.Equal(t, "INV-0001", noLeidas[0].CodigoInventario.String)

	require.NoError(t, repo.MarcarLeida(ctx, noLeidas[0].ID))
	// Idempotente: repetir no falla.
	require.NoError(t, repo.MarcarLeida(ctx, noLeidas[0].ID))

	noLeidas, err = repo.GetNotificaciones(ctx, false, 50)
	require.NoError(t, err)
	assert.Empty(t, noLeidas)

	leidas, err := repo.GetNotificaciones(ctx, true, 50)
	require.NoError(t, err)
	assert.Len(t, leidas, 1)
}

func TestNotificacionRepository_MantenimientosProximosConDeduplicacion(t *testing.T) {
	requirePool(t)
	repo := NewNotificacionRepository(testPool)
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	hoy := time.Now().Truncate(24 * time.Hour)
	mantID := seedMantenimientoProgramado(t, equipoID, hoy.AddDate(0, 0, 5))
	seedMantenimientoProgramado(t, equipoID, hoy.AddDate(0, 0, 30))

	avisos, err := repo.MantenimientosProximos(ctx, hoy, hoy.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, avisos, 1)
	assert.Equal(t, mantID, avisos[0].ID)
	assert.Equal(t, "INV-0001", avisos[0].CodigoInventario)

	// Tras notificar hoy, el mismo mantenimiento queda deduplicado.
	require.NoError(t, repo.CreateNotificacion(ctx,
		entities.NotifMantenimientoProximo, "Aviso", "Mensaje", &equipoID, &mantID))

	avisos, err = repo.MantenimientosProximos(ctx, hoy, hoy.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Empty(t, avisos)
}

func TestNotificacionRepository_VencidosSinDeduplicacion(t *testing.T) {
	requirePool(t)
	repo := NewNotificacionRepository(testPool)
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	hoy := time.Now().Truncate(24 * time.Hour)
	mantID := seedMantenimientoProgramado(t, equipoID, hoy.AddDate(0, 0, -10))

	require.NoError(t, repo.CreateNotificacion(ctx,
		entities.NotifMantenimientoVencido, "Vencido", "Mensaje", &equipoID, &mantID))

	// El aviso de vencido se repite en cada corrida aunque ya exista.
	vencidos, err := repo.MantenimientosVencidos(ctx, hoy)
	require.NoError(t, err)
	require.Len(t, vencidos, 1)
	assert.Equal(t, mantID, vencidos[0].ID)
}

func TestNotificacionRepository_UrgentesSinDeduplicacion(t *testing.T) {
	requirePool(t)
	repo := NewNotificacionRepository(testPool)
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)

	hoy := time.Now().Truncate(24 * time.Hour)
	mantID := seedMantenimientoProgramado(t, equipoID, hoy.AddDate(0, 0, 2))

	require.NoError(t, repo.CreateNotificacion(ctx,
		entities.NotifMantenimientoUrgente, "Urgente", "Mensaje", &equipoID, &mantID))

	// El aviso urgente también se repite aunque ya se haya notificado hoy.
	urgentes, err := repo.MantenimientosUrgentes(ctx, hoy, hoy.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, urgentes, 1)
	assert.Equal(t, mantID, urgentes[0].ID)
}

func TestNotificacionRepository_EquiposObsoletos(t *testing.T) {
	requirePool(t)
	repo := NewNotificacionRepository(testPool)
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)

	viejo := seedEquipo(t, "INV-VIEJO", categoriaID, entities.EstadoOperativo)
	_, err := testPool.Exec(ctx,
		"UPDATE equipos SET fecha_compra = CURRENT_DATE - INTERVAL '7 years' WHERE id = $1", viejo)
	require.NoError(t, err)

	nuevo := seedEquipo(t, "INV-NUEVO", categoriaID, entities.EstadoOperativo)
	_, err = testPool.Exec(ctx,
		"UPDATE equipos SET fecha_compra = CURRENT_DATE - INTERVAL '1 year' WHERE id = $1", nuevo)
	require.NoError(t, err)

	// Un equipo ya marcado obsoleto no vuelve a aparecer.
	marcado := seedEquipo(t, "INV-MARCADO", categoriaID, entities.EstadoObsoleto)
	_, err = testPool.Exec(ctx,
		"UPDATE equipos SET fecha_compra = CURRENT_DATE - INTERVAL '8 years' WHERE id = $1", marcado)
	require.NoError(t, err)

	obsoletos, err := repo.EquiposObsoletos(ctx)
	require.NoError(t, err)
	require.Len(t, obsoletos, 1)
	assert.Equal(t, viejo, obsoletos[0].ID)
	assert.Equal(t, 5, obsoletos[0].VidaUtilAnos)
	assert.GreaterOrEqual(t, obsoletos[0].AnosUso, 5)
}

func TestNotificacionRepository_GarantiaProxima(t *testing.T) {
	requirePool(t)
	repo := NewNotificacionRepository(testPool)
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	proveedorID := seedProveedor(t, "20123456789")

	porVencer := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)
	_, err := testPool.Exec(ctx, `
		UPDATE equipos SET fecha_garantia_fin = CURRENT_DATE + INTERVAL '30 days', proveedor_id = $2
		WHERE id = $1
	`, porVencer, proveedorID)
	require.NoError(t, err)

	lejana := seedEquipo(t, "INV-0002", categoriaID, entities.EstadoOperativo)
	_, err = testPool.Exec(ctx,
		"UPDATE equipos SET fecha_garantia_fin = CURRENT_DATE + INTERVAL '200 days' WHERE id = $1", lejana)
	require.NoError(t, err)

	hoy := time.Now().Truncate(24 * time.Hour)
	avisos, err := repo.EquiposGarantiaProxima(ctx, hoy, hoy.AddDate(0, 0, 60))
	require.NoError(t, err)
	require.Len(t, avisos, 1)
	assert.Equal(t, porVencer, avisos[0].ID)
	assert.True(t, avisos[0].Proveedor.Valid)
}

func TestNotificacionRepository_AltoCosto(t *testing.T) {
	requirePool(t)
	repo := NewNotificacionRepository(testPool)
	ctx := context.Background()

	categoriaID := seedCategoria(t, "Laptop", 5)
	equipoID := seedEquipo(t, "INV-0001", categoriaID, entities.EstadoOperativo)
	_, err := testPool.Exec(ctx,
		"UPDATE equipos SET costo_compra = 1000 WHERE id = $1", equipoID)
	require.NoError(t, err)

	// Dos mantenimientos del último año que suman 600 > 50% de 1000.
	for _, costo := range []float64{250, 350} {
		_, err := testPool.Exec(ctx, `
			INSERT INTO mantenimientos (equipo_id, tipo, fecha_programada, fecha_realizada,
				descripcion, estado, costo)
			VALUES ($1, 'correctivo', CURRENT_DATE - INTERVAL '60 days',
				CURRENT_DATE - INTERVAL '55 days', 'Reparación', 'completado', $2)
		`, equipoID, costo)
		require.NoError(t, err)
	}

	caros, err := repo.EquiposAltoCosto(ctx)
	require.NoError(t, err)
	require.Len(t, caros, 1)
	assert.Equal(t, equipoID, caros[0].ID)
	assert.Equal(t, int64(2), caros[0].NumMantenimientos)
	assert.InDelta(t, 600, caros[0].CostoTotalMantenimiento, 0.01)
	assert.Equal(t, 1000.0, caros[0].CostoCompra.Float64)
}
