package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/entities"
)

type NotificacionRepositoryInterface interface {
	CreateNotificacion(ctx context.Context, tipo, titulo, mensaje string, equipoID, mantenimientoID *int64) error
	GetNotificaciones(ctx context.Context, leida bool, limit uint64) ([]entities.Notificacion, error)
	MarcarLeida(ctx context.Context, id int64) error

	MantenimientosProximos(ctx context.Context, hoy, limite time.Time) ([]entities.MantenimientoAviso, error)
	MantenimientosUrgentes(ctx context.Context, hoy, limite time.Time) ([]entities.MantenimientoAviso, error)
	MantenimientosVencidos(ctx context.Context, hoy time.Time) ([]entities.MantenimientoAviso, error)
	EquiposObsoletos(ctx context.Context) ([]entities.EquipoObsolescencia, error)
	EquiposProximosObsolescencia(ctx context.Context) ([]entities.EquipoObsolescencia, error)
	EquiposGarantiaProxima(ctx context.Context, hoy, limite time.Time) ([]entities.EquipoGarantia, error)
	EquiposAltoCosto(ctx context.Context) ([]entities.EquipoAltoCosto, error)
}

type NotificacionRepository struct {
	storage *pgxpool.Pool
}

func NewNotificacionRepository(storage *pgxpool.Pool) NotificacionRepositoryInterface {
	return &NotificacionRepository{storage: storage}
}

func (r *NotificacionRepository) CreateNotificacion(ctx context.Context, tipo, titulo, mensaje string, equipoID, mantenimientoID *int64) error {
	_, err := r.storage.Exec(ctx, `
		INSERT INTO notificaciones (tipo, titulo, mensaje, equipo_id, mantenimiento_id)
		VALUES ($1, $2, $3, $4, $5)
	`, tipo, titulo, mensaje, equipoID, mantenimientoID)
	return err
}

func (r *NotificacionRepository) GetNotificaciones(ctx context.Context, leida bool, limit uint64) ([]entities.Notificacion, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT n.id, n.tipo, n.titulo, n.mensaje, n.usuario_id, n.equipo_id,
		       n.mantenimiento_id, n.leida, n.fecha_creacion, n.fecha_lectura,
		       e.codigo_inventario, e.nombre AS equipo_nombre
		FROM notificaciones n
			LEFT JOIN equipos e ON n.equipo_id = e.id
		WHERE n.leida = $1
		ORDER BY n.fecha_creacion DESC
		LIMIT $2
	`, leida, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notificaciones []entities.Notificacion
	for rows.Next() {
		var n entities.Notificacion
		if err := rows.Scan(&n.ID, &n.Tipo, &n.Titulo, &n.Mensaje, &n.UsuarioID, &n.EquipoID,
			&n.MantenimientoID, &n.Leida, &n.FechaCreacion, &n.FechaLectura,
			&n.CodigoInventario, &n.EquipoNombre); err != nil {
			return nil, err
		}
		notificaciones = append(notificaciones, n)
	}
	return notificaciones, rows.Err()
}

// MarcarLeida es idempotente: marcar una notificación ya leída o inexistente
// no es un error.
func (r *NotificacionRepository) MarcarLeida(ctx context.Context, id int64) error {
	_, err := r.storage.Exec(ctx,
		"UPDATE notificaciones SET leida = TRUE, fecha_lectura = CURRENT_TIMESTAMP WHERE id = $1", id)
	return err
}

// MantenimientosProximos localiza mantenimientos programados dentro de la
// ventana, descartando los que ya generaron aviso hoy.
func (r *NotificacionRepository) MantenimientosProximos(ctx context.Context, hoy, limite time.Time) ([]entities.MantenimientoAviso, error) {
	return r.avisos(ctx, `
		SELECT m.id, m.fecha_programada, m.descripcion,
		       e.id AS equipo_id, e.nombre AS equipo_nombre, e.codigo_inventario
		FROM mantenimientos m
			JOIN equipos e ON m.equipo_id = e.id
		WHERE m.fecha_programada BETWEEN $1 AND $2
		AND m.estado = 'programado'
		AND NOT EXISTS (
			SELECT 1 FROM notificaciones n
			WHERE n.mantenimiento_id = m.id
			AND n.tipo = 'mantenimiento_proximo'
			AND n.fecha_creacion >= CURRENT_DATE
		)
	`, hoy, limite)
}

func (r *NotificacionRepository) MantenimientosUrgentes(ctx context.Context, hoy, limite time.Time) ([]entities.MantenimientoAviso, error) {
	return r.avisos(ctx, `
		SELECT m.id, m.fecha_programada, m.descripcion,
		       e.id AS equipo_id, e.nombre AS equipo_nombre, e.codigo_inventario
		FROM mantenimientos m
			JOIN equipos e ON m.equipo_id = e.id
		WHERE m.fecha_programada BETWEEN $1 AND $2
		AND m.estado = 'programado'
	`, hoy, limite)
}

func (r *NotificacionRepository) MantenimientosVencidos(ctx context.Context, hoy time.Time) ([]entities.MantenimientoAviso, error) {
	return r.avisos(ctx, `
		SELECT m.id, m.fecha_programada, m.descripcion,
		       e.id AS equipo_id, e.nombre AS equipo_nombre, e.codigo_inventario
		FROM mantenimientos m
			JOIN equipos e ON m.equipo_id = e.id
		WHERE m.fecha_programada < $1
		AND m.estado = 'programado'
	`, hoy)
}

func (r *NotificacionRepository) avisos(ctx context.Context, query string, args ...interface{}) ([]entities.MantenimientoAviso, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var avisos []entities.MantenimientoAviso
	for rows.Next() {
		var a entities.MantenimientoAviso
		if err := rows.Scan(&a.ID, &a.FechaProgramada, &a.Descripcion,
			&a.EquipoID, &a.EquipoNombre, &a.CodigoInventario); err != nil {
			return nil, err
		}
		avisos = append(avisos, a)
	}
	return avisos, rows.Err()
}

// EquiposObsoletos identifica equipos cuya antigüedad alcanzó la vida útil de
// su categoría. El NOT EXISTS evita repetir el aviso durante 30 días.
func (r *NotificacionRepository) EquiposObsoletos(ctx context.Context) ([]entities.EquipoObsolescencia, error) {
	return r.obsolescencia(ctx, `
		SELECT e.id, e.nombre, e.codigo_inventario, c.vida_util_anos,
		       EXTRACT(YEAR FROM AGE(CURRENT_DATE, e.fecha_compra))::int AS anos_uso
		FROM equipos e
			JOIN categorias_equipos c ON e.categoria_id = c.id
		WHERE e.fecha_compra IS NOT NULL
		AND EXTRACT(YEAR FROM AGE(CURRENT_DATE, e.fecha_compra)) >= c.vida_util_anos
		AND e.estado_operativo NOT IN ('obsoleto', 'dado_baja')
		AND NOT EXISTS (
			SELECT 1 FROM notificaciones n
			WHERE n.equipo_id = e.id
			AND n.tipo = 'equipo_obsoleto'
			AND n.fecha_creacion >= CURRENT_DATE - INTERVAL '30 days'
		)
	`)
}

func (r *NotificacionRepository) EquiposProximosObsolescencia(ctx context.Context) ([]entities.EquipoObsolescencia, error) {
	return r.obsolescencia(ctx, `
		SELECT e.id, e.nombre, e.codigo_inventario, c.vida_util_anos,
		       EXTRACT(YEAR FROM AGE(CURRENT_DATE, e.fecha_compra))::int AS anos_uso
		FROM equipos e
			JOIN categorias_equipos c ON e.categoria_id = c.id
		WHERE e.fecha_compra IS NOT NULL
		AND EXTRACT(YEAR FROM AGE(CURRENT_DATE, e.fecha_compra)) >= (c.vida_util_anos - 1)
		AND EXTRACT(YEAR FROM AGE(CURRENT_DATE, e.fecha_compra)) < c.vida_util_anos
		AND e.estado_operativo NOT IN ('obsoleto', 'dado_baja')
	`)
}

func (r *NotificacionRepository) obsolescencia(ctx context.Context, query string) ([]entities.EquipoObsolescencia, error) {
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipos []entities.EquipoObsolescencia
	for rows.Next() {
		var e entities.EquipoObsolescencia
		if err := rows.Scan(&e.ID, &e.Nombre, &e.CodigoInventario, &e.VidaUtilAnos, &e.AnosUso); err != nil {
			return nil, err
		}
		equipos = append(equipos, e)
	}
	return equipos, rows.Err()
}

func (r *NotificacionRepository) EquiposGarantiaProxima(ctx context.Context, hoy, limite time.Time) ([]entities.EquipoGarantia, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT e.id, e.nombre, e.codigo_inventario, e.fecha_garantia_fin,
		       p.razon_social AS proveedor
		FROM equipos e
			LEFT JOIN proveedores p ON e.proveedor_id = p.id
		WHERE e.fecha_garantia_fin BETWEEN $1 AND $2
		AND NOT EXISTS (
			SELECT 1 FROM notificaciones n
			WHERE n.equipo_id = e.id
			AND n.tipo = 'garantia_proxima_vencer'
			AND n.fecha_creacion >= CURRENT_DATE - INTERVAL '30 days'
		)
	`, hoy, limite)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipos []entities.EquipoGarantia
	for rows.Next() {
		var e entities.EquipoGarantia
		if err := rows.Scan(&e.ID, &e.Nombre, &e.CodigoInventario, &e.FechaGarantiaFin, &e.Proveedor); err != nil {
			return nil, err
		}
		equipos = append(equipos, e)
	}
	return equipos, rows.Err()
}

// EquiposAltoCosto agrega los mantenimientos realizados del último año y
// devuelve los equipos cuyo costo acumulado supera la mitad del costo de
// compra.
func (r *NotificacionRepository) EquiposAltoCosto(ctx context.Context) ([]entities.EquipoAltoCosto, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT e.id, e.nombre, e.codigo_inventario, e.costo_compra,
		       COUNT(m.id) AS num_mantenimientos,
		       SUM(m.costo) AS costo_total_mantenimiento
		FROM equipos e
			JOIN mantenimientos m ON e.id = m.equipo_id
		WHERE m.fecha_realizada >= CURRENT_DATE - INTERVAL '1 year'
		GROUP BY e.id
		HAVING SUM(m.costo) > e.costo_compra * 0.5
		ORDER BY costo_total_mantenimiento DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipos []entities.EquipoAltoCosto
	for rows.Next() {
		var e entities.EquipoAltoCosto
		if err := rows.Scan(&e.ID, &e.Nombre, &e.CodigoInventario, &e.CostoCompra,
			&e.NumMantenimientos, &e.CostoTotalMantenimiento); err != nil {
			return nil, err
		}
		equipos = append(equipos, e)
	}
	return equipos, rows.Err()
}
