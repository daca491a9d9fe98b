package repositories

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/entities"
)

type ReporteRepositoryInterface interface {
	GetDashboard(ctx context.Context) (*entities.Dashboard, error)
	EquiposPorUbicacion(ctx context.Context) ([]entities.EquiposPorUbicacion, error)
	EquiposPorEstado(ctx context.Context) ([]entities.EquiposPorEstado, error)
	EquiposPorCategoria(ctx context.Context) ([]entities.EquiposPorCategoria, error)
	EquiposPorAntiguedad(ctx context.Context) ([]entities.EquiposPorAntiguedad, error)
	EquiposPorGarantia(ctx context.Context) ([]entities.EquiposPorGarantia, error)
	CostosMantenimiento(ctx context.Context, year int) ([]entities.CostoMantenimientoMensual, error)
	MantenimientosPorPrioridad(ctx context.Context) ([]entities.MantenimientosPorPrioridad, error)
	ExportEquipos(ctx context.Context) ([]entities.ExportEquipoRow, error)
	ExportMantenimientos(ctx context.Context) ([]entities.ExportMantenimientoRow, error)
}

type ReporteRepository struct {
	storage *pgxpool.Pool
}

func NewReporteRepository(storage *pgxpool.Pool) ReporteRepositoryInterface {
	return &ReporteRepository{storage: storage}
}

func (r *ReporteRepository) GetDashboard(ctx context.Context) (*entities.Dashboard, error) {
	var d entities.Dashboard

	if err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM equipos").Scan(&d.TotalEquipos); err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM equipos WHERE estado_operativo = 'operativo'").Scan(&d.EquiposOperativos); err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM equipos WHERE estado_operativo = 'en_reparacion'").Scan(&d.EquiposReparacion); err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx,
		"SELECT COALESCE(SUM(costo_compra), 0) FROM equipos").Scan(&d.ValorInventario); err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, `
		SELECT COUNT(*) FROM mantenimientos
		WHERE EXTRACT(MONTH FROM fecha_programada) = EXTRACT(MONTH FROM CURRENT_DATE)
		AND EXTRACT(YEAR FROM fecha_programada) = EXTRACT(YEAR FROM CURRENT_DATE)
	`).Scan(&d.MantenimientosMes); err != nil {
		return nil, err
	}
	if err := r.storage.QueryRow(ctx, `
		SELECT COALESCE(SUM(costo), 0) FROM mantenimientos
		WHERE EXTRACT(MONTH FROM fecha_realizada) = EXTRACT(MONTH FROM CURRENT_DATE)
		AND EXTRACT(YEAR FROM fecha_realizada) = EXTRACT(YEAR FROM CURRENT_DATE)
	`).Scan(&d.CostoMantenimientoMes); err != nil {
		return nil, err
	}

	if d.TotalEquipos > 0 {
		tasa := float64(d.EquiposOperativos) / float64(d.TotalEquipos) * 100
		d.TasaDisponibilidad = math.Round(tasa*100) / 100
	}
	return &d, nil
}

func (r *ReporteRepository) EquiposPorUbicacion(ctx context.Context) ([]entities.EquiposPorUbicacion, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT u.edificio || ' - ' || u.aula_oficina AS ubicacion,
		       COUNT(*) AS cantidad
		FROM equipos e
			JOIN ubicaciones u ON e.ubicacion_actual_id = u.id
		GROUP BY u.id, u.edificio, u.aula_oficina
		ORDER BY cantidad DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.EquiposPorUbicacion
	for rows.Next() {
		var item entities.EquiposPorUbicacion
		if err := rows.Scan(&item.Ubicacion, &item.Cantidad); err != nil {
			return nil, err
		}
		resultado = append(resultado, item)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) EquiposPorEstado(ctx context.Context) ([]entities.EquiposPorEstado, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT estado_operativo AS estado, COUNT(*) AS cantidad
		FROM equipos
		GROUP BY estado_operativo
		ORDER BY cantidad DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.EquiposPorEstado
	for rows.Next() {
		var item entities.EquiposPorEstado
		if err := rows.Scan(&item.Estado, &item.Cantidad); err != nil {
			return nil, err
		}
		resultado = append(resultado, item)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) EquiposPorCategoria(ctx context.Context) ([]entities.EquiposPorCategoria, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT c.nombre AS categoria, COUNT(*) AS cantidad,
		       COALESCE(SUM(e.costo_compra), 0) AS valor_total
		FROM equipos e
			JOIN categorias_equipos c ON e.categoria_id = c.id
		GROUP BY c.nombre
		ORDER BY cantidad DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.EquiposPorCategoria
	for rows.Next() {
		var item entities.EquiposPorCategoria
		if err := rows.Scan(&item.Categoria, &item.Cantidad, &item.ValorTotal); err != nil {
			return nil, err
		}
		resultado = append(resultado, item)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) EquiposPorAntiguedad(ctx context.Context) ([]entities.EquiposPorAntiguedad, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT
			CASE
				WHEN EXTRACT(YEAR FROM AGE(CURRENT_DATE, fecha_compra)) < 1 THEN 'Menos de 1 año'
				WHEN EXTRACT(YEAR FROM AGE(CURRENT_DATE, fecha_compra)) BETWEEN 1 AND 2 THEN '1-2 años'
				WHEN EXTRACT(YEAR FROM AGE(CURRENT_DATE, fecha_compra)) BETWEEN 3 AND 4 THEN '3-4 años'
				WHEN EXTRACT(YEAR FROM AGE(CURRENT_DATE, fecha_compra)) BETWEEN 5 AND 6 THEN '5-6 años'
				ELSE 'Más de 6 años'
			END AS rango_antiguedad,
			COUNT(*) AS cantidad
		FROM equipos
		WHERE fecha_compra IS NOT NULL
		GROUP BY rango_antiguedad
		ORDER BY
			CASE rango_antiguedad
				WHEN 'Menos de 1 año' THEN 1
				WHEN '1-2 años' THEN 2
				WHEN '3-4 años' THEN 3
				WHEN '5-6 años' THEN 4
				ELSE 5
			END
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.EquiposPorAntiguedad
	for rows.Next() {
		var item entities.EquiposPorAntiguedad
		if err := rows.Scan(&item.RangoAntiguedad, &item.Cantidad); err != nil {
			return nil, err
		}
		resultado = append(resultado, item)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) EquiposPorGarantia(ctx context.Context) ([]entities.EquiposPorGarantia, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT
			CASE
				WHEN fecha_garantia_fin >= CURRENT_DATE THEN 'En garantía'
				WHEN fecha_garantia_fin < CURRENT_DATE THEN 'Fuera de garantía'
				ELSE 'Sin información'
			END AS estado_garantia,
			COUNT(*) AS cantidad
		FROM equipos
		GROUP BY estado_garantia
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.EquiposPorGarantia
	for rows.Next() {
		var item entities.EquiposPorGarantia
		if err := rows.Scan(&item.EstadoGarantia, &item.Cantidad); err != nil {
			return nil, err
		}
		resultado = append(resultado, item)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) CostosMantenimiento(ctx context.Context, year int) ([]entities.CostoMantenimientoMensual, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT TO_CHAR(fecha_realizada, 'Month') AS mes,
		       EXTRACT(MONTH FROM fecha_realizada)::int AS mes_num,
		       tipo,
		       SUM(costo) AS total_costo,
		       COUNT(*) AS cantidad
		FROM mantenimientos
		WHERE EXTRACT(YEAR FROM fecha_realizada) = $1
		AND fecha_realizada IS NOT NULL
		GROUP BY mes, mes_num, tipo
		ORDER BY mes_num, tipo
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.CostoMantenimientoMensual
	for rows.Next() {
		var item entities.CostoMantenimientoMensual
		if err := rows.Scan(&item.Mes, &item.MesNum, &item.Tipo, &item.TotalCosto, &item.Cantidad); err != nil {
			return nil, err
		}
		resultado = append(resultado, item)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) MantenimientosPorPrioridad(ctx context.Context) ([]entities.MantenimientosPorPrioridad, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT prioridad, COUNT(*) AS cantidad
		FROM mantenimientos
		WHERE estado IN ('programado', 'en_proceso')
		GROUP BY prioridad
		ORDER BY
			CASE prioridad
				WHEN 'urgente' THEN 1
				WHEN 'alta' THEN 2
				WHEN 'media' THEN 3
				WHEN 'baja' THEN 4
			END
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.MantenimientosPorPrioridad
	for rows.Next() {
		var item entities.MantenimientosPorPrioridad
		if err := rows.Scan(&item.Prioridad, &item.Cantidad); err != nil {
			return nil, err
		}
		resultado = append(resultado, item)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) ExportEquipos(ctx context.Context) ([]entities.ExportEquipoRow, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT e.codigo_inventario, e.nombre, e.marca, e.modelo,
		       c.nombre AS categoria, e.estado_operativo,
		       u.edificio || ' - ' || u.aula_oficina AS ubicacion,
		       e.fecha_compra, e.costo_compra
		FROM equipos e
			LEFT JOIN categorias_equipos c ON e.categoria_id = c.id
			LEFT JOIN ubicaciones u ON e.ubicacion_actual_id = u.id
		ORDER BY e.codigo_inventario
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.ExportEquipoRow
	for rows.Next() {
		var row entities.ExportEquipoRow
		if err := rows.Scan(&row.CodigoInventario, &row.Nombre, &row.Marca, &row.Modelo,
			&row.Categoria, &row.EstadoOperativo, &row.Ubicacion, &row.FechaCompra, &row.CostoCompra); err != nil {
			return nil, err
		}
		resultado = append(resultado, row)
	}
	return resultado, rows.Err()
}

func (r *ReporteRepository) ExportMantenimientos(ctx context.Context) ([]entities.ExportMantenimientoRow, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT m.id, m.tipo, m.fecha_programada, m.fecha_realizada,
		       e.codigo_inventario, e.nombre AS equipo,
		       m.estado, m.costo, m.descripcion
		FROM mantenimientos m
			JOIN equipos e ON m.equipo_id = e.id
		ORDER BY m.fecha_programada DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resultado []entities.ExportMantenimientoRow
	for rows.Next() {
		var row entities.ExportMantenimientoRow
		if err := rows.Scan(&row.ID, &row.Tipo, &row.FechaProgramada, &row.FechaRealizada,
			&row.CodigoInventario, &row.Equipo, &row.Estado, &row.Costo, &row.Descripcion); err != nil {
			return nil, err
		}
		resultado = append(resultado, row)
	}
	return resultado, rows.Err()
}
