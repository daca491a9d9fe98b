package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/types"
)

const mantenimientoTable = "mantenimientos"

const mantenimientoFields = `m.id, m.equipo_id, m.tipo, m.fecha_programada, m.fecha_realizada,
	m.tecnico_id, m.proveedor_id, m.descripcion, m.problema_reportado, m.solucion_aplicada,
	m.costo, m.tiempo_fuera_servicio_horas, m.estado, m.prioridad, m.partes_reemplazadas,
	m.observaciones, m.fecha_creacion`

// Filtros de igualdad del listado. fecha_desde y fecha_hasta se tratan aparte
// porque son rangos sobre fecha_programada.
var mantenimientoFilterMap = map[string]string{
	"equipo_id": "m.equipo_id",
	"estado":    "m.estado",
	"tipo":      "m.tipo",
}

type MantenimientoRepositoryInterface interface {
	GetMantenimientos(ctx context.Context, params types.ListParams) ([]entities.Mantenimiento, error)
	FindMantenimiento(ctx context.Context, id int64) (*entities.Mantenimiento, error)
	CreateMantenimiento(ctx context.Context, payload dto.CreateMantenimientoDTO, estado string) (int64, error)
	UpdateMantenimiento(ctx context.Context, id int64, payload dto.UpdateMantenimientoDTO) error
	DeleteMantenimiento(ctx context.Context, id int64) error
	FindResumen(ctx context.Context, id int64) (equipoID int64, estado string, tipo string, err error)
	GetCalendario(ctx context.Context, mes int, anio int) ([]entities.CalendarioItem, error)
	GetEstadisticas(ctx context.Context) (*entities.EstadisticasMantenimiento, error)
}

type MantenimientoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewMantenimientoRepository(storage *pgxpool.Pool, logger *zap.Logger) MantenimientoRepositoryInterface {
	return &MantenimientoRepository{storage: storage, logger: logger}
}

func scanMantenimiento(row pgx.Row, m *entities.Mantenimiento, extras ...interface{}) error {
	dest := []interface{}{
		&m.ID, &m.EquipoID, &m.Tipo, &m.FechaProgramada, &m.FechaRealizada,
		&m.TecnicoID, &m.ProveedorID, &m.Descripcion, &m.ProblemaReportado, &m.SolucionAplicada,
		&m.Costo, &m.TiempoFueraServicioHoras, &m.Estado, &m.Prioridad, &m.PartesReemplazadas,
		&m.Observaciones, &m.FechaCreacion,
	}
	dest = append(dest, extras...)
	return row.Scan(dest...)
}

func (r *MantenimientoRepository) GetMantenimientos(ctx context.Context, params types.ListParams) ([]entities.Mantenimiento, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(mantenimientoFields,
		"e.codigo_inventario",
		"e.nombre AS equipo_nombre",
		"u.nombre_completo AS tecnico_nombre",
		"p.razon_social AS proveedor_nombre").
		From(mantenimientoTable + " m").
		Join("equipos e ON m.equipo_id = e.id").
		LeftJoin("usuarios u ON m.tecnico_id = u.id").
		LeftJoin("proveedores p ON m.proveedor_id = p.id").
		OrderBy("m.fecha_programada DESC")

	for key, value := range params.Filter {
		if column, ok := mantenimientoFilterMap[key]; ok {
			builder = builder.Where(sq.Eq{column: value})
		}
	}
	if desde, ok := params.Filter["fecha_desde"]; ok {
		builder = builder.Where(sq.GtOrEq{"m.fecha_programada": desde})
	}
	if hasta, ok := params.Filter["fecha_hasta"]; ok {
		builder = builder.Where(sq.LtOrEq{"m.fecha_programada": hasta})
	}
	if params.Limit > 0 {
		builder = builder.Limit(params.Limit).Offset(params.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la consulta de mantenimientos: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mantenimientos []entities.Mantenimiento
	for rows.Next() {
		var m entities.Mantenimiento
		if err := scanMantenimiento(rows, &m,
			&m.CodigoInventario, &m.EquipoNombre, &m.TecnicoNombre, &m.ProveedorNombre); err != nil {
			return nil, fmt.Errorf("error escaneando mantenimiento: %w", err)
		}
		mantenimientos = append(mantenimientos, m)
	}
	return mantenimientos, rows.Err()
}

func (r *MantenimientoRepository) FindMantenimiento(ctx context.Context, id int64) (*entities.Mantenimiento, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       e.codigo_inventario,
		       e.nombre AS equipo_nombre,
		       u.nombre_completo AS tecnico_nombre,
		       p.razon_social AS proveedor_nombre
		FROM %s m
			JOIN equipos e ON m.equipo_id = e.id
			LEFT JOIN usuarios u ON m.tecnico_id = u.id
			LEFT JOIN proveedores p ON m.proveedor_id = p.id
		WHERE m.id = $1
	`, mantenimientoFields, mantenimientoTable)

	var m entities.Mantenimiento
	err := scanMantenimiento(r.storage.QueryRow(ctx, query, id), &m,
		&m.CodigoInventario, &m.EquipoNombre, &m.TecnicoNombre, &m.ProveedorNombre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MantenimientoRepository) CreateMantenimiento(ctx context.Context, payload dto.CreateMantenimientoDTO, estado string) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			equipo_id, tipo, fecha_programada, tecnico_id, proveedor_id,
			descripcion, problema_reportado, estado, prioridad, observaciones
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, mantenimientoTable)

	var id int64
	err := r.storage.QueryRow(ctx, query,
		payload.EquipoID,
		payload.Tipo,
		payload.FechaProgramada,
		payload.TecnicoID,
		payload.ProveedorID,
		payload.Descripcion,
		payload.ProblemaReportado,
		estado,
		payload.Prioridad,
		payload.Observaciones,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.FromPgError(err)
	}
	return id, nil
}

func (r *MantenimientoRepository) UpdateMantenimiento(ctx context.Context, id int64, payload dto.UpdateMantenimientoDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(mantenimientoTable)

	if payload.FechaProgramada != nil {
		builder = builder.Set("fecha_programada", *payload.FechaProgramada)
	}
	if payload.FechaRealizada != nil {
		builder = builder.Set("fecha_realizada", *payload.FechaRealizada)
	}
	if payload.TecnicoID != nil {
		builder = builder.Set("tecnico_id", *payload.TecnicoID)
	}
	if payload.ProveedorID != nil {
		builder = builder.Set("proveedor_id", *payload.ProveedorID)
	}
	if payload.Descripcion != nil {
		builder = builder.Set("descripcion", *payload.Descripcion)
	}
	if payload.ProblemaReportado != nil {
		builder = builder.Set("problema_reportado", *payload.ProblemaReportado)
	}
	if payload.SolucionAplicada != nil {
		builder = builder.Set("solucion_aplicada", *payload.SolucionAplicada)
	}
	if payload.Costo != nil {
		builder = builder.Set("costo", *payload.Costo)
	}
	if payload.TiempoFueraServicioHoras != nil {
		builder = builder.Set("tiempo_fuera_servicio_horas", *payload.TiempoFueraServicioHoras)
	}
	if payload.Estado != nil {
		builder = builder.Set("estado", *payload.Estado)
	}
	if payload.Prioridad != nil {
		builder = builder.Set("prioridad", *payload.Prioridad)
	}
	if len(payload.PartesReemplazadas) > 0 {
		builder = builder.Set("partes_reemplazadas", []byte(payload.PartesReemplazadas))
	}
	if payload.Observaciones != nil {
		builder = builder.Set("observaciones", *payload.Observaciones)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return apperrors.ErrNoFieldsToUpdate
	}

	_, err = r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.FromPgError(err)
	}
	return nil
}

func (r *MantenimientoRepository) DeleteMantenimiento(ctx context.Context, id int64) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1", mantenimientoTable), id)
	if err != nil {
		return apperrors.FromPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindResumen lee el equipo, estado y tipo de un mantenimiento. El servicio
// lo consulta antes de actualizar para decidir el efecto sobre el equipo.
func (r *MantenimientoRepository) FindResumen(ctx context.Context, id int64) (int64, string, string, error) {
	var equipoID int64
	var estado, tipo string
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT equipo_id, estado, tipo FROM %s WHERE id = $1", mantenimientoTable), id).
		Scan(&equipoID, &estado, &tipo)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, "", "", apperrors.ErrNotFound
	}
	if err != nil {
		return 0, "", "", err
	}
	return equipoID, estado, tipo, nil
}

func (r *MantenimientoRepository) GetCalendario(ctx context.Context, mes int, anio int) ([]entities.CalendarioItem, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT m.id, m.fecha_programada, m.tipo, m.estado, m.prioridad,
		       e.codigo_inventario, e.nombre AS equipo_nombre,
		       u.nombre_completo AS tecnico_nombre
		FROM mantenimientos m
			JOIN equipos e ON m.equipo_id = e.id
			LEFT JOIN usuarios u ON m.tecnico_id = u.id
		WHERE EXTRACT(MONTH FROM m.fecha_programada) = $1
		AND EXTRACT(YEAR FROM m.fecha_programada) = $2
		ORDER BY m.fecha_programada, m.prioridad DESC
	`, mes, anio)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.CalendarioItem
	for rows.Next() {
		var item entities.CalendarioItem
		if err := rows.Scan(&item.ID, &item.FechaProgramada, &item.Tipo, &item.Estado,
			&item.Prioridad, &item.CodigoInventario, &item.EquipoNombre, &item.TecnicoNombre); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *MantenimientoRepository) GetEstadisticas(ctx context.Context) (*entities.EstadisticasMantenimiento, error) {
	stats := &entities.EstadisticasMantenimiento{
		PorTipo:     []entities.ConteoPor{},
		PorEstado:   []entities.ConteoPor{},
		CostoPorMes: []entities.CostoMensual{},
	}

	if err := r.storage.QueryRow(ctx,
		"SELECT COUNT(*) FROM mantenimientos").Scan(&stats.Total); err != nil {
		return nil, err
	}

	porTipo, err := r.conteo(ctx, "SELECT tipo, COUNT(*) AS cantidad FROM mantenimientos GROUP BY tipo")
	if err != nil {
		return nil, err
	}
	stats.PorTipo = porTipo

	porEstado, err := r.conteo(ctx, "SELECT estado, COUNT(*) AS cantidad FROM mantenimientos GROUP BY estado")
	if err != nil {
		return nil, err
	}
	stats.PorEstado = porEstado

	if err := r.storage.QueryRow(ctx,
		"SELECT COALESCE(SUM(costo), 0) FROM mantenimientos WHERE costo IS NOT NULL").Scan(&stats.CostoTotal); err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, `
		SELECT TO_CHAR(fecha_realizada, 'YYYY-MM') AS mes,
		       SUM(costo) AS total_costo,
		       COUNT(*) AS cantidad
		FROM mantenimientos
		WHERE fecha_realizada >= CURRENT_DATE - INTERVAL '6 months'
		AND costo IS NOT NULL
		GROUP BY mes
		ORDER BY mes DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c entities.CostoMensual
		if err := rows.Scan(&c.Mes, &c.TotalCosto, &c.Cantidad); err != nil {
			return nil, err
		}
		stats.CostoPorMes = append(stats.CostoPorMes, c)
	}
	return stats, rows.Err()
}

func (r *MantenimientoRepository) conteo(ctx context.Context, query string) ([]entities.ConteoPor, error) {
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conteos := []entities.ConteoPor{}
	for rows.Next() {
		var c entities.ConteoPor
		if err := rows.Scan(&c.Clave, &c.Cantidad); err != nil {
			return nil, err
		}
		conteos = append(conteos, c)
	}
	return conteos, rows.Err()
}
