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

const equipoTable = "equipos"

const equipoFields = `e.id, e.codigo_inventario, e.categoria_id, e.nombre, e.marca, e.modelo,
	e.numero_serie, e.especificaciones, e.proveedor_id, e.fecha_compra, e.costo_compra,
	e.fecha_garantia_fin, e.ubicacion_actual_id, e.estado_operativo, e.estado_fisico,
	e.asignado_a_id, e.notas, e.imagen_url, e.fecha_registro`

// equipoFilterMap es el allow-list de filtros del listado. Cualquier otra
// clave del query string se ignora.
var equipoFilterMap = map[string]string{
	"categoria": "c.nombre",
	"estado":    "e.estado_operativo",
	"ubicacion": "e.ubicacion_actual_id",
}

type EquipoRepositoryInterface interface {
	GetEquipos(ctx context.Context, params types.ListParams) ([]entities.Equipo, error)
	FindEquipo(ctx context.Context, id int64) (*entities.Equipo, error)
	CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (int64, error)
	UpdateEquipo(ctx context.Context, id int64, payload dto.UpdateEquipoDTO) error
	DeleteEquipo(ctx context.Context, id int64) error
	UpdateEstadoOperativo(ctx context.Context, id int64, estado string) error
	UpdateUbicacion(ctx context.Context, id int64, ubicacionID int64) error
	GetUbicacionActual(ctx context.Context, id int64) (*int64, error)
	ExisteEquipo(ctx context.Context, id int64) (bool, error)
}

type EquipoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipoRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipoRepositoryInterface {
	return &EquipoRepository{storage: storage, logger: logger}
}

func scanEquipo(row pgx.Row, e *entities.Equipo, extras ...interface{}) error {
	dest := []interface{}{
		&e.ID, &e.CodigoInventario, &e.CategoriaID, &e.Nombre, &e.Marca, &e.Modelo,
		&e.NumeroSerie, &e.Especificaciones, &e.ProveedorID, &e.FechaCompra, &e.CostoCompra,
		&e.FechaGarantiaFin, &e.UbicacionActualID, &e.EstadoOperativo, &e.EstadoFisico,
		&e.AsignadoAID, &e.Notas, &e.ImagenURL, &e.FechaRegistro,
	}
	dest = append(dest, extras...)
	return row.Scan(dest...)
}

func (r *EquipoRepository) GetEquipos(ctx context.Context, params types.ListParams) ([]entities.Equipo, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.Select(equipoFields,
		"c.nombre AS categoria_nombre",
		"u.edificio || ' - ' || u.aula_oficina AS ubicacion_nombre",
		"p.razon_social AS proveedor_nombre").
		From(equipoTable + " e").
		LeftJoin("categorias_equipos c ON e.categoria_id = c.id").
		LeftJoin("ubicaciones u ON e.ubicacion_actual_id = u.id").
		LeftJoin("proveedores p ON e.proveedor_id = p.id").
		OrderBy("e.fecha_registro DESC")

	for key, value := range params.Filter {
		if column, ok := equipoFilterMap[key]; ok {
			builder = builder.Where(sq.Eq{column: value})
		}
	}
	if params.Limit > 0 {
		builder = builder.Limit(params.Limit).Offset(params.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la consulta de equipos: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var equipos []entities.Equipo
	for rows.Next() {
		var e entities.Equipo
		if err := scanEquipo(rows, &e, &e.CategoriaNombre, &e.UbicacionNombre, &e.ProveedorNombre); err != nil {
			return nil, fmt.Errorf("error escaneando equipo: %w", err)
		}
		equipos = append(equipos, e)
	}
	return equipos, rows.Err()
}

func (r *EquipoRepository) FindEquipo(ctx context.Context, id int64) (*entities.Equipo, error) {
	query := fmt.Sprintf(`
		SELECT %s,
		       c.nombre AS categoria_nombre,
		       u.edificio || ' - ' || u.aula_oficina AS ubicacion_nombre,
		       p.razon_social AS proveedor_nombre,
		       usr.nombre_completo AS asignado_a_nombre
		FROM %s e
			LEFT JOIN categorias_equipos c ON e.categoria_id = c.id
			LEFT JOIN ubicaciones u ON e.ubicacion_actual_id = u.id
			LEFT JOIN proveedores p ON e.proveedor_id = p.id
			LEFT JOIN usuarios usr ON e.asignado_a_id = usr.id
		WHERE e.id = $1
	`, equipoFields, equipoTable)

	var e entities.Equipo
	err := scanEquipo(r.storage.QueryRow(ctx, query, id), &e,
		&e.CategoriaNombre, &e.UbicacionNombre, &e.ProveedorNombre, &e.AsignadoANombre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EquipoRepository) CreateEquipo(ctx context.Context, payload dto.CreateEquipoDTO) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			codigo_inventario, categoria_id, nombre, marca, modelo, numero_serie,
			especificaciones, proveedor_id, fecha_compra, costo_compra,
			fecha_garantia_fin, ubicacion_actual_id, estado_operativo, estado_fisico,
			asignado_a_id, notas, imagen_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`, equipoTable)

	var especificaciones interface{}
	if len(payload.Especificaciones) > 0 {
		especificaciones = []byte(payload.Especificaciones)
	}

	var id int64
	err := r.storage.QueryRow(ctx, query,
		payload.CodigoInventario,
		payload.CategoriaID,
		payload.Nombre,
		payload.Marca,
		payload.Modelo,
		payload.NumeroSerie,
		especificaciones,
		payload.ProveedorID,
		payload.FechaCompra,
		payload.CostoCompra,
		payload.FechaGarantiaFin,
		payload.UbicacionActualID,
		payload.EstadoOperativo,
		payload.EstadoFisico,
		payload.AsignadoAID,
		payload.Notas,
		payload.ImagenURL,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.FromPgError(err)
	}
	return id, nil
}

func (r *EquipoRepository) UpdateEquipo(ctx context.Context, id int64, payload dto.UpdateEquipoDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(equipoTable)

	if payload.Nombre != nil {
		builder = builder.Set("nombre", *payload.Nombre)
	}
	if payload.Marca != nil {
		builder = builder.Set("marca", *payload.Marca)
	}
	if payload.Modelo != nil {
		builder = builder.Set("modelo", *payload.Modelo)
	}
	if len(payload.Especificaciones) > 0 {
		builder = builder.Set("especificaciones", []byte(payload.Especificaciones))
	}
	if payload.UbicacionActualID != nil {
		builder = builder.Set("ubicacion_actual_id", *payload.UbicacionActualID)
	}
	if payload.EstadoOperativo != nil {
		builder = builder.Set("estado_operativo", *payload.EstadoOperativo)
	}
	if payload.EstadoFisico != nil {
		builder = builder.Set("estado_fisico", *payload.EstadoFisico)
	}
	if payload.AsignadoAID != nil {
		builder = builder.Set("asignado_a_id", *payload.AsignadoAID)
	}
	if payload.Notas != nil {
		builder = builder.Set("notas", *payload.Notas)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		// squirrel devuelve error cuando no hay SET alguno
		return apperrors.ErrNoFieldsToUpdate
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.FromPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipoRepository) DeleteEquipo(ctx context.Context, id int64) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipoTable), id)
	if err != nil {
		return apperrors.FromPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipoRepository) UpdateEstadoOperativo(ctx context.Context, id int64, estado string) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET estado_operativo = $1 WHERE id = $2", equipoTable), estado, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipoRepository) UpdateUbicacion(ctx context.Context, id int64, ubicacionID int64) error {
	result, err := r.storage.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET ubicacion_actual_id = $1 WHERE id = $2", equipoTable), ubicacionID, id)
	if err != nil {
		return apperrors.FromPgError(err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipoRepository) GetUbicacionActual(ctx context.Context, id int64) (*int64, error) {
	var ubicacionID *int64
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT ubicacion_actual_id FROM %s WHERE id = $1", equipoTable), id).Scan(&ubicacionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ubicacionID, nil
}

func (r *EquipoRepository) ExisteEquipo(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE id = $1", equipoTable), id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
