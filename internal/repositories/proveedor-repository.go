package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/pkg/apperrors"
)

const proveedorTable = "proveedores"

const proveedorFields = `id, razon_social, ruc, direccion, telefono, email,
	contacto_nombre, contacto_telefono, sitio_web, calificacion, activo, notas, fecha_registro`

type ProveedorRepositoryInterface interface {
	GetProveedores(ctx context.Context, activo *bool) ([]entities.Proveedor, error)
	FindProveedor(ctx context.Context, id int64) (*entities.Proveedor, error)
	CreateProveedor(ctx context.Context, payload dto.CreateProveedorDTO) (int64, error)
	UpdateProveedor(ctx context.Context, id int64, payload dto.UpdateProveedorDTO) error
	GetEstadisticasCompras(ctx context.Context, id int64) (*entities.EstadisticasCompras, error)
	ExisteProveedor(ctx context.Context, id int64) (bool, error)
}

type ProveedorRepository struct {
	storage *pgxpool.Pool
}

func NewProveedorRepository(storage *pgxpool.Pool) ProveedorRepositoryInterface {
	return &ProveedorRepository{storage: storage}
}

func scanProveedor(row pgx.Row, p *entities.Proveedor) error {
	return row.Scan(&p.ID, &p.RazonSocial, &p.RUC, &p.Direccion, &p.Telefono, &p.Email,
		&p.ContactoNombre, &p.ContactoTelefono, &p.SitioWeb, &p.Calificacion,
		&p.Activo, &p.Notas, &p.FechaRegistro)
}

func (r *ProveedorRepository) GetProveedores(ctx context.Context, activo *bool) ([]entities.Proveedor, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", proveedorFields, proveedorTable)
	var args []interface{}
	if activo != nil {
		query += " WHERE activo = $1"
		args = append(args, *activo)
	}
	query += " ORDER BY razon_social"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var proveedores []entities.Proveedor
	for rows.Next() {
		var p entities.Proveedor
		if err := scanProveedor(rows, &p); err != nil {
			return nil, err
		}
		proveedores = append(proveedores, p)
	}
	return proveedores, rows.Err()
}

func (r *ProveedorRepository) FindProveedor(ctx context.Context, id int64) (*entities.Proveedor, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", proveedorFields, proveedorTable)

	var p entities.Proveedor
	err := scanProveedor(r.storage.QueryRow(ctx, query, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProveedorRepository) CreateProveedor(ctx context.Context, payload dto.CreateProveedorDTO) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			razon_social, ruc, direccion, telefono, email,
			contacto_nombre, contacto_telefono, sitio_web, notas
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, proveedorTable)

	var id int64
	err := r.storage.QueryRow(ctx, query,
		payload.RazonSocial,
		payload.RUC,
		payload.Direccion,
		payload.Telefono,
		payload.Email,
		payload.ContactoNombre,
		payload.ContactoTelefono,
		payload.SitioWeb,
		payload.Notas,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.FromPgError(err)
	}
	return id, nil
}

func (r *ProveedorRepository) UpdateProveedor(ctx context.Context, id int64, payload dto.UpdateProveedorDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(proveedorTable)

	if payload.RazonSocial != nil {
		builder = builder.Set("razon_social", *payload.RazonSocial)
	}
	if payload.Direccion != nil {
		builder = builder.Set("direccion", *payload.Direccion)
	}
	if payload.Telefono != nil {
		builder = builder.Set("telefono", *payload.Telefono)
	}
	if payload.Email != nil {
		builder = builder.Set("email", *payload.Email)
	}
	if payload.ContactoNombre != nil {
		builder = builder.Set("contacto_nombre", *payload.ContactoNombre)
	}
	if payload.ContactoTelefono != nil {
		builder = builder.Set("contacto_telefono", *payload.ContactoTelefono)
	}
	if payload.SitioWeb != nil {
		builder = builder.Set("sitio_web", *payload.SitioWeb)
	}
	if payload.Calificacion != nil {
		builder = builder.Set("calificacion", *payload.Calificacion)
	}
	if payload.Activo != nil {
		builder = builder.Set("activo", *payload.Activo)
	}
	if payload.Notas != nil {
		builder = builder.Set("notas", *payload.Notas)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
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

// GetEstadisticasCompras agrega cuántos equipos se compraron al proveedor y
// por qué monto.
func (r *ProveedorRepository) GetEstadisticasCompras(ctx context.Context, id int64) (*entities.EstadisticasCompras, error) {
	var stats entities.EstadisticasCompras
	err := r.storage.QueryRow(ctx, `
		SELECT COUNT(*) AS total,
		       COALESCE(SUM(costo_compra), 0) AS total_comprado
		FROM equipos
		WHERE proveedor_id = $1
	`, id).Scan(&stats.Total, &stats.TotalComprado)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ProveedorRepository) ExisteProveedor(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.storage.QueryRow(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE id = $1", proveedorTable), id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
