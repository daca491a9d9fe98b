package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/pkg/apperrors"
)

const contratoTable = "contratos"

type ContratoRepositoryInterface interface {
	GetContratos(ctx context.Context, proveedorID *int64) ([]entities.Contrato, error)
	GetContratosPorProveedor(ctx context.Context, proveedorID int64) ([]entities.Contrato, error)
	CreateContrato(ctx context.Context, payload dto.CreateContratoDTO, estado string) (int64, error)
}

type ContratoRepository struct {
	storage *pgxpool.Pool
}

func NewContratoRepository(storage *pgxpool.Pool) ContratoRepositoryInterface {
	return &ContratoRepository{storage: storage}
}

func (r *ContratoRepository) GetContratos(ctx context.Context, proveedorID *int64) ([]entities.Contrato, error) {
	query := `
		SELECT c.id, c.proveedor_id, c.numero_contrato, c.tipo, c.fecha_inicio, c.fecha_fin,
		       c.monto_total, c.estado, c.descripcion,
		       p.razon_social AS proveedor_nombre
		FROM contratos c
			JOIN proveedores p ON c.proveedor_id = p.id
	`
	var args []interface{}
	if proveedorID != nil {
		query += " WHERE c.proveedor_id = $1"
		args = append(args, *proveedorID)
	}
	query += " ORDER BY c.fecha_inicio DESC"

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contratos []entities.Contrato
	for rows.Next() {
		var c entities.Contrato
		if err := rows.Scan(&c.ID, &c.ProveedorID, &c.NumeroContrato, &c.Tipo, &c.FechaInicio,
			&c.FechaFin, &c.MontoTotal, &c.Estado, &c.Descripcion, &c.ProveedorNombre); err != nil {
			return nil, err
		}
		contratos = append(contratos, c)
	}
	return contratos, rows.Err()
}

func (r *ContratoRepository) GetContratosPorProveedor(ctx context.Context, proveedorID int64) ([]entities.Contrato, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, proveedor_id, numero_contrato, tipo, fecha_inicio, fecha_fin,
		       monto_total, estado, descripcion
		FROM contratos
		WHERE proveedor_id = $1
		ORDER BY fecha_inicio DESC
	`, proveedorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contratos []entities.Contrato
	for rows.Next() {
		var c entities.Contrato
		if err := rows.Scan(&c.ID, &c.ProveedorID, &c.NumeroContrato, &c.Tipo, &c.FechaInicio,
			&c.FechaFin, &c.MontoTotal, &c.Estado, &c.Descripcion); err != nil {
			return nil, err
		}
		contratos = append(contratos, c)
	}
	return contratos, rows.Err()
}

// CreateContrato inserta el contrato con el estado ya calculado a partir de
// fecha_fin.
func (r *ContratoRepository) CreateContrato(ctx context.Context, payload dto.CreateContratoDTO, estado string) (int64, error) {
	var id int64
	err := r.storage.QueryRow(ctx, `
		INSERT INTO contratos (
			proveedor_id, numero_contrato, tipo, fecha_inicio, fecha_fin,
			monto_total, estado, descripcion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`,
		payload.ProveedorID,
		payload.NumeroContrato,
		payload.Tipo,
		payload.FechaInicio,
		payload.FechaFin,
		payload.MontoTotal,
		estado,
		payload.Descripcion,
	).Scan(&id)
	if err != nil {
		return 0, apperrors.FromPgError(err)
	}
	return id, nil
}
