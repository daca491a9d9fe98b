package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/dto"
	"ti-management/internal/entities"
	"ti-management/pkg/apperrors"
)

const movimientoTable = "movimientos_equipos"

type MovimientoRepositoryInterface interface {
	GetHistorial(ctx context.Context, equipoID int64) ([]entities.Movimiento, error)
	CreateMovimiento(ctx context.Context, origenID *int64, payload dto.CreateMovimientoDTO) error
}

type MovimientoRepository struct {
	storage *pgxpool.Pool
}

func NewMovimientoRepository(storage *pgxpool.Pool) MovimientoRepositoryInterface {
	return &MovimientoRepository{storage: storage}
}

// GetHistorial devuelve los movimientos de un equipo, del más reciente al
// más antiguo.
func (r *MovimientoRepository) GetHistorial(ctx context.Context, equipoID int64) ([]entities.Movimiento, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT m.id, m.equipo_id, m.ubicacion_origen_id, m.ubicacion_destino_id,
		       m.usuario_responsable_id, m.fecha_movimiento, m.motivo, m.observaciones,
		       uo.edificio || ' - ' || uo.aula_oficina AS origen,
		       ud.edificio || ' - ' || ud.aula_oficina AS destino,
		       u.nombre_completo AS responsable
		FROM movimientos_equipos m
			LEFT JOIN ubicaciones uo ON m.ubicacion_origen_id = uo.id
			LEFT JOIN ubicaciones ud ON m.ubicacion_destino_id = ud.id
			LEFT JOIN usuarios u ON m.usuario_responsable_id = u.id
		WHERE m.equipo_id = $1
		ORDER BY m.fecha_movimiento DESC
	`, equipoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movimientos []entities.Movimiento
	for rows.Next() {
		var m entities.Movimiento
		if err := rows.Scan(&m.ID, &m.EquipoID, &m.UbicacionOrigenID, &m.UbicacionDestinoID,
			&m.UsuarioResponsableID, &m.FechaMovimiento, &m.Motivo, &m.Observaciones,
			&m.Origen, &m.Destino, &m.Responsable); err != nil {
			return nil, err
		}
		movimientos = append(movimientos, m)
	}
	return movimientos, rows.Err()
}

func (r *MovimientoRepository) CreateMovimiento(ctx context.Context, origenID *int64, payload dto.CreateMovimientoDTO) error {
	_, err := r.storage.Exec(ctx, `
		INSERT INTO movimientos_equipos
			(equipo_id, ubicacion_origen_id, ubicacion_destino_id, usuario_responsable_id, motivo, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		payload.EquipoID,
		origenID,
		payload.UbicacionDestinoID,
		payload.UsuarioResponsableID,
		payload.Motivo,
		payload.Observaciones,
	)
	if err != nil {
		return apperrors.FromPgError(err)
	}
	return nil
}
