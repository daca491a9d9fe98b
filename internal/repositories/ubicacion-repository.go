package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/entities"
)

type UbicacionRepositoryInterface interface {
	GetUbicaciones(ctx context.Context) ([]entities.Ubicacion, error)
	ExisteUbicacionActiva(ctx context.Context, id int64) (bool, error)
}

type UbicacionRepository struct {
	storage *pgxpool.Pool
}

func NewUbicacionRepository(storage *pgxpool.Pool) UbicacionRepositoryInterface {
	return &UbicacionRepository{storage: storage}
}

// GetUbicaciones devuelve sólo las ubicaciones activas.
func (r *UbicacionRepository) GetUbicaciones(ctx context.Context) ([]entities.Ubicacion, error) {
	rows, err := r.storage.Query(ctx, `
		SELECT id, edificio, piso, aula_oficina, descripcion, responsable_id, activo,
		       edificio || ' - ' || aula_oficina AS nombre_completo
		FROM ubicaciones
		WHERE activo = TRUE
		ORDER BY edificio, aula_oficina
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ubicaciones []entities.Ubicacion
	for rows.Next() {
		var u entities.Ubicacion
		if err := rows.Scan(&u.ID, &u.Edificio, &u.Piso, &u.AulaOficina, &u.Descripcion,
			&u.ResponsableID, &u.Activo, &u.NombreCompleto); err != nil {
			return nil, err
		}
		ubicaciones = append(ubicaciones, u)
	}
	return ubicaciones, rows.Err()
}

func (r *UbicacionRepository) ExisteUbicacionActiva(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.storage.QueryRow(ctx,
		"SELECT id FROM ubicaciones WHERE id = $1 AND activo = TRUE", id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
