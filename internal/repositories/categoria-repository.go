package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/entities"
)

type CategoriaRepositoryInterface interface {
	GetCategorias(ctx context.Context) ([]entities.Categoria, error)
	ExisteCategoria(ctx context.Context, id int64) (bool, error)
}

type CategoriaRepository struct {
	storage *pgxpool.Pool
}

func NewCategoriaRepository(storage *pgxpool.Pool) CategoriaRepositoryInterface {
	return &CategoriaRepository{storage: storage}
}

func (r *CategoriaRepository) GetCategorias(ctx context.Context) ([]entities.Categoria, error) {
	rows, err := r.storage.Query(ctx,
		"SELECT id, nombre, descripcion, vida_util_anos FROM categorias_equipos ORDER BY nombre")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categorias []entities.Categoria
	for rows.Next() {
		var c entities.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Descripcion, &c.VidaUtilAnos); err != nil {
			return nil, err
		}
		categorias = append(categorias, c)
	}
	return categorias, rows.Err()
}

func (r *CategoriaRepository) ExisteCategoria(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.storage.QueryRow(ctx, "SELECT id FROM categorias_equipos WHERE id = $1", id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
