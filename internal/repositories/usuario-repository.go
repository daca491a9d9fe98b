package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ti-management/internal/entities"
	"ti-management/pkg/apperrors"
)

const usuarioFields = `id, username, email, password_hash, rol, nombre_completo, activo, telefono, fecha_registro`

type UsuarioRepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*entities.Usuario, error)
	FindUsuario(ctx context.Context, id int64) (*entities.Usuario, error)
	ExisteTecnico(ctx context.Context, id int64) (bool, error)
}

type UsuarioRepository struct {
	storage *pgxpool.Pool
}

func NewUsuarioRepository(storage *pgxpool.Pool) UsuarioRepositoryInterface {
	return &UsuarioRepository{storage: storage}
}

func scanUsuario(row pgx.Row) (*entities.Usuario, error) {
	var u entities.Usuario
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Rol,
		&u.NombreCompleto, &u.Activo, &u.Telefono, &u.FechaRegistro)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) FindByUsername(ctx context.Context, username string) (*entities.Usuario, error) {
	return scanUsuario(r.storage.QueryRow(ctx,
		"SELECT "+usuarioFields+" FROM usuarios WHERE username = $1", username))
}

func (r *UsuarioRepository) FindUsuario(ctx context.Context, id int64) (*entities.Usuario, error) {
	return scanUsuario(r.storage.QueryRow(ctx,
		"SELECT "+usuarioFields+" FROM usuarios WHERE id = $1", id))
}

// ExisteTecnico verifica que el usuario exista y tenga rol de técnico.
func (r *UsuarioRepository) ExisteTecnico(ctx context.Context, id int64) (bool, error) {
	var found int64
	err := r.storage.QueryRow(ctx,
		"SELECT id FROM usuarios WHERE id = $1 AND rol = 'tecnico'", id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
