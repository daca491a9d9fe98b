package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func seedUsuarios(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Poblando la tabla 'usuarios'...")

	for _, u := range usuariosData {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("no se pudo generar el hash de '%s': %w", u.Username, err)
		}

		_, err = db.Exec(ctx, `
			INSERT INTO usuarios (username, email, password_hash, rol, nombre_completo, activo)
			VALUES ($1, $2, $3, $4, $5, TRUE)
			ON CONFLICT (username) DO UPDATE SET nombre_completo = EXCLUDED.nombre_completo
		`, u.Username, u.Email, string(hash), u.Rol, u.NombreCompleto)
		if err != nil {
			return fmt.Errorf("no se pudo insertar el usuario '%s': %w", u.Username, err)
		}
	}
	return nil
}
