package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedUbicaciones(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Poblando la tabla 'ubicaciones'...")

	for _, u := range ubicacionesData {
		var existe bool
		err := db.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM ubicaciones WHERE edificio = $1 AND aula_oficina = $2)
		`, u.Edificio, u.AulaOficina).Scan(&existe)
		if err != nil {
			return err
		}
		if existe {
			continue
		}

		_, err = db.Exec(ctx, `
			INSERT INTO ubicaciones (edificio, piso, aula_oficina, descripcion, activo)
			VALUES ($1, $2, $3, $4, TRUE)
		`, u.Edificio, u.Piso, u.AulaOficina, u.Descripcion)
		if err != nil {
			return fmt.Errorf("no se pudo insertar la ubicación '%s - %s': %w", u.Edificio, u.AulaOficina, err)
		}
	}
	return nil
}
