package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedProveedores(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Poblando la tabla 'proveedores'...")

	for _, p := range proveedoresData {
		_, err := db.Exec(ctx, `
			INSERT INTO proveedores (razon_social, ruc, direccion, telefono, email,
				contacto_nombre, contacto_telefono, sitio_web, calificacion, activo, notas)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10)
			ON CONFLICT (ruc) DO UPDATE SET razon_social = EXCLUDED.razon_social
		`, p.RazonSocial, p.RUC, p.Direccion, p.Telefono, p.Email,
			p.ContactoNombre, p.ContactoTelefono, p.SitioWeb, p.Calificacion, p.Notas)
		if err != nil {
			return fmt.Errorf("no se pudo insertar el proveedor '%s': %w", p.RazonSocial, err)
		}
	}
	return nil
}
