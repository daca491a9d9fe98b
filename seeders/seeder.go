package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedBase crea los usuarios, ubicaciones y proveedores de arranque.
func SeedBase(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶ Poblando datos base...")

	if err := seedUsuarios(ctx, db); err != nil {
		log.Fatalf("❌ Error poblando usuarios: %v", err)
	}
	if err := seedUbicaciones(ctx, db); err != nil {
		log.Fatalf("❌ Error poblando ubicaciones: %v", err)
	}
	if err := seedProveedores(ctx, db); err != nil {
		log.Fatalf("❌ Error poblando proveedores: %v", err)
	}
	log.Println("✔ Datos base completados")
}

// SeedInventario inserta equipos de demostración. Requiere que los datos base
// y las categorías (migración 00002) ya existan.
func SeedInventario(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶ Poblando inventario de demostración...")

	if err := seedEquipos(ctx, db); err != nil {
		log.Fatalf("❌ Error poblando equipos: %v", err)
	}
	log.Println("✔ Inventario de demostración completado")
}
