package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedEquipos(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Poblando la tabla 'equipos'...")

	categorias, err := mapIDsPorNombre(ctx, db, "SELECT id, nombre FROM categorias_equipos")
	if err != nil {
		return fmt.Errorf("no se pudieron cargar las categorías: %w", err)
	}
	ubicaciones, err := mapIDsPorNombre(ctx, db, "SELECT id, aula_oficina FROM ubicaciones")
	if err != nil {
		return fmt.Errorf("no se pudieron cargar las ubicaciones: %w", err)
	}

	var proveedorID *int64
	var pid int64
	if err := db.QueryRow(ctx, "SELECT id FROM proveedores ORDER BY id LIMIT 1").Scan(&pid); err == nil {
		proveedorID = &pid
	}

	hoy := time.Now()
	for _, e := range equiposData {
		categoriaID, ok := categorias[e.Categoria]
		if !ok {
			log.Printf("  ⚠ categoría '%s' no encontrada, se omite el equipo %s", e.Categoria, e.Codigo)
			continue
		}
		var ubicacionID *int64
		if id, ok := ubicaciones[e.Ubicacion]; ok {
			ubicacionID = &id
		}

		fechaCompra := hoy.AddDate(0, -e.MesesDesdeCompra, 0)
		fechaGarantia := fechaCompra.AddDate(0, e.GarantiaMeses, 0)

		_, err := db.Exec(ctx, `
			INSERT INTO equipos (codigo_inventario, categoria_id, nombre, marca, modelo,
				numero_serie, especificaciones, proveedor_id, fecha_compra, costo_compra,
				fecha_garantia_fin, ubicacion_actual_id, estado_operativo, estado_fisico, notas)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (codigo_inventario) DO NOTHING
		`, e.Codigo, categoriaID, e.Nombre, e.Marca, e.Modelo, e.NumeroSerie,
			[]byte(e.Especificaciones), proveedorID, fechaCompra, e.CostoCompra,
			fechaGarantia, ubicacionID, e.EstadoOperativo, e.EstadoFisico,
			fmt.Sprintf("Equipo adquirido en %s", fechaCompra.Format("2006-01-02")))
		if err != nil {
			return fmt.Errorf("no se pudo insertar el equipo '%s': %w", e.Codigo, err)
		}
	}
	return nil
}

func mapIDsPorNombre(ctx context.Context, db *pgxpool.Pool, query string) (map[string]int64, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]int64)
	for rows.Next() {
		var id int64
		var nombre string
		if err := rows.Scan(&id, &nombre); err != nil {
			return nil, err
		}
		m[nombre] = id
	}
	return m, rows.Err()
}
