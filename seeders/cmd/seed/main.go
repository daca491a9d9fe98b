package main

import (
	"context"
	"flag"
	"log"

	"ti-management/pkg/config"
	"ti-management/pkg/database/postgresql"
	"ti-management/seeders"
)

func main() {
	runBase := flag.Bool("base", false, "Poblar usuarios, ubicaciones y proveedores")
	runInventario := flag.Bool("inventario", false, "Poblar equipos de demostración")
	runAll := flag.Bool("all", false, "Ejecutar todos los seeders (equivale a -base -inventario)")
	flag.Parse()

	if !*runBase && !*runInventario && !*runAll {
		log.Println("No se seleccionó ningún seeder.")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Ejemplos:")
		log.Println("  go run ./seeders/cmd/seed -base")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	log.Println("DSN en uso:", cfg.Postgres.DSN)

	pool, err := postgresql.Connect(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("no se pudo conectar a PostgreSQL: %v", err)
	}
	defer pool.Close()

	if *runAll || *runBase {
		seeders.SeedBase(pool)
	}
	if *runAll || *runInventario {
		// El inventario referencia usuarios, ubicaciones y proveedores.
		seeders.SeedInventario(pool)
	}

	log.Println("✔ Seeding finalizado")
}
