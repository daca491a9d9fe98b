package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"ti-management/migrations"
	"ti-management/pkg/config"
)

func main() {
	command := flag.String("command", "up", "comando de goose: up, down, status, version")
	flag.Parse()

	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("no se pudo abrir la conexión a PostgreSQL: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("dialecto inválido: %v", err)
	}

	if err := goose.RunContext(context.Background(), *command, db, "."); err != nil {
		log.Fatalf("goose %s: %v", *command, err)
	}
	log.Printf("goose %s completado", *command)
}
