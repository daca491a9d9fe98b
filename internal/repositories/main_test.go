package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// TestMain conecta con la base de pruebas cuando TEST_DATABASE_URL está
// definida. Sin ella los tests de integración se saltan.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("no se pudo conectar a la BD de pruebas: %v", err)
	}
	applySchema(testPool)

	code := m.Run()
	testPool.Close()
	os.Exit(code)
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("no se pudo leer schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("no se pudo aplicar el esquema: %v", err)
	}
}

// requirePool salta el test si no hay BD y deja las tablas limpias.
func requirePool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL no está definida")
	}
	_, err := testPool.Exec(context.Background(), `
		TRUNCATE TABLE notificaciones, mantenimientos, movimientos_equipos, equipos,
			contratos, proveedores, ubicaciones, categorias_equipos, usuarios
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err, "no se pudieron limpiar las tablas")
}

func seedCategoria(t *testing.T, nombre string, vidaUtil int) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(),
		"INSERT INTO categorias_equipos (nombre, vida_util_anos) VALUES ($1, $2) RETURNING id",
		nombre, vidaUtil).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedUbicacion(t *testing.T, edificio, aula string) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(),
		"INSERT INTO ubicaciones (edificio, piso, aula_oficina) VALUES ($1, '1', $2) RETURNING id",
		edificio, aula).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedUsuario(t *testing.T, username, rol string) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO usuarios (username, email, password_hash, rol, nombre_completo)
		VALUES ($1, $1 || '@universidad.edu', 'x', $2, $1)
		RETURNING id
	`, username, rol).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedProveedor(t *testing.T, ruc string) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(),
		"INSERT INTO proveedores (razon_social, ruc) VALUES ('Proveedor ' || $1, $1) RETURNING id",
		ruc).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedEquipo(t *testing.T, codigo string, categoriaID int64, estado string) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(context.Background(), `
		INSERT INTO equipos (codigo_inventario, categoria_id, nombre, estado_operativo)
		VALUES ($1, $2, 'Equipo ' || $1, $3)
		RETURNING id
	`, codigo, categoriaID, estado).Scan(&id)
	require.NoError(t, err)
	return id
}

func fechaISO(t time.Time) string { return t.Format("2006-01-02") }
