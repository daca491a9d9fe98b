package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"ti-management/pkg/token"
	"ti-management/pkg/validation"
)

// EquiposSuite levanta el servicio de equipos completo contra la base de
// pruebas.
type EquiposSuite struct {
	suite.Suite
	echo *echo.Echo
	pool *pgxpool.Pool
}

func TestEquiposSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL no está definida")
	}
	suite.Run(t, new(EquiposSuite))
}

func (s *EquiposSuite) SetupSuite() {
	pool, err := pgxpool.New(context.Background(), os.Getenv("TEST_DATABASE_URL"))
	s.Require().NoError(err)
	s.pool = pool

	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	s.Require().NoError(err)
	_, err = pool.Exec(context.Background(), string(schema))
	s.Require().NoError(err)

	e := echo.New()
	v, err := validation.New()
	s.Require().NoError(err)
	e.Validator = v

	jwtSvc := token.NewJWTService("secreto-de-pruebas", time.Hour, time.Hour)
	RegisterEquiposRoutes(e, pool, jwtSvc, zap.NewNop())
	s.echo = e
}

func (s *EquiposSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *EquiposSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `
		TRUNCATE TABLE notificaciones, mantenimientos, movimientos_equipos, equipos,
			contratos, proveedores, ubicaciones, categorias_equipos, usuarios
		RESTART IDENTITY CASCADE
	`)
	s.Require().NoError(err)
}

func (s *EquiposSuite) seedCategoria(nombre string) int64 {
	var id int64
	err := s.pool.QueryRow(context.Background(),
		"INSERT INTO categorias_equipos (nombre, vida_util_anos) VALUES ($1, 5) RETURNING id",
		nombre).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *EquiposSuite) contarEquipos() int {
	var total int
	err := s.pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM equipos").Scan(&total)
	s.Require().NoError(err)
	return total
}

func (s *EquiposSuite) request(metodo, path string, cuerpo interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if cuerpo != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(cuerpo))
	}
	req := httptest.NewRequest(metodo, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *EquiposSuite) TestCrearEquipo() {
	categoriaID := s.seedCategoria("Laptop")

	rec := s.request(http.MethodPost, "/equipos", map[string]interface{}{
		"codigo_inventario": "INV-LAP-0001",
		"categoria_id":      categoriaID,
		"nombre":            "Dell Latitude 5520",
	})

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal(1, s.contarEquipos())
}

func (s *EquiposSuite) TestCategoriaInexistente() {
	rec := s.request(http.MethodPost, "/equipos", map[string]interface{}{
		"codigo_inventario": "INV-LAP-0001",
		"categoria_id":      9999,
		"nombre":            "Dell Latitude 5520",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "La categoría con ID 9999 no existe")
	s.Equal(0, s.contarEquipos())
}
