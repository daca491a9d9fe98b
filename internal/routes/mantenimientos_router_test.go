package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"ti-management/pkg/validation"
)

// MantenimientosSuite levanta el servicio de mantenimientos completo contra
// la base de pruebas y ejercita el flujo correctivo de punta a punta.
type MantenimientosSuite struct {
	suite.Suite
	echo *echo.Echo
	pool *pgxpool.Pool
}

func TestMantenimientosSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL no está definida")
	}
	suite.Run(t, new(MantenimientosSuite))
}

func (s *MantenimientosSuite) SetupSuite() {
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

	RegisterMantenimientosRoutes(e, pool, zap.NewNop())
	s.echo = e
}

func (s *MantenimientosSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *MantenimientosSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `
		TRUNCATE TABLE notificaciones, mantenimientos, movimientos_equipos, equipos,
			contratos, proveedores, ubicaciones, categorias_equipos, usuarios
		RESTART IDENTITY CASCADE
	`)
	s.Require().NoError(err)
}

func (s *MantenimientosSuite) seedEquipo(estado string) int64 {
	var categoriaID int64
	err := s.pool.QueryRow(context.Background(),
		"INSERT INTO categorias_equipos (nombre, vida_util_anos) VALUES ('Laptop', 5) RETURNING id").
		Scan(&categoriaID)
	s.Require().NoError(err)

	var equipoID int64
	err = s.pool.QueryRow(context.Background(), `
		INSERT INTO equipos (codigo_inventario, categoria_id, nombre, estado_operativo)
		VALUES ('INV-0001', $1, 'Dell Latitude', $2)
		RETURNING id
	`, categoriaID, estado).Scan(&equipoID)
	s.Require().NoError(err)
	return equipoID
}

func (s *MantenimientosSuite) estadoEquipo(id int64) string {
	var estado string
	err := s.pool.QueryRow(context.Background(),
		"SELECT estado_operativo FROM equipos WHERE id = $1", id).Scan(&estado)
	s.Require().NoError(err)
	return estado
}

func (s *MantenimientosSuite) request(metodo, path string, cuerpo interface{}) *httptest.ResponseRecorder {
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

func (s *MantenimientosSuite) TestCorrectivoDejaEquipoEnReparacion() {
	equipoID := s.seedEquipo("operativo")

	rec := s.request(http.MethodPost, "/mantenimientos", map[string]interface{}{
		"equipo_id":        equipoID,
		"tipo":             "correctivo",
		"fecha_programada": "2025-06-01",
		"descripcion":      "No enciende",
	})

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("en_reparacion", s.estadoEquipo(equipoID))
}

func (s *MantenimientosSuite) TestPreventivoNoTocaElEquipo() {
	equipoID := s.seedEquipo("operativo")

	rec := s.request(http.MethodPost, "/mantenimientos", map[string]interface{}{
		"equipo_id":        equipoID,
		"tipo":             "preventivo",
		"fecha_programada": "2025-06-01",
		"descripcion":      "Limpieza general",
	})

	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("operativo", s.estadoEquipo(equipoID))
}

func (s *MantenimientosSuite) TestCompletarCorrectivoRestauraElEquipo() {
	equipoID := s.seedEquipo("operativo")

	rec := s.request(http.MethodPost, "/mantenimientos", map[string]interface{}{
		"equipo_id":        equipoID,
		"tipo":             "correctivo",
		"fecha_programada": "2025-06-01",
		"descripcion":      "No enciende",
	})
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Require().Equal("en_reparacion", s.estadoEquipo(equipoID))

	var creado struct {
		Body struct {
			ID int64 `json:"id"`
		} `json:"body"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &creado))

	rec = s.request(http.MethodPut, fmt.Sprintf("/mantenimientos/%d", creado.Body.ID), map[string]interface{}{
		"estado":          "completado",
		"fecha_realizada": "2025-06-03",
		"costo":           120.5,
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("operativo", s.estadoEquipo(equipoID))
}

func (s *MantenimientosSuite) TestEquipoInexistente() {
	rec := s.request(http.MethodPost, "/mantenimientos", map[string]interface{}{
		"equipo_id":        9999,
		"tipo":             "correctivo",
		"fecha_programada": "2025-06-01",
		"descripcion":      "Fantasma",
	})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "El equipo con ID 9999 no existe")
}

func (s *MantenimientosSuite) TestActualizarInexistente() {
	rec := s.request(http.MethodPut, "/mantenimientos/9999", map[string]interface{}{
		"estado": "cancelado",
	})

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "Mantenimiento no encontrado")
}
