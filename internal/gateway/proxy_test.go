package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ti-management/pkg/config"
)

// backendFalso responde con JSON y registra el último path recibido.
type backendFalso struct {
	servidor   *httptest.Server
	ultimoPath string
	ultimoRaw  string
}

func nuevoBackendFalso() *backendFalso {
	b := &backendFalso{}
	b.servidor = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.ultimoPath = r.URL.Path
		b.ultimoRaw = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": true}`))
	}))
	return b
}

func montarGateway(t *testing.T, backends config.BackendsConfig) *echo.Echo {
	t.Helper()
	e := echo.New()
	gw := New(backends, zap.NewNop())
	require.NoError(t, gw.Register(e))
	return e
}

func TestGateway_EnrutamientoPorPrefijo(t *testing.T) {
	equipos := nuevoBackendFalso()
	defer equipos.servidor.Close()
	proveedores := nuevoBackendFalso()
	defer proveedores.servidor.Close()
	mantenimiento := nuevoBackendFalso()
	defer mantenimiento.servidor.Close()
	reportes := nuevoBackendFalso()
	defer reportes.servidor.Close()
	agente := nuevoBackendFalso()
	defer agente.servidor.Close()

	e := montarGateway(t, config.BackendsConfig{
		Equipos:       equipos.servidor.URL,
		Proveedores:   proveedores.servidor.URL,
		Mantenimiento: mantenimiento.servidor.URL,
		Reportes:      reportes.servidor.URL,
		Agente:        agente.servidor.URL,
	})

	casos := []struct {
		metodo       string
		path         string
		backend      *backendFalso
		pathEsperado string
	}{
		{http.MethodGet, "/api/equipos", equipos, "/equipos"},
		{http.MethodGet, "/api/equipos/5", equipos, "/equipos/5"},
		{http.MethodGet, "/api/categorias", equipos, "/categorias"},
		{http.MethodGet, "/api/ubicaciones", equipos, "/ubicaciones"},
		{http.MethodPost, "/api/movimientos", equipos, "/movimientos"},
		{http.MethodPost, "/api/auth/login", equipos, "/auth/login"},
		{http.MethodGet, "/api/proveedores/3", proveedores, "/proveedores/3"},
		{http.MethodGet, "/api/contratos", proveedores, "/contratos"},
		{http.MethodGet, "/api/mantenimientos/calendario", mantenimiento, "/mantenimientos/calendario"},
		{http.MethodGet, "/api/reportes/dashboard", reportes, "/dashboard"},
		{http.MethodPost, "/api/agents/run-all-agents", agente, "/run-all-agents"},
		{http.MethodGet, "/api/agents/notificaciones", agente, "/notificaciones"},
	}

	for _, c := range casos {
		t.Run(c.metodo+" "+c.path, func(t *testing.T) {
			req := httptest.NewRequest(c.metodo, c.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, c.pathEsperado, c.backend.ultimoPath)
		})
	}
}

func TestGateway_ConservaQueryString(t *testing.T) {
	equipos := nuevoBackendFalso()
	defer equipos.servidor.Close()

	e := montarGateway(t, config.BackendsConfig{
		Equipos:       equipos.servidor.URL,
		Proveedores:   equipos.servidor.URL,
		Mantenimiento: equipos.servidor.URL,
		Reportes:      equipos.servidor.URL,
		Agente:        equipos.servidor.URL,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/equipos?estado=operativo&limit=10", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/equipos", equipos.ultimoPath)
	assert.Equal(t, "estado=operativo&limit=10", equipos.ultimoRaw)
}

func TestGateway_BackendCaido(t *testing.T) {
	caido := nuevoBackendFalso()
	url := caido.servidor.URL
	caido.servidor.Close()

	e := montarGateway(t, config.BackendsConfig{
		Equipos:       url,
		Proveedores:   url,
		Mantenimiento: url,
		Reportes:      url,
		Agente:        url,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/equipos", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error conectando con el servicio de equipos")
}

func TestGateway_Salud(t *testing.T) {
	e := montarGateway(t, config.BackendsConfig{
		Equipos:       "http://localhost:1",
		Proveedores:   "http://localhost:1",
		Mantenimiento: "http://localhost:1",
		Reportes:      "http://localhost:1",
		Agente:        "http://localhost:1",
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "api-gateway")
}
