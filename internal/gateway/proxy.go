package gateway

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"ti-management/pkg/api"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/config"
)

// Gateway es el punto de entrada único del sistema. Enruta por prefijo de
// path hacia el microservicio correspondiente y no guarda ningún estado.
type Gateway struct {
	backends config.BackendsConfig
	logger   *zap.Logger
}

func New(backends config.BackendsConfig, logger *zap.Logger) *Gateway {
	return &Gateway{backends: backends, logger: logger}
}

// Register monta los proxies en el router. Los servicios de equipos,
// proveedores y mantenimientos conservan el prefijo del recurso (solo se
// quita /api); reportes y agentes exponen sus rutas en la raíz, así que se
// quita el prefijo completo.
func (gw *Gateway) Register(e *echo.Echo) error {
	equipos, err := url.Parse(gw.backends.Equipos)
	if err != nil {
		return fmt.Errorf("URL de equipos inválida: %w", err)
	}
	proveedores, err := url.Parse(gw.backends.Proveedores)
	if err != nil {
		return fmt.Errorf("URL de proveedores inválida: %w", err)
	}
	mantenimiento, err := url.Parse(gw.backends.Mantenimiento)
	if err != nil {
		return fmt.Errorf("URL de mantenimiento inválida: %w", err)
	}
	reportes, err := url.Parse(gw.backends.Reportes)
	if err != nil {
		return fmt.Errorf("URL de reportes inválida: %w", err)
	}
	agente, err := url.Parse(gw.backends.Agente)
	if err != nil {
		return fmt.Errorf("URL de agentes inválida: %w", err)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "api-gateway"})
	})
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "API Gateway - Sistema de Gestión de Equipos de TI",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"equipos":        "/api/equipos",
				"proveedores":    "/api/proveedores",
				"mantenimientos": "/api/mantenimientos",
				"reportes":       "/api/reportes",
				"agents":         "/api/agents",
			},
		})
	})

	stripAPI := map[string]string{"/api/*": "/$1"}

	gw.mount(e, equipos, "equipos", stripAPI,
		"/api/auth", "/api/equipos", "/api/categorias", "/api/ubicaciones", "/api/movimientos")
	gw.mount(e, proveedores, "proveedores", stripAPI,
		"/api/proveedores", "/api/contratos")
	gw.mount(e, mantenimiento, "mantenimientos", stripAPI,
		"/api/mantenimientos")
	gw.mount(e, reportes, "reportes",
		map[string]string{"/api/reportes": "/", "/api/reportes/*": "/$1"},
		"/api/reportes")
	gw.mount(e, agente, "agentes",
		map[string]string{"/api/agents": "/", "/api/agents/*": "/$1"},
		"/api/agents")

	return nil
}

func (gw *Gateway) mount(e *echo.Echo, target *url.URL, servicio string, rewrite map[string]string, prefixes ...string) {
	proxy := echomw.ProxyWithConfig(echomw.ProxyConfig{
		Balancer: echomw.NewRoundRobinBalancer([]*echomw.ProxyTarget{{URL: target}}),
		Rewrite:  rewrite,
		ErrorHandler: func(c echo.Context, err error) error {
			gw.logger.Error("backend inalcanzable",
				zap.String("servicio", servicio),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err))
			return api.ErrorResponse(c, apperrors.NewHttpError(
				http.StatusServiceUnavailable,
				fmt.Sprintf("Error conectando con el servicio de %s", servicio),
				err, nil), gw.logger)
		},
	})
	for _, prefix := range prefixes {
		e.Group(prefix).Use(proxy)
	}
}
