package routes

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/controllers"
	"ti-management/internal/repositories"
	"ti-management/internal/services"
	"ti-management/pkg/token"
)

// RegisterEquiposRoutes arma el servicio de equipos: inventario, movimientos,
// catálogos y autenticación.
func RegisterEquiposRoutes(e *echo.Echo, pool *pgxpool.Pool, jwtService token.JWTService, logger *zap.Logger) {
	var (
		equipoRepository     = repositories.NewEquipoRepository(pool, logger)
		categoriaRepository  = repositories.NewCategoriaRepository(pool)
		ubicacionRepository  = repositories.NewUbicacionRepository(pool)
		movimientoRepository = repositories.NewMovimientoRepository(pool)
		proveedorRepository  = repositories.NewProveedorRepository(pool)
		usuarioRepository    = repositories.NewUsuarioRepository(pool)

		equipoService = services.NewEquipoService(equipoRepository, categoriaRepository,
			ubicacionRepository, movimientoRepository, proveedorRepository, logger)
		authService = services.NewAuthService(usuarioRepository, jwtService, logger)

		equipoController = controllers.NewEquipoController(equipoService, logger)
		authController   = controllers.NewAuthController(authService, logger)
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "equipos"})
	})

	e.POST("/auth/login", authController.Login)
	e.POST("/auth/refresh", authController.Refresh)

	e.GET("/equipos", equipoController.GetEquipos)
	e.GET("/equipos/:id", equipoController.FindEquipo)
	e.POST("/equipos", equipoController.CreateEquipo)
	e.PUT("/equipos/:id", equipoController.UpdateEquipo)
	e.DELETE("/equipos/:id", equipoController.DeleteEquipo)

	e.POST("/movimientos", equipoController.CreateMovimiento)
	e.GET("/categorias", equipoController.GetCategorias)
	e.GET("/ubicaciones", equipoController.GetUbicaciones)
}
