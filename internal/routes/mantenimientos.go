package routes

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/controllers"
	"ti-management/internal/repositories"
	"ti-management/internal/services"
)

func RegisterMantenimientosRoutes(e *echo.Echo, pool *pgxpool.Pool, logger *zap.Logger) {
	var (
		mantenimientoRepository = repositories.NewMantenimientoRepository(pool, logger)
		equipoRepository        = repositories.NewEquipoRepository(pool, logger)
		usuarioRepository       = repositories.NewUsuarioRepository(pool)
		proveedorRepository     = repositories.NewProveedorRepository(pool)

		mantenimientoService = services.NewMantenimientoService(mantenimientoRepository,
			equipoRepository, usuarioRepository, proveedorRepository, logger)

		mantenimientoController = controllers.NewMantenimientoController(mantenimientoService, logger)
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "mantenimientos"})
	})

	// Las rutas fijas van antes que /mantenimientos/:id para que el router no
	// las capture como un ID.
	e.GET("/mantenimientos/calendario", mantenimientoController.GetCalendario)
	e.GET("/mantenimientos/estadisticas", mantenimientoController.GetEstadisticas)

	e.GET("/mantenimientos", mantenimientoController.GetMantenimientos)
	e.GET("/mantenimientos/:id", mantenimientoController.FindMantenimiento)
	e.POST("/mantenimientos", mantenimientoController.CreateMantenimiento)
	e.PUT("/mantenimientos/:id", mantenimientoController.UpdateMantenimiento)
	e.DELETE("/mantenimientos/:id", mantenimientoController.DeleteMantenimiento)
}
