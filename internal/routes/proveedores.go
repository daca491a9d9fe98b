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

func RegisterProveedoresRoutes(e *echo.Echo, pool *pgxpool.Pool, logger *zap.Logger) {
	var (
		proveedorRepository = repositories.NewProveedorRepository(pool)
		contratoRepository  = repositories.NewContratoRepository(pool)

		proveedorService = services.NewProveedorService(proveedorRepository, contratoRepository, logger)

		proveedorController = controllers.NewProveedorController(proveedorService, logger)
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "proveedores"})
	})

	e.GET("/proveedores", proveedorController.GetProveedores)
	e.GET("/proveedores/:id", proveedorController.FindProveedor)
	e.POST("/proveedores", proveedorController.CreateProveedor)
	e.PUT("/proveedores/:id", proveedorController.UpdateProveedor)

	e.GET("/contratos", proveedorController.GetContratos)
	e.POST("/contratos", proveedorController.CreateContrato)
}
