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

func RegisterAgentesRoutes(e *echo.Echo, pool *pgxpool.Pool, logger *zap.Logger) {
	var (
		notificacionRepository = repositories.NewNotificacionRepository(pool)
		agenteService          = services.NewAgenteService(notificacionRepository, logger)
		agenteController       = controllers.NewAgenteController(agenteService, logger)
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "agents"})
	})

	e.POST("/check-maintenance", agenteController.CheckMantenimientos)
	e.POST("/check-obsolescence", agenteController.CheckObsolescencia)
	e.POST("/check-warranties", agenteController.CheckGarantias)
	e.POST("/analyze-maintenance-costs", agenteController.AnalizarCostos)
	e.POST("/run-all-agents", agenteController.RunAll)

	e.GET("/notificaciones", agenteController.GetNotificaciones)
	e.PUT("/notificaciones/:id/marcar-leida", agenteController.MarcarLeida)
}
