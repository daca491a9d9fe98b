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

func RegisterReportesRoutes(e *echo.Echo, pool *pgxpool.Pool, cache repositories.CacheRepositoryInterface, exportDir string, logger *zap.Logger) {
	var (
		reporteRepository = repositories.NewReporteRepository(pool)
		reporteService    = services.NewReporteService(reporteRepository, cache, exportDir, logger)
		reporteController = controllers.NewReporteController(reporteService, logger)
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "reportes"})
	})

	e.GET("/dashboard", reporteController.GetDashboard)
	e.GET("/equipos-por-ubicacion", reporteController.EquiposPorUbicacion)
	e.GET("/equipos-por-estado", reporteController.EquiposPorEstado)
	e.GET("/equipos-por-categoria", reporteController.EquiposPorCategoria)
	e.GET("/equipos-antiguedad", reporteController.EquiposPorAntiguedad)
	e.GET("/equipos-garantia", reporteController.EquiposPorGarantia)
	e.GET("/costos-mantenimiento", reporteController.CostosMantenimiento)
	e.GET("/mantenimientos-por-prioridad", reporteController.MantenimientosPorPrioridad)
	e.POST("/export/excel", reporteController.ExportExcel)
}
