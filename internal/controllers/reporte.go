package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/services"
	"ti-management/pkg/api"
	"ti-management/pkg/apperrors"
)

type ReporteController struct {
	reporteService *services.ReporteService
	logger         *zap.Logger
}

func NewReporteController(reporteService *services.ReporteService, logger *zap.Logger) *ReporteController {
	return &ReporteController{reporteService: reporteService, logger: logger}
}

func (c *ReporteController) GetDashboard(ctx echo.Context) error {
	dashboard, err := c.reporteService.GetDashboard(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Dashboard obtenido", dashboard)
}

func (c *ReporteController) EquiposPorUbicacion(ctx echo.Context) error {
	resultado, err := c.reporteService.EquiposPorUbicacion(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Equipos por ubicación", resultado)
}

func (c *ReporteController) EquiposPorEstado(ctx echo.Context) error {
	resultado, err := c.reporteService.EquiposPorEstado(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Equipos por estado", resultado)
}

func (c *ReporteController) EquiposPorCategoria(ctx echo.Context) error {
	resultado, err := c.reporteService.EquiposPorCategoria(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Equipos por categoría", resultado)
}

func (c *ReporteController) EquiposPorAntiguedad(ctx echo.Context) error {
	resultado, err := c.reporteService.EquiposPorAntiguedad(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Equipos por antigüedad", resultado)
}

func (c *ReporteController) EquiposPorGarantia(ctx echo.Context) error {
	resultado, err := c.reporteService.EquiposPorGarantia(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Equipos por garantía", resultado)
}

func (c *ReporteController) CostosMantenimiento(ctx echo.Context) error {
	year := 0
	if raw := ctx.QueryParam("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			year = v
		}
	}

	resultado, err := c.reporteService.CostosMantenimiento(ctx.Request().Context(), year)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Costos de mantenimiento", resultado)
}

func (c *ReporteController) MantenimientosPorPrioridad(ctx echo.Context) error {
	resultado, err := c.reporteService.MantenimientosPorPrioridad(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Mantenimientos por prioridad", resultado)
}

func (c *ReporteController) ExportExcel(ctx echo.Context) error {
	var payload dto.ExportRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if payload.Type == "" {
		payload.Type = "equipos"
	}

	filename, err := c.reporteService.ExportExcel(ctx.Request().Context(), payload.Type)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Excel exportado exitosamente",
		dto.ExportResultDTO{Filename: filename, Message: "Excel exportado exitosamente"})
}
