package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/services"
	"ti-management/pkg/api"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/utils"
)

type MantenimientoController struct {
	mantenimientoService *services.MantenimientoService
	logger               *zap.Logger
}

func NewMantenimientoController(mantenimientoService *services.MantenimientoService, logger *zap.Logger) *MantenimientoController {
	return &MantenimientoController{mantenimientoService: mantenimientoService, logger: logger}
}

func (c *MantenimientoController) GetMantenimientos(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query(),
		"equipo_id", "estado", "tipo", "fecha_desde", "fecha_hasta")

	mantenimientos, err := c.mantenimientoService.GetMantenimientos(ctx.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Lista de mantenimientos obtenida", mantenimientos)
}

func (c *MantenimientoController) FindMantenimiento(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	mantenimiento, err := c.mantenimientoService.FindMantenimiento(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, translate(err, "Mantenimiento"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Mantenimiento encontrado", mantenimiento)
}

func (c *MantenimientoController) CreateMantenimiento(ctx echo.Context) error {
	var payload dto.CreateMantenimientoDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	id, err := c.mantenimientoService.CreateMantenimiento(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Created(ctx, id, "Mantenimiento creado exitosamente")
}

func (c *MantenimientoController) UpdateMantenimiento(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMantenimientoDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.mantenimientoService.UpdateMantenimiento(ctx.Request().Context(), id, payload); err != nil {
		return api.ErrorResponse(ctx, translate(err, "Mantenimiento"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Mantenimiento actualizado exitosamente", struct{}{})
}

func (c *MantenimientoController) DeleteMantenimiento(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.mantenimientoService.DeleteMantenimiento(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, translate(err, "Mantenimiento"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Mantenimiento eliminado exitosamente", struct{}{})
}

// GetCalendario usa el mes y año actuales cuando no vienen en el query.
func (c *MantenimientoController) GetCalendario(ctx echo.Context) error {
	ahora := time.Now()
	mes := int(ahora.Month())
	anio := ahora.Year()

	if raw := ctx.QueryParam("mes"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			mes = v
		}
	}
	if raw := ctx.QueryParam("anio"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			anio = v
		}
	}

	items, err := c.mantenimientoService.GetCalendario(ctx.Request().Context(), mes, anio)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Calendario de mantenimientos obtenido", items)
}

func (c *MantenimientoController) GetEstadisticas(ctx echo.Context) error {
	stats, err := c.mantenimientoService.GetEstadisticas(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Estadísticas de mantenimientos obtenidas", stats)
}
