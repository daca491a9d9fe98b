package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/dto"
	"ti-management/internal/services"
	"ti-management/pkg/api"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/utils"
)

type EquipoController struct {
	equipoService *services.EquipoService
	logger        *zap.Logger
}

func NewEquipoController(equipoService *services.EquipoService, logger *zap.Logger) *EquipoController {
	return &EquipoController{equipoService: equipoService, logger: logger}
}

func (c *EquipoController) GetEquipos(ctx echo.Context) error {
	params := utils.ParseListParams(ctx.Request().URL.Query(), "categoria", "estado", "ubicacion")

	equipos, err := c.equipoService.GetEquipos(ctx.Request().Context(), params)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Lista de equipos obtenida", equipos)
}

func (c *EquipoController) FindEquipo(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	equipo, err := c.equipoService.FindEquipo(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, translate(err, "Equipo"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Equipo encontrado", equipo)
}

func (c *EquipoController) CreateEquipo(ctx echo.Context) error {
	var payload dto.CreateEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	id, err := c.equipoService.CreateEquipo(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Created(ctx, id, "Equipo creado exitosamente")
}

func (c *EquipoController) UpdateEquipo(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEquipoDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipoService.UpdateEquipo(ctx.Request().Context(), id, payload); err != nil {
		return api.ErrorResponse(ctx, translate(err, "Equipo"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Equipo actualizado exitosamente", struct{}{})
}

func (c *EquipoController) DeleteEquipo(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipoService.DeleteEquipo(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, translate(err, "Equipo"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Equipo eliminado exitosamente", struct{}{})
}

func (c *EquipoController) CreateMovimiento(ctx echo.Context) error {
	var payload dto.CreateMovimientoDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipoService.CreateMovimiento(ctx.Request().Context(), payload); err != nil {
		return api.ErrorResponse(ctx, translate(err, "Equipo"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Movimiento registrado exitosamente", struct{}{})
}

func (c *EquipoController) GetCategorias(ctx echo.Context) error {
	categorias, err := c.equipoService.GetCategorias(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Lista de categorías obtenida", categorias)
}

func (c *EquipoController) GetUbicaciones(ctx echo.Context) error {
	ubicaciones, err := c.equipoService.GetUbicaciones(ctx.Request().Context())
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Lista de ubicaciones obtenida", ubicaciones)
}
