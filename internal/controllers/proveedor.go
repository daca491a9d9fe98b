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

type ProveedorController struct {
	proveedorService *services.ProveedorService
	logger           *zap.Logger
}

func NewProveedorController(proveedorService *services.ProveedorService, logger *zap.Logger) *ProveedorController {
	return &ProveedorController{proveedorService: proveedorService, logger: logger}
}

func (c *ProveedorController) GetProveedores(ctx echo.Context) error {
	var activo *bool
	if raw := ctx.QueryParam("activo"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			activo = &v
		}
	}

	proveedores, err := c.proveedorService.GetProveedores(ctx.Request().Context(), activo)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Lista de proveedores obtenida", proveedores)
}

func (c *ProveedorController) FindProveedor(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	proveedor, err := c.proveedorService.FindProveedor(ctx.Request().Context(), id)
	if err != nil {
		return api.ErrorResponse(ctx, translate(err, "Proveedor"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Proveedor encontrado", proveedor)
}

func (c *ProveedorController) CreateProveedor(ctx echo.Context) error {
	var payload dto.CreateProveedorDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	id, err := c.proveedorService.CreateProveedor(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Created(ctx, id, "Proveedor creado exitosamente")
}

func (c *ProveedorController) UpdateProveedor(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateProveedorDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.proveedorService.UpdateProveedor(ctx.Request().Context(), id, payload); err != nil {
		return api.ErrorResponse(ctx, translate(err, "Proveedor"), c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Proveedor actualizado exitosamente", struct{}{})
}

func (c *ProveedorController) GetContratos(ctx echo.Context) error {
	var proveedorID *int64
	if raw := ctx.QueryParam("proveedor_id"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			proveedorID = &v
		}
	}

	contratos, err := c.proveedorService.GetContratos(ctx.Request().Context(), proveedorID)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Lista de contratos obtenida", contratos)
}

func (c *ProveedorController) CreateContrato(ctx echo.Context) error {
	var payload dto.CreateContratoDTO
	if err := ctx.Bind(&payload); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewHttpError(
			http.StatusBadRequest, "Formato de datos inválido", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	id, err := c.proveedorService.CreateContrato(ctx.Request().Context(), payload)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.Created(ctx, id, "Contrato creado exitosamente")
}
