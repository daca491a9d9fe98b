package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/internal/services"
	"ti-management/pkg/api"
)

// AgenteController expone las reglas del agente. Las rutas de chequeo
// siempre responden 200: el resultado, incluso el de error, viaja en el
// cuerpo.
type AgenteController struct {
	agenteService *services.AgenteService
	logger        *zap.Logger
}

func NewAgenteController(agenteService *services.AgenteService, logger *zap.Logger) *AgenteController {
	return &AgenteController{agenteService: agenteService, logger: logger}
}

func (c *AgenteController) CheckMantenimientos(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.agenteService.CheckMantenimientos(ctx.Request().Context()))
}

func (c *AgenteController) CheckObsolescencia(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.agenteService.CheckObsolescencia(ctx.Request().Context()))
}

func (c *AgenteController) CheckGarantias(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.agenteService.CheckGarantias(ctx.Request().Context()))
}

func (c *AgenteController) AnalizarCostos(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.agenteService.AnalizarCostos(ctx.Request().Context()))
}

func (c *AgenteController) RunAll(ctx echo.Context) error {
	c.agenteService.RunAll()
	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "Todos los agentes han sido programados para ejecución",
		"fecha":   time.Now().Format(time.RFC3339),
	})
}

func (c *AgenteController) GetNotificaciones(ctx echo.Context) error {
	leida := false
	if raw := ctx.QueryParam("leida"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			leida = v
		}
	}

	var limit uint64
	if raw := ctx.QueryParam("limit"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			limit = v
		}
	}

	notificaciones, err := c.agenteService.GetNotificaciones(ctx.Request().Context(), leida, limit)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Lista de notificaciones obtenida", notificaciones)
}

func (c *AgenteController) MarcarLeida(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.agenteService.MarcarLeida(ctx.Request().Context(), id); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Notificación marcada como leída", struct{}{})
}
