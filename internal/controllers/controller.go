package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ti-management/pkg/apperrors"
)

// parseID lee el parámetro id de la ruta.
func parseID(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest,
			"Formato de ID inválido", err, map[string]interface{}{"param": ctx.Param("id")})
	}
	return id, nil
}

// translate convierte los errores centinela de los repositorios en errores
// HTTP con el nombre de la entidad. Todo lo demás pasa sin tocar.
func translate(err error, entidad string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return apperrors.NotFound(entidad)
	case errors.Is(err, apperrors.ErrNoFieldsToUpdate):
		return apperrors.NewHttpError(http.StatusBadRequest,
			apperrors.ErrNoFieldsToUpdate.Error(), err, nil)
	}
	return err
}
