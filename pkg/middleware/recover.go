package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"ti-management/pkg/api"
	"ti-management/pkg/apperrors"
)

// Recover captura pánicos del handler y responde un 500 con el formato
// estándar de error.
func Recover(logger *zap.Logger) echo.MiddlewareFunc {
	return echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("pánico recuperado",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				return api.ErrorResponse(c,
					apperrors.NewHttpError(http.StatusInternalServerError, "Error interno del servidor", err, nil),
					logger)
			}
			return err
		},
	})
}
