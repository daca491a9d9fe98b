package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/pkg/api"
	"ti-management/pkg/apperrors"
	"ti-management/pkg/token"
)

// AuthMiddleware valida el access token en el gateway. La validación es
// puramente criptográfica: el gateway no guarda estado de sesión.
type AuthMiddleware struct {
	jwtSvc token.JWTService
	logger *zap.Logger
}

func NewAuthMiddleware(jwtSvc token.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc, logger: logger}
}

// Auth exige un Bearer token válido, exceptuando las rutas de skip.
func (m *AuthMiddleware) Auth(skip ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range skip {
				// "/" sólo exime la raíz, no todo el árbol de rutas.
				if path == prefix || (prefix != "/" && strings.HasPrefix(path, prefix)) {
					return next(c)
				}
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return api.ErrorResponse(c,
					apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrEmptyAuthHeader.Error(), nil, nil),
					m.logger)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return api.ErrorResponse(c,
					apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidAuthHeader.Error(), nil, nil),
					m.logger)
			}

			claims, err := m.jwtSvc.ValidateToken(parts[1])
			if err != nil {
				return api.ErrorResponse(c,
					apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), err, nil),
					m.logger)
			}
			if claims.IsRefreshToken {
				return api.ErrorResponse(c,
					apperrors.NewHttpError(http.StatusUnauthorized, apperrors.ErrInvalidToken.Error(), nil, nil),
					m.logger)
			}

			c.Set("userID", claims.UserID)
			c.Set("rol", claims.Rol)
			return next(c)
		}
	}
}
