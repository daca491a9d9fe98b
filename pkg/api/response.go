package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ti-management/pkg/apperrors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

// CreatedBody es la forma de respuesta de los POST de creación.
type CreatedBody struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T) error {
	if list == nil {
		list = make([]T, 0)
	}
	return c.JSON(http.StatusOK, Response[[]T]{
		Status:  true,
		Message: message,
		Body:    list,
	})
}

func Created(c echo.Context, id int64, message string) error {
	return SuccessOne(c, http.StatusCreated, message, CreatedBody{ID: id, Message: message})
}

// ErrorResponse registra el error y responde con el envoltorio estándar.
// Para HttpError se usa su código y mensaje; el resto baja como 500 con el
// mensaje crudo adjunto.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	msg := err.Error()
	var details map[string]interface{}

	if httpErr, ok := err.(*apperrors.HttpError); ok {
		code = httpErr.Code
		msg = httpErr.Message
		details = httpErr.Details
	}

	if logger != nil && code >= http.StatusInternalServerError {
		logger.Error("error interno",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err),
		)
	}

	return c.JSON(code, struct {
		Status  bool                   `json:"status"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details,omitempty"`
	}{Status: false, Message: msg, Details: details})
}
