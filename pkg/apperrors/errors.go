package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound           = errors.New("registro no encontrado")
	ErrBadRequest         = errors.New("solicitud inválida")
	ErrNoFieldsToUpdate   = errors.New("no hay campos para actualizar")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUserInactive       = errors.New("el usuario está inactivo")

	ErrInvalidSigningMethod = errors.New("método de firma del token inválido")
	ErrInvalidToken         = errors.New("token inválido")
	ErrTokenExpired         = errors.New("el token ha expirado")
	ErrTokenIsNotRefresh    = errors.New("el token no es un refresh token")
	ErrEmptyAuthHeader      = errors.New("falta el encabezado de autorización")
	ErrInvalidAuthHeader    = errors.New("formato de encabezado de autorización inválido")
)

// HttpError lleva el código HTTP y el mensaje que verá el cliente, junto con
// la causa interna para los logs.
type HttpError struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NotFound(entity string) *HttpError {
	return NewHttpError(http.StatusNotFound, fmt.Sprintf("%s no encontrado", entity), ErrNotFound, nil)
}

// uniqueMessages traduce el nombre de la restricción/columna violada al
// mensaje que devolvía cada servicio.
var uniqueMessages = map[string]string{
	"codigo_inventario": "El código de inventario ya está registrado",
	"numero_serie":      "El número de serie ya está registrado",
	"ruc":               "El RUC ya está registrado",
	"numero_contrato":   "El número de contrato ya existe",
	"username":          "El nombre de usuario ya está registrado",
	"email":             "El correo ya está registrado",
}

var fkMessages = map[string]string{
	"categoria_id":           "La categoría no existe",
	"proveedor_id":           "El proveedor no existe",
	"ubicacion_actual_id":    "La ubicación no existe",
	"ubicacion_destino_id":   "La ubicación de destino no existe",
	"equipo_id":              "El equipo no existe",
	"tecnico_id":             "El técnico no existe",
	"asignado_a_id":          "El usuario asignado no existe",
	"usuario_responsable_id": "El usuario responsable no existe",
	"mantenimiento_id":       "El mantenimiento no existe",
}

// FromPgError clasifica violaciones de unicidad (23505) y de clave foránea
// (23503) en errores de cliente que nombran el campo ofensor. Cualquier otro
// error vuelve tal cual.
func FromPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		for field, msg := range uniqueMessages {
			if containsField(pgErr, field) {
				return NewHttpError(http.StatusBadRequest, msg, err, map[string]interface{}{"campo": field})
			}
		}
		return NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Violación de restricción única: %s", pgErr.ConstraintName), err, nil)
	case "23503":
		for field, msg := range fkMessages {
			if containsField(pgErr, field) {
				return NewHttpError(http.StatusBadRequest, msg, err, map[string]interface{}{"campo": field})
			}
		}
		return NewHttpError(http.StatusBadRequest,
			fmt.Sprintf("Error de referencia: %s", pgErr.ConstraintName), err, nil)
	}
	return err
}

func containsField(pgErr *pgconn.PgError, field string) bool {
	return strings.Contains(pgErr.ConstraintName, field) ||
		strings.Contains(pgErr.Detail, field) ||
		strings.Contains(pgErr.ColumnName, field)
}
