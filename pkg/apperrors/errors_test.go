package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPgError_UnicidadConocida(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "equipos_codigo_inventario_key",
	}

	err := FromPgError(pgErr)

	var httpErr *HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "El código de inventario ya está registrado", httpErr.Message)
	assert.Equal(t, "codigo_inventario", httpErr.Details["campo"])
}

func TestFromPgError_ClaveForanea(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "equipos_categoria_id_fkey",
	}

	err := FromPgError(pgErr)

	var httpErr *HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "La categoría no existe", httpErr.Message)
}

func TestFromPgError_UnicidadDesconocida(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "otra_restriccion_key",
	}

	err := FromPgError(pgErr)

	var httpErr *HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Contains(t, httpErr.Message, "otra_restriccion_key")
}

func TestFromPgError_ErrorAjeno(t *testing.T) {
	cause := errors.New("conexión perdida")
	assert.Equal(t, cause, FromPgError(cause))
}

func TestNotFound(t *testing.T) {
	err := NotFound("Equipo")
	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.Equal(t, "Equipo no encontrado", err.Message)
	assert.ErrorIs(t, err, ErrNotFound)
}
