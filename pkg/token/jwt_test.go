package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ti-management/pkg/apperrors"
)

func TestJWTService_GenerarYValidar(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Hour, time.Hour*24)

	access, refresh, err := svc.GenerateTokens(42, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Rol)
	assert.False(t, claims.IsRefreshToken)

	claims, err = svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, claims.IsRefreshToken)
}

func TestJWTService_TokenExpirado(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", -time.Minute, time.Hour)

	access, _, err := svc.GenerateTokens(1, "usuario")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_FirmaAjena(t *testing.T) {
	svc := NewJWTService("clave-a", time.Hour, time.Hour)
	otro := NewJWTService("clave-b", time.Hour, time.Hour)

	access, _, err := otro.GenerateTokens(1, "usuario")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_TokenBasura(t *testing.T) {
	svc := NewJWTService("clave-de-prueba", time.Hour, time.Hour)

	_, err := svc.ValidateToken("no-es-un-jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
