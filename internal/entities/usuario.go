package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Usuario struct {
	ID             int64       `json:"id" db:"id"`
	Username       string      `json:"username" db:"username"`
	Email          string      `json:"email" db:"email"`
	PasswordHash   string      `json:"-" db:"password_hash"`
	Rol            string      `json:"rol" db:"rol"`
	NombreCompleto string      `json:"nombre_completo" db:"nombre_completo"`
	Activo         bool        `json:"activo" db:"activo"`
	Telefono       null.String `json:"telefono" db:"telefono"`
	FechaRegistro  time.Time   `json:"fecha_registro" db:"fecha_registro"`
}
