package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Movimiento struct {
	ID                   int64       `json:"id" db:"id"`
	EquipoID             int64       `json:"equipo_id" db:"equipo_id"`
	UbicacionOrigenID    null.Int64  `json:"ubicacion_origen_id" db:"ubicacion_origen_id"`
	UbicacionDestinoID   int64       `json:"ubicacion_destino_id" db:"ubicacion_destino_id"`
	UsuarioResponsableID int64       `json:"usuario_responsable_id" db:"usuario_responsable_id"`
	FechaMovimiento      time.Time   `json:"fecha_movimiento" db:"fecha_movimiento"`
	Motivo               string      `json:"motivo" db:"motivo"`
	Observaciones        null.String `json:"observaciones" db:"observaciones"`

	Origen      null.String `json:"origen,omitempty" db:"-"`
	Destino     null.String `json:"destino,omitempty" db:"-"`
	Responsable null.String `json:"responsable,omitempty" db:"-"`
}
