package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Tipos de notificación generados por las reglas del agente.
const (
	NotifMantenimientoProximo       = "mantenimiento_proximo"
	NotifMantenimientoUrgente       = "mantenimiento_urgente"
	NotifMantenimientoVencido       = "mantenimiento_vencido"
	NotifEquipoObsoleto             = "equipo_obsoleto"
	NotifEquipoProximoObsolescencia = "equipo_proximo_obsolescencia"
	NotifGarantiaProximaVencer      = "garantia_proxima_vencer"
	NotifAltoCostoMantenimiento     = "alto_costo_mantenimiento"
)

type Notificacion struct {
	ID              int64       `json:"id" db:"id"`
	Tipo            string      `json:"tipo" db:"tipo"`
	Titulo          string      `json:"titulo" db:"titulo"`
	Mensaje         string      `json:"mensaje" db:"mensaje"`
	UsuarioID       null.Int64  `json:"usuario_id" db:"usuario_id"`
	EquipoID        null.Int64  `json:"equipo_id" db:"equipo_id"`
	MantenimientoID null.Int64  `json:"mantenimiento_id" db:"mantenimiento_id"`
	Leida           bool        `json:"leida" db:"leida"`
	FechaCreacion   time.Time   `json:"fecha_creacion" db:"fecha_creacion"`
	FechaLectura    null.Time   `json:"fecha_lectura" db:"fecha_lectura"`

	CodigoInventario null.String `json:"codigo_inventario,omitempty" db:"-"`
	EquipoNombre     null.String `json:"equipo_nombre,omitempty" db:"-"`
}
