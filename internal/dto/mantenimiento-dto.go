package dto

import "encoding/json"

type CreateMantenimientoDTO struct {
	EquipoID          int64   `json:"equipo_id" validate:"required,gt=0"`
	Tipo              string  `json:"tipo" validate:"required,tipo_mantenimiento"`
	FechaProgramada   string  `json:"fecha_programada" validate:"required,datetime=2006-01-02"`
	TecnicoID         *int64  `json:"tecnico_id,omitempty" validate:"omitempty,gt=0"`
	ProveedorID       *int64  `json:"proveedor_id,omitempty" validate:"omitempty,gt=0"`
	Descripcion       string  `json:"descripcion" validate:"required"`
	ProblemaReportado *string `json:"problema_reportado,omitempty"`
	Prioridad         string  `json:"prioridad" validate:"omitempty,prioridad"`
	Observaciones     *string `json:"observaciones,omitempty"`
}

// UpdateMantenimientoDTO acepta cualquier subconjunto de campos; el estado se
// aplica tal cual lo manda el cliente, sin verificar la transición.
type UpdateMantenimientoDTO struct {
	FechaProgramada          *string         `json:"fecha_programada,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FechaRealizada           *string         `json:"fecha_realizada,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TecnicoID                *int64          `json:"tecnico_id,omitempty" validate:"omitempty,gt=0"`
	ProveedorID              *int64          `json:"proveedor_id,omitempty" validate:"omitempty,gt=0"`
	Descripcion              *string         `json:"descripcion,omitempty"`
	ProblemaReportado        *string         `json:"problema_reportado,omitempty"`
	SolucionAplicada         *string         `json:"solucion_aplicada,omitempty"`
	Costo                    *float64        `json:"costo,omitempty" validate:"omitempty,gte=0"`
	TiempoFueraServicioHoras *float64        `json:"tiempo_fuera_servicio_horas,omitempty" validate:"omitempty,gte=0"`
	Estado                   *string         `json:"estado,omitempty" validate:"omitempty,estado_mantenimiento"`
	Prioridad                *string         `json:"prioridad,omitempty" validate:"omitempty,prioridad"`
	PartesReemplazadas       json.RawMessage `json:"partes_reemplazadas,omitempty"`
	Observaciones            *string         `json:"observaciones,omitempty"`
}
