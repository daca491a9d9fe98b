package entities

import (
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
)

// Tipos de mantenimiento.
const (
	MantenimientoPreventivo = "preventivo"
	MantenimientoCorrectivo = "correctivo"
)

// Estados del ciclo de vida de un mantenimiento. El estado inicial lo asigna
// siempre el servidor; completado y cancelado son terminales.
const (
	MantenimientoProgramado = "programado"
	MantenimientoEnProceso  = "en_proceso"
	MantenimientoCompletado = "completado"
	MantenimientoCancelado  = "cancelado"
)

type Mantenimiento struct {
	ID                       int64           `json:"id" db:"id"`
	EquipoID                 int64           `json:"equipo_id" db:"equipo_id"`
	Tipo                     string          `json:"tipo" db:"tipo"`
	FechaProgramada          time.Time       `json:"fecha_programada" db:"fecha_programada"`
	FechaRealizada           null.Time       `json:"fecha_realizada" db:"fecha_realizada"`
	TecnicoID                null.Int64      `json:"tecnico_id" db:"tecnico_id"`
	ProveedorID              null.Int64      `json:"proveedor_id" db:"proveedor_id"`
	Descripcion              string          `json:"descripcion" db:"descripcion"`
	ProblemaReportado        null.String     `json:"problema_reportado" db:"problema_reportado"`
	SolucionAplicada         null.String     `json:"solucion_aplicada" db:"solucion_aplicada"`
	Costo                    null.Float64    `json:"costo" db:"costo"`
	TiempoFueraServicioHoras null.Float64    `json:"tiempo_fuera_servicio_horas" db:"tiempo_fuera_servicio_horas"`
	Estado                   string          `json:"estado" db:"estado"`
	Prioridad                string          `json:"prioridad" db:"prioridad"`
	PartesReemplazadas       json.RawMessage `json:"partes_reemplazadas,omitempty" db:"partes_reemplazadas"`
	Observaciones            null.String     `json:"observaciones" db:"observaciones"`
	FechaCreacion            time.Time       `json:"fecha_creacion" db:"fecha_creacion"`

	CodigoInventario null.String `json:"codigo_inventario,omitempty" db:"-"`
	EquipoNombre     null.String `json:"equipo_nombre,omitempty" db:"-"`
	TecnicoNombre    null.String `json:"tecnico_nombre,omitempty" db:"-"`
	ProveedorNombre  null.String `json:"proveedor_nombre,omitempty" db:"-"`
}

// CalendarioItem es la proyección reducida para la vista de calendario.
type CalendarioItem struct {
	ID               int64       `json:"id"`
	FechaProgramada  time.Time   `json:"fecha_programada"`
	Tipo             string      `json:"tipo"`
	Estado           string      `json:"estado"`
	Prioridad        string      `json:"prioridad"`
	CodigoInventario string      `json:"codigo_inventario"`
	EquipoNombre     string      `json:"equipo_nombre"`
	TecnicoNombre    null.String `json:"tecnico_nombre"`
}

type ConteoPor struct {
	Clave    string `json:"clave"`
	Cantidad int64  `json:"cantidad"`
}

type CostoMensual struct {
	Mes        string  `json:"mes"`
	TotalCosto float64 `json:"total_costo"`
	Cantidad   int64   `json:"cantidad"`
}

// EstadisticasMantenimiento agrega los totales del servicio de mantenimiento.
type EstadisticasMantenimiento struct {
	Total       int64          `json:"total"`
	PorTipo     []ConteoPor    `json:"por_tipo"`
	PorEstado   []ConteoPor    `json:"por_estado"`
	CostoTotal  float64        `json:"costo_total"`
	CostoPorMes []CostoMensual `json:"costo_por_mes"`
}
