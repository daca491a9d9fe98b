package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Dashboard agrega los indicadores principales del inventario.
type Dashboard struct {
	TotalEquipos          int64   `json:"total_equipos"`
	EquiposOperativos     int64   `json:"equipos_operativos"`
	EquiposReparacion     int64   `json:"equipos_reparacion"`
	TasaDisponibilidad    float64 `json:"tasa_disponibilidad"`
	ValorInventario       float64 `json:"valor_inventario"`
	MantenimientosMes     int64   `json:"mantenimientos_mes"`
	CostoMantenimientoMes float64 `json:"costo_mantenimiento_mes"`
}

type EquiposPorUbicacion struct {
	Ubicacion string `json:"ubicacion"`
	Cantidad  int64  `json:"cantidad"`
}

type EquiposPorEstado struct {
	Estado   string `json:"estado"`
	Cantidad int64  `json:"cantidad"`
}

type EquiposPorCategoria struct {
	Categoria  string  `json:"categoria"`
	Cantidad   int64   `json:"cantidad"`
	ValorTotal float64 `json:"valor_total"`
}

type EquiposPorAntiguedad struct {
	RangoAntiguedad string `json:"rango_antiguedad"`
	Cantidad        int64  `json:"cantidad"`
}

type EquiposPorGarantia struct {
	EstadoGarantia string `json:"estado_garantia"`
	Cantidad       int64  `json:"cantidad"`
}

type CostoMantenimientoMensual struct {
	Mes        string  `json:"mes"`
	MesNum     int     `json:"mes_num"`
	Tipo       string  `json:"tipo"`
	TotalCosto float64 `json:"total_costo"`
	Cantidad   int64   `json:"cantidad"`
}

type MantenimientosPorPrioridad struct {
	Prioridad string `json:"prioridad"`
	Cantidad  int64  `json:"cantidad"`
}

// Filas planas para la exportación a Excel.

type ExportEquipoRow struct {
	CodigoInventario string
	Nombre           string
	Marca            null.String
	Modelo           null.String
	Categoria        null.String
	EstadoOperativo  string
	Ubicacion        null.String
	FechaCompra      null.Time
	CostoCompra      null.Float64
}

type ExportMantenimientoRow struct {
	ID               int64
	Tipo             string
	FechaProgramada  time.Time
	FechaRealizada   null.Time
	CodigoInventario string
	Equipo           string
	Estado           string
	Costo            null.Float64
	Descripcion      string
}
