package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Proyecciones de las consultas de las reglas del agente.

type MantenimientoAviso struct {
	ID               int64     `json:"id"`
	FechaProgramada  time.Time `json:"fecha_programada"`
	Descripcion      string    `json:"descripcion"`
	EquipoID         int64     `json:"equipo_id"`
	EquipoNombre     string    `json:"equipo_nombre"`
	CodigoInventario string    `json:"codigo_inventario"`
}

type EquipoObsolescencia struct {
	ID               int64  `json:"id"`
	Nombre           string `json:"nombre"`
	CodigoInventario string `json:"codigo_inventario"`
	VidaUtilAnos     int    `json:"vida_util_anos"`
	AnosUso          int    `json:"anos_uso"`
}

type EquipoGarantia struct {
	ID               int64       `json:"id"`
	Nombre           string      `json:"nombre"`
	CodigoInventario string      `json:"codigo_inventario"`
	FechaGarantiaFin time.Time   `json:"fecha_garantia_fin"`
	Proveedor        null.String `json:"proveedor"`
}

type EquipoAltoCosto struct {
	ID                      int64        `json:"id"`
	Nombre                  string       `json:"nombre"`
	CodigoInventario        string       `json:"codigo_inventario"`
	CostoCompra             null.Float64 `json:"costo_compra"`
	NumMantenimientos       int64        `json:"num_mantenimientos"`
	CostoTotalMantenimiento float64      `json:"costo_total_mantenimiento"`
}
