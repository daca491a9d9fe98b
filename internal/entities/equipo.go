package entities

import (
	"encoding/json"
	"time"

	"github.com/aarondl/null/v8"
)

// Estados operativos de un equipo.
const (
	EstadoOperativo    = "operativo"
	EstadoEnReparacion = "en_reparacion"
	EstadoObsoleto     = "obsoleto"
	EstadoDadoBaja     = "dado_baja"
	EstadoEnAlmacen    = "en_almacen"
)

type Equipo struct {
	ID                int64           `json:"id" db:"id"`
	CodigoInventario  string          `json:"codigo_inventario" db:"codigo_inventario"`
	CategoriaID       int64           `json:"categoria_id" db:"categoria_id"`
	Nombre            string          `json:"nombre" db:"nombre"`
	Marca             null.String     `json:"marca" db:"marca"`
	Modelo            null.String     `json:"modelo" db:"modelo"`
	NumeroSerie       null.String     `json:"numero_serie" db:"numero_serie"`
	Especificaciones  json.RawMessage `json:"especificaciones,omitempty" db:"especificaciones"`
	ProveedorID       null.Int64      `json:"proveedor_id" db:"proveedor_id"`
	FechaCompra       null.Time       `json:"fecha_compra" db:"fecha_compra"`
	CostoCompra       null.Float64    `json:"costo_compra" db:"costo_compra"`
	FechaGarantiaFin  null.Time       `json:"fecha_garantia_fin" db:"fecha_garantia_fin"`
	UbicacionActualID null.Int64      `json:"ubicacion_actual_id" db:"ubicacion_actual_id"`
	EstadoOperativo   string          `json:"estado_operativo" db:"estado_operativo"`
	EstadoFisico      string          `json:"estado_fisico" db:"estado_fisico"`
	AsignadoAID       null.Int64      `json:"asignado_a_id" db:"asignado_a_id"`
	Notas             null.String     `json:"notas" db:"notas"`
	ImagenURL         null.String     `json:"imagen_url" db:"imagen_url"`
	FechaRegistro     time.Time       `json:"fecha_registro" db:"fecha_registro"`

	// Campos de las tablas relacionadas, no columnas de equipos.
	CategoriaNombre null.String `json:"categoria_nombre,omitempty" db:"-"`
	UbicacionNombre null.String `json:"ubicacion_nombre,omitempty" db:"-"`
	ProveedorNombre null.String `json:"proveedor_nombre,omitempty" db:"-"`
	AsignadoANombre null.String `json:"asignado_a_nombre,omitempty" db:"-"`
}

type Categoria struct {
	ID           int64       `json:"id" db:"id"`
	Nombre       string      `json:"nombre" db:"nombre"`
	Descripcion  null.String `json:"descripcion" db:"descripcion"`
	VidaUtilAnos int         `json:"vida_util_anos" db:"vida_util_anos"`
}

type Ubicacion struct {
	ID             int64       `json:"id" db:"id"`
	Edificio       string      `json:"edificio" db:"edificio"`
	Piso           null.String `json:"piso" db:"piso"`
	AulaOficina    string      `json:"aula_oficina" db:"aula_oficina"`
	Descripcion    null.String `json:"descripcion" db:"descripcion"`
	ResponsableID  null.Int64  `json:"responsable_id" db:"responsable_id"`
	Activo         bool        `json:"activo" db:"activo"`
	NombreCompleto string      `json:"nombre_completo" db:"-"`
}
