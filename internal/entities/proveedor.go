package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Estados de un contrato, calculados al crearlo a partir de fecha_fin.
const (
	ContratoVigente = "vigente"
	ContratoVencido = "vencido"
)

type Proveedor struct {
	ID               int64        `json:"id" db:"id"`
	RazonSocial      string       `json:"razon_social" db:"razon_social"`
	RUC              string       `json:"ruc" db:"ruc"`
	Direccion        null.String  `json:"direccion" db:"direccion"`
	Telefono         null.String  `json:"telefono" db:"telefono"`
	Email            null.String  `json:"email" db:"email"`
	ContactoNombre   null.String  `json:"contacto_nombre" db:"contacto_nombre"`
	ContactoTelefono null.String  `json:"contacto_telefono" db:"contacto_telefono"`
	SitioWeb         null.String  `json:"sitio_web" db:"sitio_web"`
	Calificacion     null.Float64 `json:"calificacion" db:"calificacion"`
	Activo           bool         `json:"activo" db:"activo"`
	Notas            null.String  `json:"notas" db:"notas"`
	FechaRegistro    time.Time    `json:"fecha_registro" db:"fecha_registro"`
}

type Contrato struct {
	ID             int64        `json:"id" db:"id"`
	ProveedorID    int64        `json:"proveedor_id" db:"proveedor_id"`
	NumeroContrato string       `json:"numero_contrato" db:"numero_contrato"`
	Tipo           string       `json:"tipo" db:"tipo"`
	FechaInicio    time.Time    `json:"fecha_inicio" db:"fecha_inicio"`
	FechaFin       time.Time    `json:"fecha_fin" db:"fecha_fin"`
	MontoTotal     null.Float64 `json:"monto_total" db:"monto_total"`
	Estado         string       `json:"estado" db:"estado"`
	Descripcion    null.String  `json:"descripcion" db:"descripcion"`

	ProveedorNombre null.String `json:"proveedor_nombre,omitempty" db:"-"`
}

// EstadisticasCompras acompaña el detalle de un proveedor.
type EstadisticasCompras struct {
	Total         int64   `json:"total"`
	TotalComprado float64 `json:"total_comprado"`
}
