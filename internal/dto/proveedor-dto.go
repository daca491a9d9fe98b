package dto

import "ti-management/internal/entities"

// ProveedorDetalleDTO es la ficha de un proveedor con sus estadísticas de
// compras y contratos.
type ProveedorDetalleDTO struct {
	entities.Proveedor
	EstadisticasCompras entities.EstadisticasCompras `json:"estadisticas_compras"`
	Contratos           []entities.Contrato          `json:"contratos"`
}

type CreateProveedorDTO struct {
	RazonSocial      string  `json:"razon_social" validate:"required"`
	RUC              string  `json:"ruc" validate:"required,ruc"`
	Direccion        *string `json:"direccion,omitempty"`
	Telefono         *string `json:"telefono,omitempty"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	ContactoNombre   *string `json:"contacto_nombre,omitempty"`
	ContactoTelefono *string `json:"contacto_telefono,omitempty"`
	SitioWeb         *string `json:"sitio_web,omitempty"`
	Notas            *string `json:"notas,omitempty"`
}

type UpdateProveedorDTO struct {
	RazonSocial      *string  `json:"razon_social,omitempty"`
	Direccion        *string  `json:"direccion,omitempty"`
	Telefono         *string  `json:"telefono,omitempty"`
	Email            *string  `json:"email,omitempty" validate:"omitempty,email"`
	ContactoNombre   *string  `json:"contacto_nombre,omitempty"`
	ContactoTelefono *string  `json:"contacto_telefono,omitempty"`
	SitioWeb         *string  `json:"sitio_web,omitempty"`
	Calificacion     *float64 `json:"calificacion,omitempty" validate:"omitempty,gte=0,lte=5"`
	Activo           *bool    `json:"activo,omitempty"`
	Notas            *string  `json:"notas,omitempty"`
}

type CreateContratoDTO struct {
	ProveedorID    int64    `json:"proveedor_id" validate:"required,gt=0"`
	NumeroContrato string   `json:"numero_contrato" validate:"required"`
	Tipo           string   `json:"tipo" validate:"required"`
	FechaInicio    string   `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin       string   `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	MontoTotal     *float64 `json:"monto_total,omitempty" validate:"omitempty,gte=0"`
	Descripcion    *string  `json:"descripcion,omitempty"`
}
