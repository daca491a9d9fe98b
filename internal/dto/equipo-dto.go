package dto

import (
	"encoding/json"

	"ti-management/internal/entities"
)

type CreateEquipoDTO struct {
	CodigoInventario  string          `json:"codigo_inventario" validate:"required"`
	CategoriaID       int64           `json:"categoria_id" validate:"required,gt=0"`
	Nombre            string          `json:"nombre" validate:"required"`
	Marca             *string         `json:"marca,omitempty"`
	Modelo            *string         `json:"modelo,omitempty"`
	NumeroSerie       *string         `json:"numero_serie,omitempty"`
	Especificaciones  json.RawMessage `json:"especificaciones,omitempty"`
	ProveedorID       *int64          `json:"proveedor_id,omitempty" validate:"omitempty,gt=0"`
	FechaCompra       *string         `json:"fecha_compra,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CostoCompra       *float64        `json:"costo_compra,omitempty" validate:"omitempty,gte=0"`
	FechaGarantiaFin  *string         `json:"fecha_garantia_fin,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UbicacionActualID *int64          `json:"ubicacion_actual_id,omitempty" validate:"omitempty,gt=0"`
	EstadoOperativo   string          `json:"estado_operativo" validate:"omitempty,estado_operativo"`
	EstadoFisico      string          `json:"estado_fisico" validate:"omitempty,estado_fisico"`
	AsignadoAID       *int64          `json:"asignado_a_id,omitempty" validate:"omitempty,gt=0"`
	Notas             *string         `json:"notas,omitempty"`
	ImagenURL         *string         `json:"imagen_url,omitempty"`
}

type UpdateEquipoDTO struct {
	Nombre            *string         `json:"nombre,omitempty"`
	Marca             *string         `json:"marca,omitempty"`
	Modelo            *string         `json:"modelo,omitempty"`
	Especificaciones  json.RawMessage `json:"especificaciones,omitempty"`
	UbicacionActualID *int64          `json:"ubicacion_actual_id,omitempty" validate:"omitempty,gt=0"`
	EstadoOperativo   *string         `json:"estado_operativo,omitempty" validate:"omitempty,estado_operativo"`
	EstadoFisico      *string         `json:"estado_fisico,omitempty" validate:"omitempty,estado_fisico"`
	AsignadoAID       *int64          `json:"asignado_a_id,omitempty" validate:"omitempty,gt=0"`
	Notas             *string         `json:"notas,omitempty"`
}

// EquipoDetalleDTO es la ficha completa de un equipo con su historial de
// movimientos.
type EquipoDetalleDTO struct {
	entities.Equipo
	HistorialMovimientos []entities.Movimiento `json:"historial_movimientos"`
}

type CreateMovimientoDTO struct {
	EquipoID             int64   `json:"equipo_id" validate:"required,gt=0"`
	UbicacionDestinoID   int64   `json:"ubicacion_destino_id" validate:"required,gt=0"`
	UsuarioResponsableID int64   `json:"usuario_responsable_id" validate:"required,gt=0"`
	Motivo               string  `json:"motivo" validate:"required"`
	Observaciones        *string `json:"observaciones,omitempty"`
}
