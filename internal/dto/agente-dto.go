package dto

// ResultadoAgenteDTO es la respuesta de cada regla del agente. Los fallos se
// reportan en el cuerpo (Status "error"), nunca como error HTTP al llamador.
type ResultadoAgenteDTO struct {
	Status                  string            `json:"status"`
	NotificacionesGeneradas int               `json:"notificaciones_generadas"`
	Error                   string            `json:"error,omitempty"`
	FechaEjecucion          string            `json:"fecha_ejecucion"`
	EquiposIdentificados    int               `json:"equipos_identificados,omitempty"`
	Detalle                 []AltoCostoDetail `json:"detalle,omitempty"`
}

// AltoCostoDetail identifica un equipo cuya suma de mantenimientos del último
// año superó la mitad de su costo de compra.
type AltoCostoDetail struct {
	EquipoID           int64   `json:"equipo_id"`
	Codigo             string  `json:"codigo"`
	CostoMantenimiento float64 `json:"costo_mantenimiento"`
	NumMantenimientos  int64   `json:"num_mantenimientos"`
}
