package types

// ListParams representa los parámetros de listado que aceptan los endpoints.
// Filter sólo admite las claves del allow-list de cada repositorio.
type ListParams struct {
	Filter map[string]string
	Limit  uint64
	Offset uint64
}
