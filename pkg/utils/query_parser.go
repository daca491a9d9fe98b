package utils

import (
	"net/url"
	"strconv"

	"ti-management/pkg/types"
)

const (
	DefaultLimit = 200
	MaxLimit     = 500
)

// ParseListParams extrae del query string los filtros permitidos y la
// paginación. Las claves fuera de allowed se ignoran: el conjunto de filtros
// válidos es cerrado.
func ParseListParams(query url.Values, allowed ...string) types.ListParams {
	params := types.ListParams{
		Filter: make(map[string]string),
		Limit:  DefaultLimit,
	}

	for _, key := range allowed {
		if v := query.Get(key); v != "" {
			params.Filter[key] = v
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			params.Limit = l
		}
	}
	if params.Limit > MaxLimit {
		params.Limit = MaxLimit
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			params.Offset = o
		}
	}

	return params
}
