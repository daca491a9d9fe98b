package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListParams_FiltrosPermitidos(t *testing.T) {
	query := url.Values{}
	query.Set("estado", "operativo")
	query.Set("categoria", "Laptop")
	query.Set("malicioso", "1; DROP TABLE equipos")

	params := ParseListParams(query, "estado", "categoria", "ubicacion")

	assert.Equal(t, "operativo", params.Filter["estado"])
	assert.Equal(t, "Laptop", params.Filter["categoria"])
	assert.NotContains(t, params.Filter, "malicioso")
	assert.NotContains(t, params.Filter, "ubicacion")
}

func TestParseListParams_Paginacion(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "25")
	query.Set("offset", "50")

	params := ParseListParams(query)

	assert.Equal(t, uint64(25), params.Limit)
	assert.Equal(t, uint64(50), params.Offset)
}

func TestParseListParams_LimitPorDefectoYTope(t *testing.T) {
	params := ParseListParams(url.Values{})
	assert.Equal(t, uint64(DefaultLimit), params.Limit)

	query := url.Values{}
	query.Set("limit", "9999")
	params = ParseListParams(query)
	assert.Equal(t, uint64(MaxLimit), params.Limit)
}

func TestParseListParams_ValoresInvalidos(t *testing.T) {
	query := url.Values{}
	query.Set("limit", "abc")
	query.Set("offset", "-3")

	params := ParseListParams(query)

	assert.Equal(t, uint64(DefaultLimit), params.Limit)
	assert.Equal(t, uint64(0), params.Offset)
}
