// Package migrations expone los archivos SQL de goose como un FS embebido
// para que el binario de migración no dependa del directorio de trabajo.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
