package repository

import (
	"context"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// SearchRepository consultas ligeras de columnas sueltas (equivalente a lookupFields).
type SearchRepository interface {
	// LookupFields devuelve los valores como texto; un campo vacío o nulo se devuelve como "".
	LookupFields(ctx context.Context, recordType entity.RecordType, id string, fields ...string) (map[string]string, error)
}

// LookupInvalidator lo implementan los SearchRepository con caché. Tras guardar un registro se
// descartan sus consultas cacheadas.
type LookupInvalidator interface {
	Invalidate(ctx context.Context, recordType entity.RecordType, id string) error
}
