package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
)

var _ repository.SearchRepository = (*SearchRepo)(nil)

// SearchRepo lectura de columnas sueltas sin cargar el registro completo.
type SearchRepo struct {
	q Querier
}

// NewSearchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSearchRepository(q Querier) *SearchRepo {
	return &SearchRepo{q: q}
}

// LookupFields devuelve los campos pedidos como texto. Devuelve domain.ErrNotFound si el registro no existe.
func (r *SearchRepo) LookupFields(ctx context.Context, recordType entity.RecordType, id string, fields ...string) (map[string]string, error) {
	out := make(map[string]string, len(fields))
	if len(fields) == 0 {
		return out, nil
	}
	table, cols, err := resolveColumns(recordType, fields)
	if err != nil {
		return nil, err
	}

	exprs := make([]string, len(cols))
	for i, c := range cols {
		exprs[i] = c.textExpr()
	}
	args := []any{id}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", strings.Join(exprs, ", "), table)
	if table == "transactions" {
		args = append(args, string(recordType))
		query += " AND type = $2"
	}

	values := make([]string, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("%s %s: %w", recordType, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup fields %s %s: %w", recordType, id, err)
	}
	for i, f := range fields {
		out[f] = values[i]
	}
	return out, nil
}
