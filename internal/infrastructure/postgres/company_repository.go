package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
)

var _ repository.CompanyPreferenceRepository = (*CompanyPreferenceRepo)(nil)

// CompanyPreferenceRepo preferencias generales de la compañía sobre PostgreSQL.
type CompanyPreferenceRepo struct {
	q Querier
}

// NewCompanyPreferenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyPreferenceRepository(q Querier) *CompanyPreferenceRepo {
	return &CompanyPreferenceRepo{q: q}
}

// GetPreference devuelve el valor de la preferencia o "" si no existe.
func (r *CompanyPreferenceRepo) GetPreference(ctx context.Context, key string) (string, error) {
	var value *string
	err := r.q.QueryRow(ctx, `SELECT value FROM company_preferences WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if isNoRows(err) {
			return "", nil
		}
		return "", fmt.Errorf("get company preference %s: %w", key, err)
	}
	return derefStr(value), nil
}
