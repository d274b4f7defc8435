package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
)

var _ repository.ErrorLogRepository = (*ErrorLogRepo)(nil)

// ErrorLogRepo tabla error_logs, compartida con el resto de scripts del conector.
type ErrorLogRepo struct {
	q Querier
}

// NewErrorLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewErrorLogRepository(q Querier) *ErrorLogRepo {
	return &ErrorLogRepo{q: q}
}

// Insert guarda un error.
func (r *ErrorLogRepo) Insert(ctx context.Context, source, message string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO error_logs (id, source, message, created_at) VALUES ($1, $2, $3, NOW())`,
		uuid.New(), source, message,
	)
	if err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	return nil
}
