package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
)

var _ repository.FinTranQueue = (*FinTranRepo)(nil)

// FinTranRepo cola fin_tran_sync. Encolar y enlazar la transacción se hacen en la misma tx.
type FinTranRepo struct {
	tx *TxRunner
}

// NewFinTranRepository construye el adaptador.
func NewFinTranRepository(tx *TxRunner) *FinTranRepo {
	return &FinTranRepo{tx: tx}
}

// Enqueue inserta o re-encola (tran_type, tran_id) y guarda el id de sincronización en la transacción.
// Un segundo envío de la misma transacción reutiliza el registro existente.
func (r *FinTranRepo) Enqueue(ctx context.Context, req entity.FinTranRequest) (string, error) {
	if req.ID == "" || !req.Type.IsFinancialTransaction() {
		return "", fmt.Errorf("fin tran: %w: %s %q", domain.ErrInvalidInput, req.Type, req.ID)
	}
	var syncID string
	err := r.tx.Run(ctx, func(q Querier) error {
		upsert := `
			INSERT INTO fin_tran_sync (id, tran_type, tran_id, is_create, status, attempts, requested_at, updated_at)
			VALUES ($1, $2, $3, $4, 'PENDING', 0, NOW(), NOW())
			ON CONFLICT (tran_type, tran_id) DO UPDATE
			SET status = 'PENDING',
			    is_create = fin_tran_sync.is_create OR EXCLUDED.is_create,
			    updated_at = NOW()
			RETURNING id::text`
		if err := q.QueryRow(ctx, upsert, uuid.New(), string(req.Type), req.ID, req.IsCreate).Scan(&syncID); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("fin tran %s %s: carrera al encolar: %w", req.Type, req.ID, err)
			}
			return fmt.Errorf("enqueue fin tran: %w", err)
		}
		link := `UPDATE transactions SET fin_tran_ref = $3, updated_at = NOW() WHERE id = $1 AND type = $2`
		if _, err := q.Exec(ctx, link, req.ID, string(req.Type), syncID); err != nil {
			return fmt.Errorf("link fin tran: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return syncID, nil
}
