package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// CustomerRepo lectura y escritura de los campos de sincronización del cliente.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene el cliente. Devuelve domain.ErrNotFound si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, crm_account_id, subscriber_count,
		       overdue_balance, total_invoiced, total_credited, total_paid, sync_date_time
		FROM customers WHERE id = $1`
	var (
		c            entity.Customer
		crmAccountID *string
		syncAt       *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &crmAccountID, &c.SubscriberCount,
		&c.OverdueBalance, &c.TotalInvoiced, &c.TotalCredited, &c.TotalPaid, &syncAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.CRMAccountID = derefStr(crmAccountID)
	c.LastSyncAt = derefStr(syncAt)
	return &c, nil
}

// Update reescribe los campos de sincronización. Devuelve domain.ErrNotFound si no hay fila.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET crm_account_id = $2, subscriber_count = $3,
		    overdue_balance = $4, total_invoiced = $5, total_credited = $6, total_paid = $7,
		    sync_date_time = $8, updated_at = NOW()
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, nullIfEmpty(c.CRMAccountID), c.SubscriberCount,
		c.OverdueBalance, c.TotalInvoiced, c.TotalCredited, c.TotalPaid,
		nullIfEmpty(c.LastSyncAt),
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}
