package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
)

var _ repository.FinancialRepository = (*FinancialRepo)(nil)

// FinancialRepo agregados financieros por cliente sobre la tabla transactions.
// Los montos se convierten a moneda base con exchange_rate y se redondean a 2 decimales.
type FinancialRepo struct {
	q Querier
}

// NewFinancialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinancialRepository(q Querier) *FinancialRepo {
	return &FinancialRepo{q: q}
}

// OverdueBalance saldo pendiente de facturas vencidas.
func (r *FinancialRepo) OverdueBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(ROUND(SUM(amount_remaining * exchange_rate), 2), 0)
		FROM transactions
		WHERE entity_id = $1 AND type = $2
		  AND status <> 'voided'
		  AND amount_remaining > 0
		  AND due_date < CURRENT_DATE`
	return r.sum(ctx, "overdue balance", query, customerID, string(entity.RecordTypeInvoice))
}

// TotalInvoiced total facturado.
func (r *FinancialRepo) TotalInvoiced(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return r.totalByType(ctx, "total invoiced", customerID, entity.RecordTypeInvoice)
}

// TotalCredited total de notas crédito.
func (r *FinancialRepo) TotalCredited(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return r.totalByType(ctx, "total credited", customerID, entity.RecordTypeCreditMemo)
}

// TotalPaid total de pagos recibidos.
func (r *FinancialRepo) TotalPaid(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return r.totalByType(ctx, "total paid", customerID, entity.RecordTypeCustomerPayment)
}

func (r *FinancialRepo) totalByType(ctx context.Context, what, customerID string, t entity.RecordType) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(ROUND(SUM(amount * exchange_rate), 2), 0)
		FROM transactions
		WHERE entity_id = $1 AND type = $2 AND status <> 'voided'`
	return r.sum(ctx, what, query, customerID, string(t))
}

func (r *FinancialRepo) sum(ctx context.Context, what, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", what, err)
	}
	return total, nil
}
