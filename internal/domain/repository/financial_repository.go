package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// FinancialRepository agregados por cliente, en moneda base de la compañía.
// Un cliente sin transacciones devuelve cero, no error.
type FinancialRepository interface {
	OverdueBalance(ctx context.Context, customerID string) (decimal.Decimal, error)
	TotalInvoiced(ctx context.Context, customerID string) (decimal.Decimal, error)
	TotalCredited(ctx context.Context, customerID string) (decimal.Decimal, error)
	TotalPaid(ctx context.Context, customerID string) (decimal.Decimal, error)
}

// FinTranQueue cola de transacciones financieras pendientes de enviar al CRM.
type FinTranQueue interface {
	// Enqueue registra (o re-encola) la transacción y devuelve el id del registro de sincronización.
	Enqueue(ctx context.Context, req entity.FinTranRequest) (string, error)
}

// ErrorLogRepository registro persistente de errores del conector.
type ErrorLogRepository interface {
	Insert(ctx context.Context, source, message string) error
}
