package integration

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// ConfigReader resuelve la URL base del CRM para el ambiente indicado.
type ConfigReader interface {
	GetCompanyURL(ctx context.Context, env entity.EnvKind) (string, error)
}

// FinancialLibrary biblioteca compartida de agregados financieros y utilidades del conector.
// Los montos se devuelven en la moneda base de la compañía.
type FinancialLibrary interface {
	GetOverdueBalance(ctx context.Context, customerID string) (decimal.Decimal, error)
	GetTotalInvoiced(ctx context.Context, customerID string) (decimal.Decimal, error)
	GetTotalCredits(ctx context.Context, customerID string) (decimal.Decimal, error)
	GetTotalPaid(ctx context.Context, customerID string) (decimal.Decimal, error)
	// GetCurrentTimestamp sello de tiempo con la zona horaria de la compañía.
	GetCurrentTimestamp() string
	// ProcessFinancialTransaction encola la transacción para sincronizarla con el CRM y devuelve el id del registro de sincronización.
	ProcessFinancialTransaction(ctx context.Context, req entity.FinTranRequest) (string, error)
	// LogError registra el error en el log compartido del conector.
	LogError(ctx context.Context, err error)
}

// Metrics observaciones del hook. La implementación nula es válida.
type Metrics interface {
	ObserveHook(hook string, recordType entity.RecordType, outcome string)
	ObserveRollup(changed bool)
	ObserveFinTran(recordType entity.RecordType)
}

type nopMetrics struct{}

func (nopMetrics) ObserveHook(string, entity.RecordType, string) {}
func (nopMetrics) ObserveRollup(bool)                            {}
func (nopMetrics) ObserveFinTran(entity.RecordType)              {}
