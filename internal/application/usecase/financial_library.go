package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

// ErrorSource origen con el que se registran los errores del hook en error_logs.
const ErrorSource = "crm_sync_hook"

// Timestamper fuente de sellos de tiempo con la zona horaria de la compañía.
type Timestamper interface {
	Timestamp() string
}

// FinancialLibrary agregados financieros, cola hacia el CRM y log de errores compartido del conector.
type FinancialLibrary struct {
	financial repository.FinancialRepository
	queue     repository.FinTranQueue
	errorLogs repository.ErrorLogRepository
	clock     Timestamper
	log       *logger.Logger
}

// NewFinancialLibrary construye la biblioteca con sus puertos.
func NewFinancialLibrary(
	financial repository.FinancialRepository,
	queue repository.FinTranQueue,
	errorLogs repository.ErrorLogRepository,
	clock Timestamper,
	log *logger.Logger,
) *FinancialLibrary {
	if log == nil {
		log = logger.Nop()
	}
	return &FinancialLibrary{
		financial: financial,
		queue:     queue,
		errorLogs: errorLogs,
		clock:     clock,
		log:       log.Component("usecase.financial_library"),
	}
}

func (l *FinancialLibrary) GetOverdueBalance(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return l.financial.OverdueBalance(ctx, customerID)
}

func (l *FinancialLibrary) GetTotalInvoiced(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return l.financial.TotalInvoiced(ctx, customerID)
}

func (l *FinancialLibrary) GetTotalCredits(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return l.financial.TotalCredited(ctx, customerID)
}

func (l *FinancialLibrary) GetTotalPaid(ctx context.Context, customerID string) (decimal.Decimal, error) {
	return l.financial.TotalPaid(ctx, customerID)
}

// GetCurrentTimestamp sello de tiempo actual.
func (l *FinancialLibrary) GetCurrentTimestamp() string {
	return l.clock.Timestamp()
}

// ProcessFinancialTransaction encola la transacción y devuelve el id de sincronización.
func (l *FinancialLibrary) ProcessFinancialTransaction(ctx context.Context, req entity.FinTranRequest) (string, error) {
	id, err := l.queue.Enqueue(ctx, req)
	if err != nil {
		return "", fmt.Errorf("procesar transacción %s %s: %w", req.Type, req.ID, err)
	}
	l.log.Debug().
		Str("record_type", string(req.Type)).
		Str("record_id", req.ID).
		Bool("is_create", req.IsCreate).
		Str("fin_tran_id", id).
		Msg("transacción encolada")
	return id, nil
}

// LogError deja el error en el log del proceso y en error_logs. Si la inserción falla solo se loguea.
func (l *FinancialLibrary) LogError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	l.log.Error().Err(err).Msg("error en hook de sincronización")
	if insErr := l.errorLogs.Insert(ctx, ErrorSource, err.Error()); insErr != nil {
		l.log.Warn().Err(insErr).Msg("no se pudo guardar en error_logs")
	}
}
