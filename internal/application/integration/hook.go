package integration

import (
	"context"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

// Nombres de hook usados en logs y métricas.
const (
	HookBeforeLoad   = "before_load"
	HookBeforeSubmit = "before_submit"
	HookAfterSubmit  = "after_submit"
)

// HookConfig configuración explícita del hook (antes eran constantes del script).
type HookConfig struct {
	ServiceAccountEmail string
}

// Hook casos de uso de sincronización con el CRM disparados por el ciclo de vida de los registros.
type Hook struct {
	gate    Gate
	config  ConfigReader
	store   repository.RecordStore
	search  repository.SearchRepository
	lib     FinancialLibrary
	log     *logger.Logger
	metrics Metrics
}

// NewHook construye el hook. metrics puede ser nil.
func NewHook(
	cfg HookConfig,
	config ConfigReader,
	store repository.RecordStore,
	search repository.SearchRepository,
	lib FinancialLibrary,
	log *logger.Logger,
	metrics Metrics,
) *Hook {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Hook{
		gate:    NewGate(cfg.ServiceAccountEmail),
		config:  config,
		store:   store,
		search:  search,
		lib:     lib,
		log:     log.Component("integration.hook"),
		metrics: metrics,
	}
}

// report envía el error al log compartido del conector y registra la métrica del hook.
func (h *Hook) report(ctx context.Context, hook string, ev Event, res *Result, err error) {
	if err == nil {
		h.metrics.ObserveHook(hook, ev.Record.Type, "ok")
		return
	}
	res.Err = err
	h.metrics.ObserveHook(hook, ev.Record.Type, "error")
	h.lib.LogError(ctx, err)
}

// isCRMLinked consulta si el cliente tiene cuenta en el CRM.
func (h *Hook) isCRMLinked(ctx context.Context, customerID string) (bool, error) {
	values, err := h.search.LookupFields(ctx, entity.RecordTypeCustomer, customerID, entity.FieldCustomerCRMAccountID)
	if err != nil {
		return false, err
	}
	customer := entity.Customer{ID: customerID, CRMAccountID: values[entity.FieldCustomerCRMAccountID]}
	return customer.IsCRMLinked(), nil
}

// invalidateLookups descarta las consultas cacheadas del registro guardado. Un fallo solo se registra:
// la caché vence sola con su TTL.
func (h *Hook) invalidateLookups(ctx context.Context, recordType entity.RecordType, id string) {
	inv, ok := h.search.(repository.LookupInvalidator)
	if !ok || id == "" {
		return
	}
	if err := inv.Invalidate(ctx, recordType, id); err != nil {
		h.log.Warn().Err(err).Str("record_type", string(recordType)).Str("record_id", id).Msg("no se pudo invalidar la caché de consultas")
	}
}
