package integration

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// BeforeSubmit limpia el vínculo de transacción financiera al crear, sella las transacciones financieras
// y recalcula los rollups del cliente editado. Nunca bloquea el guardado.
func (h *Hook) BeforeSubmit(ctx context.Context, ev Event) Result {
	res := newResult()
	err := h.beforeSubmit(ctx, ev, &res)
	h.report(ctx, HookBeforeSubmit, ev, &res, err)
	return res
}

func (h *Hook) beforeSubmit(ctx context.Context, ev Event, res *Result) error {
	if !ev.Trigger.IsWrite() {
		return nil
	}
	rec := ev.Record
	if ev.Trigger == entity.TriggerCreate && rec.Type.IsTransaction() {
		res.Changes.Set(entity.FieldTranFinTranRef, nil)
	}
	if !h.gate.Allows(ev.Exec) {
		h.log.Debug().
			Str("record_type", string(rec.Type)).
			Str("record_id", rec.ID).
			Str("user", ev.Exec.UserEmail).
			Msg("escritura automática de la integración, se omite")
		return nil
	}

	switch {
	case rec.Type == entity.RecordTypeCustomer:
		if ev.Trigger == entity.TriggerCreate {
			return nil
		}
		customer, hasSubscribers, err := customerFromRecord(rec)
		if err != nil {
			return fmt.Errorf("before submit: %w", err)
		}
		updated, changed, err := h.updateCustomerValues(ctx, customer, !hasSubscribers)
		if err != nil {
			return fmt.Errorf("before submit: cliente %s: %w", rec.ID, err)
		}
		if changed {
			res.Changes.Merge(updated.RollupChanges())
			res.CustomerUpdated = true
			if err := h.syncStoredCustomer(ctx, updated); err != nil {
				return fmt.Errorf("before submit: %w", err)
			}
		}
	case rec.Type.IsFinancialTransaction():
		res.Changes.Set(entity.FieldTranSyncDateTime, h.lib.GetCurrentTimestamp())
	}
	return nil
}
