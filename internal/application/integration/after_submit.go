package integration

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// AfterSubmit propaga el guardado: encola las transacciones aplicadas, recalcula los rollups del
// cliente vinculado al CRM y marca facturas acreditadas en su totalidad. El registro ya está
// guardado; los errores se reportan y no se revierte nada.
func (h *Hook) AfterSubmit(ctx context.Context, ev Event) Result {
	res := newResult()
	entityID, err := h.afterSubmit(ctx, ev, &res)
	if err != nil {
		h.log.Error().
			Str("context_type", string(ev.Trigger)).
			Str("entity_id", entityID).
			Str("record_id", ev.Record.ID).
			Str("record_type", string(ev.Record.Type)).
			Err(err).
			Msg("After Submit Error Details")
	}
	h.report(ctx, HookAfterSubmit, ev, &res, err)
	return res
}

// afterSubmit devuelve el id del cliente resuelto para enriquecer el log de error.
func (h *Hook) afterSubmit(ctx context.Context, ev Event, res *Result) (string, error) {
	if !ev.Trigger.IsWrite() {
		return "", nil
	}
	rec := ev.Record
	switch {
	case rec.Type.IsFinancialTransaction():
		tran, err := transactionFromRecord(rec)
		if err != nil {
			return "", err
		}
		return tran.EntityID, h.afterSubmitTransaction(ctx, tran, res)
	case rec.Type == entity.RecordTypeCustomer:
		// La vinculación al CRM llega como edición del cliente, también desde la integración.
		h.invalidateLookups(ctx, rec.Type, rec.ID)
		return rec.ID, nil
	case rec.Type == entity.RecordTypeSalesOrder && ev.Trigger == entity.TriggerCreate:
		so := salesOrderFromRecord(rec)
		return so.EntityID, h.afterSubmitSalesOrder(ctx, so, res)
	}
	return "", nil
}

func (h *Hook) afterSubmitTransaction(ctx context.Context, tran *entity.Transaction, res *Result) error {
	if tran.EntityID == "" {
		return domain.ErrMissingCustomer
	}
	linked, err := h.isCRMLinked(ctx, tran.EntityID)
	if err != nil {
		return fmt.Errorf("lookup cliente %s: %w", tran.EntityID, err)
	}
	if linked {
		if tran.Type == entity.RecordTypeCustomerPayment && tran.ID == "" {
			// Pago que solo aplica créditos: la plataforma no le asigna id.
			h.log.Debug().Str("customer_id", tran.EntityID).Msg("payment with no id")
			if err := h.processApplied(ctx, tran.CreditLines, entity.TranTypeCreditMemo, entity.RecordTypeCreditMemo); err != nil {
				return err
			}
		}
		if tran.Type == entity.RecordTypeCustomerPayment || tran.Type == entity.RecordTypeCreditMemo {
			if err := h.processApplied(ctx, tran.ApplyLines, entity.TranTypeInvoice, entity.RecordTypeInvoice); err != nil {
				return err
			}
		}
		updated, err := h.refreshCustomer(ctx, tran.EntityID)
		if err != nil {
			return err
		}
		res.CustomerUpdated = updated
	}

	// Aplica a todos los clientes, estén o no vinculados al CRM.
	if tran.Type == entity.RecordTypeCreditMemo {
		return h.markCreditedInFull(ctx, tran)
	}
	return nil
}

func (h *Hook) afterSubmitSalesOrder(ctx context.Context, so *entity.SalesOrder, res *Result) error {
	if so.EntityID == "" {
		return domain.ErrMissingCustomer
	}
	linked, err := h.isCRMLinked(ctx, so.EntityID)
	if err != nil {
		return fmt.Errorf("lookup cliente %s: %w", so.EntityID, err)
	}
	if !linked {
		return nil
	}
	updated, err := h.refreshCustomer(ctx, so.EntityID)
	if err != nil {
		return err
	}
	res.CustomerUpdated = updated
	return nil
}

// processApplied encola cada línea marcada que apunta a tranType.
func (h *Hook) processApplied(ctx context.Context, lines []entity.ApplyLine, tranType string, target entity.RecordType) error {
	for _, line := range lines {
		if !line.AppliedTo(tranType) {
			continue
		}
		finTranID, err := h.lib.ProcessFinancialTransaction(ctx, entity.FinTranRequest{
			Type:     target,
			ID:       line.TargetID,
			IsCreate: false,
		})
		if err != nil {
			return fmt.Errorf("procesar %s %s: %w", target, line.TargetID, err)
		}
		h.metrics.ObserveFinTran(target)
		h.log.Debug().
			Str("target_type", string(target)).
			Str("target_id", line.TargetID).
			Str("fin_tran_id", finTranID).
			Msgf("applied to %s finTranId", target)
	}
	return nil
}

// markCreditedInFull marca las facturas cuyo total quedó cubierto exactamente por la nota crédito.
func (h *Hook) markCreditedInFull(ctx context.Context, tran *entity.Transaction) error {
	for _, line := range tran.ApplyLines {
		if !line.AppliedTo(entity.TranTypeInvoice) {
			continue
		}
		settled, err := line.SettlesInFull()
		if err != nil {
			return fmt.Errorf("factura %s: %w: %v", line.TargetID, domain.ErrInvalidInput, err)
		}
		if !settled {
			continue
		}
		err = h.store.SubmitFields(ctx, entity.RecordTypeInvoice, line.TargetID, entity.FieldChanges{
			entity.FieldCreditedInFull: true,
		})
		if err != nil {
			return fmt.Errorf("marcar factura %s acreditada: %w", line.TargetID, err)
		}
		h.log.Debug().Str("invoice_id", line.TargetID).Str("credit_memo_id", tran.ID).Msg("factura acreditada en su totalidad")
	}
	return nil
}
