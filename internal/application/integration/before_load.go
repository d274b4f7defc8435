package integration

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// BeforeLoad inyecta el enlace a la oportunidad del CRM en la orden de venta abierta desde la interfaz.
// Un error se reporta y la carga continúa.
func (h *Hook) BeforeLoad(ctx context.Context, ev Event) Result {
	res := newResult()
	err := h.beforeLoad(ctx, ev, res.Changes)
	h.report(ctx, HookBeforeLoad, ev, &res, err)
	return res
}

func (h *Hook) beforeLoad(ctx context.Context, ev Event, changes entity.FieldChanges) error {
	if !ev.Exec.IsInteractive() || ev.Record.Type != entity.RecordTypeSalesOrder {
		return nil
	}
	so := salesOrderFromRecord(ev.Record)
	if so.OpportunityID == "" {
		return nil
	}
	env := entity.EnvProduction
	if ev.Exec.IsSandbox() {
		env = entity.EnvSandbox
	}
	baseURL, err := h.config.GetCompanyURL(ctx, env)
	if err != nil {
		return fmt.Errorf("before load: url del CRM: %w", err)
	}
	if baseURL == "" {
		return fmt.Errorf("before load: %w (%s)", domain.ErrCRMURLNotDefined, env)
	}
	changes.Set(entity.FieldSalesOrderLink, OpportunityLink(baseURL, so.OpportunityID))
	return nil
}

// OpportunityLink arma el enlace profundo a la oportunidad. La URL base ya termina en "/".
func OpportunityLink(baseURL, opportunityID string) string {
	return baseURL + "Opportunity/" + opportunityID + "/view"
}
