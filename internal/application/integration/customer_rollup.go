package integration

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/rollup"
)

// UpdateCustomerValues calcula los agregados financieros del cliente y los escribe en customer
// solo si alguno de los valores rastreados cambió respecto a lo guardado. Quien llama persiste el registro.
func (h *Hook) UpdateCustomerValues(ctx context.Context, customer *entity.Customer) (*entity.Customer, bool, error) {
	return h.updateCustomerValues(ctx, customer, false)
}

// updateCustomerValues con keepStoredSubscribers el conteo de suscriptores se toma de lo guardado
// (el registro en vuelo no lo trae).
func (h *Hook) updateCustomerValues(ctx context.Context, customer *entity.Customer, keepStoredSubscribers bool) (*entity.Customer, bool, error) {
	if customer == nil || customer.ID == "" {
		return customer, false, fmt.Errorf("rollup: %w: cliente sin id", domain.ErrInvalidInput)
	}
	id := customer.ID

	overdue, err := h.lib.GetOverdueBalance(ctx, id)
	if err != nil {
		return customer, false, fmt.Errorf("rollup: saldo vencido: %w", err)
	}
	invoiced, err := h.lib.GetTotalInvoiced(ctx, id)
	if err != nil {
		return customer, false, fmt.Errorf("rollup: total facturado: %w", err)
	}
	credited, err := h.lib.GetTotalCredits(ctx, id)
	if err != nil {
		return customer, false, fmt.Errorf("rollup: total acreditado: %w", err)
	}
	paid, err := h.lib.GetTotalPaid(ctx, id)
	if err != nil {
		return customer, false, fmt.Errorf("rollup: total pagado: %w", err)
	}
	timestamp := h.lib.GetCurrentTimestamp()

	// Se recarga para comparar contra lo guardado y no contra el objeto recibido.
	stored, err := h.store.LoadCustomer(ctx, id)
	if err != nil {
		return customer, false, fmt.Errorf("rollup: cargar cliente %s: %w", id, err)
	}
	if keepStoredSubscribers {
		customer.SubscriberCount = stored.SubscriberCount
	}

	next := entity.RollupSnapshot{
		SubscriberCount: customer.SubscriberCount,
		OverdueBalance:  overdue,
		TotalInvoiced:   invoiced,
		TotalCredited:   credited,
		TotalPaid:       paid,
	}
	h.log.Debug().
		Str("customer_id", id).
		Int64("old_subscribers", stored.SubscriberCount).
		Int64("subscribers", customer.SubscriberCount).
		Msg("comparando rollups")

	applied, changed := rollup.Apply(stored.Snapshot(), next)
	h.metrics.ObserveRollup(changed)
	if !changed {
		return customer, false, nil
	}
	customer.ApplyRollup(applied, timestamp)
	return customer, true, nil
}

// refreshCustomer recarga el cliente, recalcula rollups y guarda solo si hubo cambio.
func (h *Hook) refreshCustomer(ctx context.Context, customerID string) (bool, error) {
	customer, err := h.store.LoadCustomer(ctx, customerID)
	if err != nil {
		return false, fmt.Errorf("cargar cliente %s: %w", customerID, err)
	}
	customer, changed, err := h.UpdateCustomerValues(ctx, customer)
	if err != nil {
		return false, err
	}
	if !changed {
		h.log.Debug().Str("customer_id", customerID).Msg("rollups sin cambios, no se guarda")
		return false, nil
	}
	if _, err := h.store.SaveCustomer(ctx, customer); err != nil {
		return false, fmt.Errorf("guardar cliente %s: %w", customerID, err)
	}
	h.log.Debug().Str("customer_id", customerID).Msg("customer updated")
	return true, nil
}

// syncStoredCustomer lleva al almacén el conteo de suscriptores y los rollups que el registro en vuelo
// va a guardar, para que la siguiente comparación parta de ellos. El resto de la fila no se toca.
func (h *Hook) syncStoredCustomer(ctx context.Context, customer *entity.Customer) error {
	stored, err := h.store.LoadCustomer(ctx, customer.ID)
	if err != nil {
		return fmt.Errorf("cargar cliente %s: %w", customer.ID, err)
	}
	stored.SubscriberCount = customer.SubscriberCount
	stored.ApplyRollup(customer.Snapshot(), customer.LastSyncAt)
	if _, err := h.store.SaveCustomer(ctx, stored); err != nil {
		return fmt.Errorf("guardar cliente %s: %w", customer.ID, err)
	}
	return nil
}
