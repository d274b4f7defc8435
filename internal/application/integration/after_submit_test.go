package integration_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-sync-hook/internal/application/integration"
	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

func tranEvent(trigger entity.TriggerType, rt entity.RecordType, id string, fields map[string]any, sublists map[string][]map[string]any) integration.Event {
	return integration.Event{
		Trigger: trigger,
		Exec:    uiUser(),
		Record:  integration.Record{Type: rt, ID: id, Fields: fields, Sublists: sublists},
	}
}

// Escenario: factura creada para un cliente vinculado al CRM.
func TestAfterSubmit_FacturaClienteVinculado_RecalculaYGuarda(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 10, "0", "0", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"
	f.lib.set("42", "0", "250", "0", "0")

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeInvoice, "INV-1",
		map[string]any{entity.FieldEntity: "42"}, nil))

	require.NoError(t, res.Err)
	assert.True(t, res.CustomerUpdated)
	require.Len(t, f.store.saved, 1)
	saved := f.store.saved[0]
	assert.Equal(t, "42", saved.ID)
	assert.True(t, decimal.NewFromInt(250).Equal(saved.TotalInvoiced))
	assert.Equal(t, testTimestamp, saved.LastSyncAt)
	assert.Empty(t, f.lib.processed, "una factura no procesa líneas de aplicación")
}

func TestAfterSubmit_RollupsSinCambios_NoGuarda(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 10, "0", "250", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"
	f.lib.set("42", "0", "250", "0", "0")

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerEdit, entity.RecordTypeInvoice, "INV-1",
		map[string]any{entity.FieldEntity: "42"}, nil))

	require.NoError(t, res.Err)
	assert.False(t, res.CustomerUpdated)
	assert.Empty(t, f.store.saved)
}

func TestAfterSubmit_ClienteNoVinculado_NoRecalcula(t *testing.T) {
	f := newFixture(customer("42", "", 0, "0", "0", "0", "0"))

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeInvoice, "INV-1",
		map[string]any{entity.FieldEntity: "42"}, nil))

	require.NoError(t, res.Err)
	assert.Zero(t, f.lib.rollupCalls)
	assert.Zero(t, f.store.loads)
}

// Escenario: nota crédito de $100 aplicada a una factura de $100 y a otra de $150.
func TestAfterSubmit_NotaCredito_MarcaAcreditadaEnSuTotalidad(t *testing.T) {
	f := newFixture()

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeCreditMemo, "CM-1",
		map[string]any{entity.FieldEntity: "42"},
		map[string][]map[string]any{
			entity.SublistApply: {
				applyLine(entity.TranTypeInvoice, "INV-100", true, "100.00", "100"),
				applyLine(entity.TranTypeInvoice, "INV-150", true, "100", "150"),
				applyLine(entity.TranTypeInvoice, "INV-NOAPLICADA", false, "50", "50"),
			},
		}))

	require.NoError(t, res.Err)
	require.Len(t, f.store.submits, 1, "solo la factura cubierta exactamente se marca")
	call := f.store.submits[0]
	assert.Equal(t, entity.RecordTypeInvoice, call.Type)
	assert.Equal(t, "INV-100", call.ID)
	assert.Equal(t, entity.FieldChanges{entity.FieldCreditedInFull: true}, call.Values)
	assert.Empty(t, f.lib.processed, "cliente no vinculado: no se encola nada")
}

func TestAfterSubmit_NotaCredito_MontoIlegibleEnLineaIrrelevante_NoAborta(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 1, "0", "0", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"
	f.lib.set("42", "0", "100", "100", "0")

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeCreditMemo, "CM-1",
		map[string]any{entity.FieldEntity: "42"},
		map[string][]map[string]any{
			entity.SublistApply: {
				applyLine(entity.TranTypeInvoice, "INV-SUCIA", false, "n/a", "??"),
				applyLine("Journal", "JE-1", true, "abc", "1"),
				applyLine(entity.TranTypeInvoice, "INV-100", true, "100", "100"),
			},
		}))

	require.NoError(t, res.Err)
	assert.True(t, res.CustomerUpdated)
	require.Len(t, f.store.submits, 1)
	assert.Equal(t, "INV-100", f.store.submits[0].ID)
}

func TestAfterSubmit_NotaCredito_MontoIlegibleEnFacturaAplicada_SeReporta(t *testing.T) {
	f := newFixture()

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeCreditMemo, "CM-1",
		map[string]any{entity.FieldEntity: "42"},
		map[string][]map[string]any{
			entity.SublistApply: {applyLine(entity.TranTypeInvoice, "INV-1", true, "cien", "100")},
		}))

	assert.ErrorIs(t, res.Err, domain.ErrInvalidInput)
	assert.Empty(t, f.store.submits)
}

func TestAfterSubmit_EdicionDeCliente_InvalidaConsultasCacheadas(t *testing.T) {
	f := newFixture()
	exec := entity.ExecutionContext{UserEmail: testServiceAccount, Context: entity.ContextWebServices}

	res := f.hook.AfterSubmit(context.Background(), integration.Event{
		Trigger: entity.TriggerXEdit,
		Exec:    exec,
		Record: integration.Record{
			Type:   entity.RecordTypeCustomer,
			ID:     "42",
			Fields: map[string]any{entity.FieldCustomerCRMAccountID: "001NEW"},
		},
	})

	require.NoError(t, res.Err)
	assert.Equal(t, []string{"customer:42"}, f.search.invalidated, "la vinculación escrita por la integración también invalida")
	assert.Zero(t, f.lib.rollupCalls)
}

func TestAfterSubmit_NotaCreditoClienteVinculado_EncolaFacturasYRecalcula(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 1, "0", "0", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"
	f.lib.set("42", "0", "300", "100", "0")

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerEdit, entity.RecordTypeCreditMemo, "CM-1",
		map[string]any{entity.FieldEntity: "42"},
		map[string][]map[string]any{
			entity.SublistApply: {
				applyLine(entity.TranTypeInvoice, "INV-1", true, "100", "100"),
				applyLine(entity.TranTypeInvoice, "INV-2", false, "0", "200"),
			},
		}))

	require.NoError(t, res.Err)
	assert.Equal(t, []entity.FinTranRequest{{Type: entity.RecordTypeInvoice, ID: "INV-1", IsCreate: false}}, f.lib.processed)
	assert.Len(t, f.store.saved, 1)
	assert.Len(t, f.store.submits, 1)
}

func TestAfterSubmit_PagoSoloConCreditos_ProcesaCadaNotaAplicada(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 1, "0", "0", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeCustomerPayment, "",
		map[string]any{entity.FieldCustomer: 42},
		map[string][]map[string]any{
			entity.SublistCredit: {
				applyLine(entity.TranTypeCreditMemo, "CM-1", true, "10", "10"),
				applyLine(entity.TranTypeCreditMemo, "CM-2", "T", "5", "20"),
				applyLine(entity.TranTypeCreditMemo, "CM-3", false, "0", "20"),
				applyLine("CustPymt", "PYMT-9", true, "7", "7"),
			},
		}))

	require.NoError(t, res.Err)
	assert.Equal(t, []entity.FinTranRequest{
		{Type: entity.RecordTypeCreditMemo, ID: "CM-1"},
		{Type: entity.RecordTypeCreditMemo, ID: "CM-2"},
	}, f.lib.processed)
}

func TestAfterSubmit_PagoConId_NoProcesaCreditosPeroSiFacturas(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 1, "0", "0", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerEdit, entity.RecordTypeCustomerPayment, "PYMT-1",
		map[string]any{entity.FieldCustomer: "42", entity.FieldEntity: "999"},
		map[string][]map[string]any{
			entity.SublistCredit: {applyLine(entity.TranTypeCreditMemo, "CM-1", true, "10", "10")},
			entity.SublistApply: {
				applyLine(entity.TranTypeInvoice, "INV-1", true, "40", "40"),
				applyLine(entity.TranTypeInvoice, "INV-2", true, "10", "60"),
			},
		}))

	require.NoError(t, res.Err)
	assert.Equal(t, []entity.FinTranRequest{
		{Type: entity.RecordTypeInvoice, ID: "INV-1"},
		{Type: entity.RecordTypeInvoice, ID: "INV-2"},
	}, f.lib.processed)
	assert.Empty(t, f.store.submits, "el pago nunca marca acreditada en su totalidad")
}

func TestAfterSubmit_OrdenDeVentaCreada_RecalculaClienteVinculado(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 1, "0", "0", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"
	f.lib.set("42", "5", "5", "0", "0")

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeSalesOrder, "SO-1",
		map[string]any{entity.FieldEntity: "42"}, nil))

	require.NoError(t, res.Err)
	assert.True(t, res.CustomerUpdated)
	assert.Len(t, f.store.saved, 1)
}

func TestAfterSubmit_OrdenDeVentaEditada_NoHaceNada(t *testing.T) {
	f := newFixture(customer("42", "001CRM", 1, "0", "0", "0", "0"))
	f.search.crmAccounts["42"] = "001CRM"

	f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerEdit, entity.RecordTypeSalesOrder, "SO-1",
		map[string]any{entity.FieldEntity: "42"}, nil))

	assert.Zero(t, f.lib.rollupCalls)
}

func TestAfterSubmit_SinCliente_SeReporta(t *testing.T) {
	f := newFixture()

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeInvoice, "INV-1", nil, nil))

	assert.ErrorIs(t, res.Err, domain.ErrMissingCustomer)
	assert.Len(t, f.lib.logged, 1)
}

func TestAfterSubmit_FalloDeBusqueda_SeReporta(t *testing.T) {
	f := newFixture()
	f.search.err = errBoom

	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerCreate, entity.RecordTypeCreditMemo, "CM-1",
		map[string]any{entity.FieldEntity: "42"},
		map[string][]map[string]any{entity.SublistApply: {applyLine(entity.TranTypeInvoice, "INV-1", true, "1", "1")}}))

	assert.ErrorIs(t, res.Err, errBoom)
	assert.Len(t, f.lib.logged, 1)
	assert.Empty(t, f.store.submits, "tras el error no se continúa con el resto del flujo")
}

func TestAfterSubmit_TriggerNoEscritura_NoHaceNada(t *testing.T) {
	f := newFixture()
	res := f.hook.AfterSubmit(context.Background(), tranEvent(entity.TriggerDelete, entity.RecordTypeInvoice, "INV-1",
		map[string]any{entity.FieldEntity: "42"}, nil))

	assert.NoError(t, res.Err)
	assert.Empty(t, f.lib.logged)
}
