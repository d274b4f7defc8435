package integration

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// customerFromRecord proyecta el cliente en vuelo. hasSubscribers es false cuando el payload
// no trae el conteo de suscriptores (ediciones en línea envían solo los campos modificados).
func customerFromRecord(rec Record) (customer *entity.Customer, hasSubscribers bool, err error) {
	if rec.Type != entity.RecordTypeCustomer {
		return nil, false, fmt.Errorf("%w: se esperaba customer, llegó %q", domain.ErrUnsupportedType, rec.Type)
	}
	c := &entity.Customer{
		ID:           rec.ID,
		CRMAccountID: fieldString(rec.Value(entity.FieldCustomerCRMAccountID)),
		LastSyncAt:   fieldString(rec.Value(entity.FieldCustomerSyncDateTime)),
	}
	if rec.Has(entity.FieldCustomerSubscribers) {
		n, err := fieldInt(rec.Value(entity.FieldCustomerSubscribers))
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", entity.FieldCustomerSubscribers, err)
		}
		c.SubscriberCount = n
		hasSubscribers = true
	}
	return c, hasSubscribers, nil
}

// salesOrderFromRecord proyecta la orden de venta.
func salesOrderFromRecord(rec Record) *entity.SalesOrder {
	return &entity.SalesOrder{
		ID:            rec.ID,
		EntityID:      fieldString(rec.Value(entity.FieldEntity)),
		OpportunityID: fieldString(rec.Value(entity.FieldSalesOrderOppID)),
		CRMLink:       fieldString(rec.Value(entity.FieldSalesOrderLink)),
	}
}

// transactionFromRecord proyecta Invoice, Customer Payment o Credit Memo con sus líneas de aplicación.
func transactionFromRecord(rec Record) (*entity.Transaction, error) {
	if !rec.Type.IsFinancialTransaction() {
		return nil, fmt.Errorf("%w: %q no es transacción financiera", domain.ErrUnsupportedType, rec.Type)
	}
	entityField := entity.FieldEntity
	if rec.Type == entity.RecordTypeCustomerPayment {
		entityField = entity.FieldCustomer
	}
	tran := &entity.Transaction{
		Type:     rec.Type,
		ID:       rec.ID,
		EntityID: fieldString(rec.Value(entityField)),
		SyncAt:   fieldString(rec.Value(entity.FieldTranSyncDateTime)),
	}
	tran.ApplyLines = applyLines(rec.Lines(entity.SublistApply))
	tran.CreditLines = applyLines(rec.Lines(entity.SublistCredit))
	return tran, nil
}

// applyLines copia montos y totales como texto; se interpretan solo al comparar.
func applyLines(lines []map[string]any) []entity.ApplyLine {
	if len(lines) == 0 {
		return nil
	}
	out := make([]entity.ApplyLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, entity.ApplyLine{
			TranType: fieldString(line[entity.LineFieldTranType]),
			TargetID: fieldString(line[entity.LineFieldInternalID]),
			Applied:  fieldBool(line[entity.LineFieldApply]),
			Amount:   fieldString(line[entity.LineFieldAmount]),
			Total:    fieldString(line[entity.LineFieldTotal]),
		})
	}
	return out
}

// fieldString normaliza ids y textos; los números llegan como json.Number o float64.
func fieldString(v any) string {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// fieldBool acepta true, "T" y "true" (la plataforma usa las tres formas).
func fieldBool(v any) bool {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	b, err := cast.ToBoolE(v)
	return err == nil && b
}

func fieldInt(v any) (int64, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: se esperaba entero: %v", domain.ErrInvalidInput, err)
	}
	return n, nil
}
