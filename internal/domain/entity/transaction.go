package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tipos de transacción tal como aparecen en las líneas de aplicación.
const (
	TranTypeInvoice    = "CustInvc"
	TranTypeCreditMemo = "CustCred"
)

// SalesOrder proyección de la orden de venta.
type SalesOrder struct {
	ID            string
	EntityID      string
	OpportunityID string
	CRMLink       string
}

// Transaction proyección de Invoice, Customer Payment o Credit Memo.
type Transaction struct {
	Type        RecordType
	ID          string // vacío en pagos que solo aplican créditos
	EntityID    string // cliente dueño de la transacción
	SyncAt      string
	ApplyLines  []ApplyLine
	CreditLines []ApplyLine
}

// ApplyLine línea de aplicación de un monto contra otra transacción.
type ApplyLine struct {
	TranType string
	TargetID string
	Applied  bool
	Amount   string // texto tal como llega en la sublista
	Total    string // total de la transacción destino
}

// AppliedTo indica si la línea está marcada y apunta al tipo indicado.
func (l ApplyLine) AppliedTo(tranType string) bool {
	return l.Applied && l.TranType == tranType && l.TargetID != ""
}

// SettlesInFull indica si el monto aplicado cubre exactamente el total destino.
// Un monto vacío vale cero; uno ilegible devuelve error.
func (l ApplyLine) SettlesInFull() (bool, error) {
	amount, err := parseAmount(l.Amount)
	if err != nil {
		return false, fmt.Errorf("monto: %w", err)
	}
	total, err := parseAmount(l.Total)
	if err != nil {
		return false, fmt.Errorf("total: %w", err)
	}
	return amount.Equal(total), nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// FinTranRequest parámetros para procesar una transacción financiera hacia el CRM.
type FinTranRequest struct {
	Type     RecordType
	ID       string
	IsCreate bool
}
