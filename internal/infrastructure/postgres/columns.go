package postgres

import (
	"fmt"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

type columnKind int

const (
	kindText columnKind = iota
	kindNumeric
	kindInt
	kindBool
)

type column struct {
	name string
	kind columnKind
}

// textExpr expresión SELECT que devuelve la columna como texto, con el formato de la plataforma
// para booleanos ("T"/"F") y "" para nulos.
func (c column) textExpr() string {
	switch c.kind {
	case kindBool:
		return fmt.Sprintf("CASE WHEN %s THEN 'T' ELSE 'F' END", c.name)
	default:
		return fmt.Sprintf("COALESCE(%s::text, '')", c.name)
	}
}

// Lista explícita de campos accesibles; cualquier otro id se rechaza antes de tocar SQL.
var customerColumns = map[string]column{
	entity.FieldCustomerCRMAccountID:  {"crm_account_id", kindText},
	entity.FieldCustomerSubscribers:   {"subscriber_count", kindInt},
	entity.FieldCustomerOverdueBal:    {"overdue_balance", kindNumeric},
	entity.FieldCustomerTotalInvoiced: {"total_invoiced", kindNumeric},
	entity.FieldCustomerTotalCredited: {"total_credited", kindNumeric},
	entity.FieldCustomerTotalPaid:     {"total_paid", kindNumeric},
	entity.FieldCustomerSyncDateTime:  {"sync_date_time", kindText},
}

var transactionColumns = map[string]column{
	entity.FieldEntity:           {"entity_id", kindText},
	entity.FieldCustomer:         {"entity_id", kindText},
	entity.FieldSalesOrderOppID:  {"opportunity_id", kindText},
	entity.FieldSalesOrderLink:   {"crm_link", kindText},
	entity.FieldTranSyncDateTime: {"sync_date_time", kindText},
	entity.FieldTranFinTranRef:   {"fin_tran_ref", kindText},
	entity.FieldCreditedInFull:   {"credited_in_full", kindBool},
	entity.LineFieldTotal:        {"amount", kindNumeric},
}

// tableFor devuelve la tabla y el mapa de columnas del tipo de registro.
func tableFor(recordType entity.RecordType) (string, map[string]column, error) {
	switch {
	case recordType == entity.RecordTypeCustomer:
		return "customers", customerColumns, nil
	case recordType.IsTransaction():
		return "transactions", transactionColumns, nil
	}
	return "", nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, recordType)
}

// resolveColumns traduce ids de campo a columnas; falla con el primer campo desconocido.
func resolveColumns(recordType entity.RecordType, fields []string) (string, []column, error) {
	table, cols, err := tableFor(recordType)
	if err != nil {
		return "", nil, err
	}
	out := make([]column, 0, len(fields))
	for _, f := range fields {
		c, ok := cols[f]
		if !ok {
			return "", nil, fmt.Errorf("%w: %w: %s.%s", domain.ErrInvalidInput, domain.ErrUnknownField, recordType, f)
		}
		out = append(out, c)
	}
	return table, out, nil
}
