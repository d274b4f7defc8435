package entity

// RecordType tipo de registro del ERP.
type RecordType string

const (
	RecordTypeCustomer        RecordType = "customer"
	RecordTypeSalesOrder      RecordType = "salesorder"
	RecordTypeInvoice         RecordType = "invoice"
	RecordTypeCustomerPayment RecordType = "customerpayment"
	RecordTypeCreditMemo      RecordType = "creditmemo"
)

// IsFinancialTransaction indica si el tipo es Invoice, Customer Payment o Credit Memo.
func (t RecordType) IsFinancialTransaction() bool {
	switch t {
	case RecordTypeInvoice, RecordTypeCustomerPayment, RecordTypeCreditMemo:
		return true
	}
	return false
}

// IsTransaction indica si el registro tiene campos de cabecera (custbody_*).
func (t RecordType) IsTransaction() bool {
	return t == RecordTypeSalesOrder || t.IsFinancialTransaction()
}

// Valid indica si el tipo es uno de los que maneja el hook.
func (t RecordType) Valid() bool {
	return t == RecordTypeCustomer || t.IsTransaction()
}

// TriggerType tipo de evento de usuario que disparó el hook.
type TriggerType string

const (
	TriggerCreate TriggerType = "create"
	TriggerEdit   TriggerType = "edit"
	TriggerXEdit  TriggerType = "xedit" // edición en línea
	TriggerView   TriggerType = "view"
	TriggerCopy   TriggerType = "copy"
	TriggerDelete TriggerType = "delete"
)

// IsWrite indica si el trigger es create, edit o xedit (los únicos que procesan los hooks de guardado).
func (t TriggerType) IsWrite() bool {
	return t == TriggerCreate || t == TriggerEdit || t == TriggerXEdit
}

// FieldChanges valores a escribir en un registro, indexados por id de campo.
type FieldChanges map[string]any

// Set asigna un valor. Un nil explícito significa "limpiar el campo".
func (c FieldChanges) Set(field string, value any) {
	c[field] = value
}

// Merge copia los cambios de other sobre c.
func (c FieldChanges) Merge(other FieldChanges) {
	for k, v := range other {
		c[k] = v
	}
}
