package entity

import "github.com/shopspring/decimal"

// Customer proyección tipada del cliente con los campos de sincronización con el CRM.
type Customer struct {
	ID              string
	CRMAccountID    string // vacío = cliente no vinculado al CRM
	SubscriberCount int64
	OverdueBalance  decimal.Decimal
	TotalInvoiced   decimal.Decimal
	TotalCredited   decimal.Decimal
	TotalPaid       decimal.Decimal
	LastSyncAt      string // sello de tiempo con zona horaria, formato de la plataforma
}

// IsCRMLinked indica si el cliente tiene cuenta en el CRM.
func (c *Customer) IsCRMLinked() bool {
	return c != nil && c.CRMAccountID != ""
}

// Snapshot devuelve los valores que controlan la reescritura de rollups.
func (c *Customer) Snapshot() RollupSnapshot {
	return RollupSnapshot{
		SubscriberCount: c.SubscriberCount,
		OverdueBalance:  c.OverdueBalance,
		TotalInvoiced:   c.TotalInvoiced,
		TotalCredited:   c.TotalCredited,
		TotalPaid:       c.TotalPaid,
	}
}

// ApplyRollup escribe los cuatro agregados y el sello de tiempo.
func (c *Customer) ApplyRollup(s RollupSnapshot, timestamp string) {
	c.OverdueBalance = s.OverdueBalance
	c.TotalInvoiced = s.TotalInvoiced
	c.TotalCredited = s.TotalCredited
	c.TotalPaid = s.TotalPaid
	c.LastSyncAt = timestamp
}

// RollupChanges campos de rollup como cambios a aplicar sobre el registro en vuelo.
func (c *Customer) RollupChanges() FieldChanges {
	return FieldChanges{
		FieldCustomerSyncDateTime:  c.LastSyncAt,
		FieldCustomerOverdueBal:    c.OverdueBalance,
		FieldCustomerTotalInvoiced: c.TotalInvoiced,
		FieldCustomerTotalCredited: c.TotalCredited,
		FieldCustomerTotalPaid:     c.TotalPaid,
	}
}

// RollupSnapshot valores comparados para decidir si se reescriben los rollups.
type RollupSnapshot struct {
	SubscriberCount int64
	OverdueBalance  decimal.Decimal
	TotalInvoiced   decimal.Decimal
	TotalCredited   decimal.Decimal
	TotalPaid       decimal.Decimal
}
