package rollup

import "github.com/jhoicas/crm-sync-hook/internal/domain/entity"

// Apply compara los valores guardados con los recién calculados (servicio de dominio).
// Devuelve el snapshot a persistir y si hubo cambio. Sin cambio se devuelve stored intacto,
// así una segunda aplicación con los mismos valores nunca provoca otra escritura.
func Apply(stored, next entity.RollupSnapshot) (entity.RollupSnapshot, bool) {
	if Equal(stored, next) {
		return stored, false
	}
	return next, true
}

// Equal compara los cinco valores rastreados. Los montos se comparan por valor decimal,
// por lo que 100 y 100.00 son iguales.
func Equal(a, b entity.RollupSnapshot) bool {
	return a.SubscriberCount == b.SubscriberCount &&
		a.OverdueBalance.Equal(b.OverdueBalance) &&
		a.TotalInvoiced.Equal(b.TotalInvoiced) &&
		a.TotalCredited.Equal(b.TotalCredited) &&
		a.TotalPaid.Equal(b.TotalPaid)
}
