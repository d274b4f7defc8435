package integration

import (
	"strings"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// Gate decide si una escritura debe procesarse. Solo se omiten las escrituras automáticas
// del conector del CRM: su cuenta de servicio, vía web services y fuera de una importación CSV.
// Sus ediciones manuales (interfaz, CSV) sí pasan.
type Gate struct {
	serviceAccount string
}

// NewGate construye el gate con el email de la cuenta de servicio de la integración.
func NewGate(serviceAccountEmail string) Gate {
	return Gate{serviceAccount: strings.TrimSpace(serviceAccountEmail)}
}

// Allows devuelve false solo para escrituras automáticas de la integración.
func (g Gate) Allows(exec entity.ExecutionContext) bool {
	return !g.suppressed(exec)
}

func (g Gate) suppressed(exec entity.ExecutionContext) bool {
	if g.serviceAccount == "" {
		return false
	}
	isServiceAccount := strings.EqualFold(strings.TrimSpace(exec.UserEmail), g.serviceAccount)
	return isServiceAccount &&
		exec.Context == entity.ContextWebServices &&
		exec.Context != entity.ContextCSVImport
}
