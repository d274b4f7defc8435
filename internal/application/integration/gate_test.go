package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-sync-hook/internal/application/integration"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

func TestGate_Allows(t *testing.T) {
	gate := integration.NewGate(testServiceAccount)
	cases := []struct {
		name  string
		email string
		ctx   entity.ContextKind
		want  bool
	}{
		{"integración vía web services se omite", testServiceAccount, entity.ContextWebServices, false},
		{"email con mayúsculas y espacios", "  Connector@Example.com ", entity.ContextWebServices, false},
		{"integración desde la interfaz pasa", testServiceAccount, entity.ContextUserInterface, true},
		{"integración con importación CSV pasa", testServiceAccount, entity.ContextCSVImport, true},
		{"integración en otro contexto pasa", testServiceAccount, entity.ContextKind("SCHEDULED"), true},
		{"otro usuario vía web services pasa", "ana@example.com", entity.ContextWebServices, true},
		{"otro usuario desde la interfaz pasa", "ana@example.com", entity.ContextUserInterface, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gate.Allows(entity.ExecutionContext{UserEmail: tc.email, Context: tc.ctx})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGate_SinCuentaConfigurada_PermiteTodo(t *testing.T) {
	gate := integration.NewGate("")
	assert.True(t, gate.Allows(entity.ExecutionContext{UserEmail: "", Context: entity.ContextWebServices}))
}
