package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// HookEventRequest evento de ciclo de vida que la plataforma envía a los endpoints de hooks.
type HookEventRequest struct {
	Trigger   string       `json:"trigger"` // create | edit | xedit | view | copy | delete
	Execution ExecutionDTO `json:"execution"`
	Record    RecordDTO    `json:"record"`
}

// ExecutionDTO contexto de ejecución: quién y desde dónde se disparó el evento.
type ExecutionDTO struct {
	UserEmail   string `json:"user_email"`
	Context     string `json:"context"`     // USERINTERFACE | WEBSERVICES | CSVIMPORT | ...
	Environment string `json:"environment"` // SANDBOX | PRODUCTION
}

// RecordDTO registro en vuelo. Los valores de Fields y de las líneas se dejan sin tipar;
// el hook los convierte con su propio mapeo de campos.
type RecordDTO struct {
	Type     string                      `json:"type"`
	ID       RecordID                    `json:"id"`
	Fields   map[string]any              `json:"fields"`
	Sublists map[string][]map[string]any `json:"sublists"`
}

// HookEventResponse cambios a aplicar sobre el registro en vuelo.
// Warning trae el error reportado cuando el hook falló; la respuesta sigue siendo 200.
type HookEventResponse struct {
	Changes         map[string]any `json:"changes"`
	CustomerUpdated bool           `json:"customer_updated"`
	Warning         string         `json:"warning,omitempty"`
}

// RecordID id de registro; la plataforma lo manda como número, como texto o null (registro nuevo).
type RecordID string

// UnmarshalJSON acepta número, texto o null.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id de registro inválido: %s", data)
		}
		*id = RecordID(n.String())
	}
	return nil
}
