package integration

import "github.com/jhoicas/crm-sync-hook/internal/domain/entity"

// Record vista sin tipos del registro en vuelo, tal como la envía la plataforma.
// Solo fieldmap.go la lee; el resto del paquete trabaja con las proyecciones de entity.
type Record struct {
	Type     entity.RecordType
	ID       string
	Fields   map[string]any
	Sublists map[string][]map[string]any
}

// Value devuelve el valor crudo del campo (nil si no viene en el payload).
func (r Record) Value(field string) any {
	if r.Fields == nil {
		return nil
	}
	return r.Fields[field]
}

// Has indica si el campo viene en el payload, aunque sea nulo.
func (r Record) Has(field string) bool {
	_, ok := r.Fields[field]
	return ok
}

// Lines devuelve las líneas de la sublista.
func (r Record) Lines(sublist string) []map[string]any {
	if r.Sublists == nil {
		return nil
	}
	return r.Sublists[sublist]
}

// Event evento de ciclo de vida recibido de la plataforma.
type Event struct {
	Trigger entity.TriggerType
	Exec    entity.ExecutionContext
	Record  Record
}

// Result resultado de un hook. Nunca se propaga como fallo a la plataforma:
// Err solo informa qué se reportó al log compartido.
type Result struct {
	Changes         entity.FieldChanges
	CustomerUpdated bool
	Err             error
}

func newResult() Result {
	return Result{Changes: entity.FieldChanges{}}
}
