package repository

import (
	"context"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

// RecordStore puerto hacia el almacén de registros del ERP.
type RecordStore interface {
	// LoadCustomer carga el cliente completo. Devuelve domain.ErrNotFound si no existe.
	LoadCustomer(ctx context.Context, id string) (*entity.Customer, error)
	// SaveCustomer persiste el cliente y devuelve su id.
	SaveCustomer(ctx context.Context, customer *entity.Customer) (string, error)
	// SubmitFields actualización parcial directa, sin cargar el registro completo.
	SubmitFields(ctx context.Context, recordType entity.RecordType, id string, values entity.FieldChanges) error
}
