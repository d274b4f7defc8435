package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/internal/domain/repository"
)

var _ repository.RecordStore = (*RecordStore)(nil)

// RecordStore almacén de registros del ERP sobre las tablas customers y transactions.
type RecordStore struct {
	q         Querier
	customers *CustomerRepo
}

// NewRecordStore construye el adaptador. Pasar pool o tx (Querier).
func NewRecordStore(q Querier) *RecordStore {
	return &RecordStore{q: q, customers: NewCustomerRepository(q)}
}

// LoadCustomer carga el cliente completo.
func (s *RecordStore) LoadCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// SaveCustomer persiste el cliente y devuelve su id.
func (s *RecordStore) SaveCustomer(ctx context.Context, customer *entity.Customer) (string, error) {
	if customer == nil || customer.ID == "" {
		return "", fmt.Errorf("save customer: %w: cliente sin id", domain.ErrInvalidInput)
	}
	if err := s.customers.Update(ctx, customer); err != nil {
		return "", err
	}
	return customer.ID, nil
}

// SubmitFields actualiza solo las columnas indicadas. Un valor nil limpia la columna.
func (s *RecordStore) SubmitFields(ctx context.Context, recordType entity.RecordType, id string, values entity.FieldChanges) error {
	if len(values) == 0 {
		return nil
	}
	// Orden estable de columnas para que la sentencia sea siempre la misma.
	fields := make([]string, 0, len(values))
	for f := range values {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	table, cols, err := resolveColumns(recordType, fields)
	if err != nil {
		return err
	}

	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+2)
	args = append(args, id)
	for i, c := range cols {
		args = append(args, values[fields[i]])
		sets = append(sets, fmt.Sprintf("%s = $%d", c.name, len(args)))
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $1", table, strings.Join(sets, ", "))
	if table == "transactions" {
		args = append(args, string(recordType))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}

	tag, err := s.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("submit fields %s %s: %w", recordType, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", recordType, id, domain.ErrNotFound)
	}
	return nil
}
