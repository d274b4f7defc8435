package integration_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-sync-hook/internal/application/integration"
	"github.com/jhoicas/crm-sync-hook/internal/domain"
	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
	"github.com/jhoicas/crm-sync-hook/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos del hook
// ──────────────────────────────────────────────────────────────────────────────

const (
	testServiceAccount = "connector@example.com"
	testTimestamp      = "10/19/2026 9:15:00 am"
	testSandboxURL     = "https://sandbox.crm.example.com/lightning/r/"
	testProdURL        = "https://crm.example.com/lightning/r/"
)

type submitCall struct {
	Type   entity.RecordType
	ID     string
	Values entity.FieldChanges
}

type fakeStore struct {
	customers map[string]*entity.Customer
	loads     int
	saved     []entity.Customer
	submits   []submitCall
	loadErr   error
}

func newFakeStore(customers ...*entity.Customer) *fakeStore {
	s := &fakeStore{customers: map[string]*entity.Customer{}}
	for _, c := range customers {
		s.customers[c.ID] = c
	}
	return s
}

func (s *fakeStore) LoadCustomer(_ context.Context, id string) (*entity.Customer, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	c, ok := s.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *fakeStore) SaveCustomer(_ context.Context, c *entity.Customer) (string, error) {
	cp := *c
	s.saved = append(s.saved, cp)
	s.customers[c.ID] = &cp
	return c.ID, nil
}

func (s *fakeStore) SubmitFields(_ context.Context, t entity.RecordType, id string, values entity.FieldChanges) error {
	s.submits = append(s.submits, submitCall{Type: t, ID: id, Values: values})
	return nil
}

type fakeSearch struct {
	crmAccounts map[string]string
	err         error
	invalidated []string
}

func (s *fakeSearch) Invalidate(_ context.Context, t entity.RecordType, id string) error {
	s.invalidated = append(s.invalidated, string(t)+":"+id)
	return nil
}

func (s *fakeSearch) LookupFields(_ context.Context, t entity.RecordType, id string, fields ...string) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if t != entity.RecordTypeCustomer {
		return nil, fmt.Errorf("tipo inesperado %s", t)
	}
	out := map[string]string{}
	for _, f := range fields {
		if f == entity.FieldCustomerCRMAccountID {
			out[f] = s.crmAccounts[id]
		}
	}
	return out, nil
}

type aggregates struct {
	overdue, invoiced, credited, paid decimal.Decimal
}

type fakeLib struct {
	totals      map[string]aggregates
	rollupCalls int
	processed   []entity.FinTranRequest
	logged      []error
	overdueErr  error
}

func newFakeLib() *fakeLib {
	return &fakeLib{totals: map[string]aggregates{}}
}

func (l *fakeLib) set(customerID, overdue, invoiced, credited, paid string) {
	l.totals[customerID] = aggregates{
		overdue:  decimal.RequireFromString(overdue),
		invoiced: decimal.RequireFromString(invoiced),
		credited: decimal.RequireFromString(credited),
		paid:     decimal.RequireFromString(paid),
	}
}

func (l *fakeLib) GetOverdueBalance(_ context.Context, id string) (decimal.Decimal, error) {
	l.rollupCalls++
	if l.overdueErr != nil {
		return decimal.Zero, l.overdueErr
	}
	return l.totals[id].overdue, nil
}

func (l *fakeLib) GetTotalInvoiced(_ context.Context, id string) (decimal.Decimal, error) {
	return l.totals[id].invoiced, nil
}

func (l *fakeLib) GetTotalCredits(_ context.Context, id string) (decimal.Decimal, error) {
	return l.totals[id].credited, nil
}

func (l *fakeLib) GetTotalPaid(_ context.Context, id string) (decimal.Decimal, error) {
	return l.totals[id].paid, nil
}

func (l *fakeLib) GetCurrentTimestamp() string { return testTimestamp }

func (l *fakeLib) ProcessFinancialTransaction(_ context.Context, req entity.FinTranRequest) (string, error) {
	l.processed = append(l.processed, req)
	return fmt.Sprintf("fintran-%d", len(l.processed)), nil
}

func (l *fakeLib) LogError(_ context.Context, err error) {
	l.logged = append(l.logged, err)
}

type fakeConfig struct {
	urls map[entity.EnvKind]string
	err  error
}

func (c *fakeConfig) GetCompanyURL(_ context.Context, env entity.EnvKind) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.urls[env], nil
}

type fixture struct {
	store  *fakeStore
	search *fakeSearch
	lib    *fakeLib
	config *fakeConfig
	hook   *integration.Hook
}

func newFixture(customers ...*entity.Customer) *fixture {
	f := &fixture{
		store:  newFakeStore(customers...),
		search: &fakeSearch{crmAccounts: map[string]string{}},
		lib:    newFakeLib(),
		config: &fakeConfig{urls: map[entity.EnvKind]string{
			entity.EnvSandbox:    testSandboxURL,
			entity.EnvProduction: testProdURL,
		}},
	}
	f.hook = integration.NewHook(
		integration.HookConfig{ServiceAccountEmail: testServiceAccount},
		f.config, f.store, f.search, f.lib, logger.Nop(), nil,
	)
	return f
}

func customer(id, crmAccount string, subs int64, overdue, invoiced, credited, paid string) *entity.Customer {
	return &entity.Customer{
		ID:              id,
		CRMAccountID:    crmAccount,
		SubscriberCount: subs,
		OverdueBalance:  decimal.RequireFromString(overdue),
		TotalInvoiced:   decimal.RequireFromString(invoiced),
		TotalCredited:   decimal.RequireFromString(credited),
		TotalPaid:       decimal.RequireFromString(paid),
		LastSyncAt:      "1/1/2026 12:00:00 am",
	}
}

func uiUser() entity.ExecutionContext {
	return entity.ExecutionContext{UserEmail: "ana@example.com", Context: entity.ContextUserInterface, Environment: entity.EnvProduction}
}

func applyLine(tranType, id string, applied any, amount, total string) map[string]any {
	return map[string]any{
		entity.LineFieldTranType:   tranType,
		entity.LineFieldInternalID: id,
		entity.LineFieldApply:      applied,
		entity.LineFieldAmount:     amount,
		entity.LineFieldTotal:      total,
	}
}

var errBoom = errors.New("boom")
