package usecase_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/crm-sync-hook/internal/domain/entity"
)

type mockPrefs struct{ mock.Mock }

func (m *mockPrefs) GetPreference(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type mockFinancial struct{ mock.Mock }

func (m *mockFinancial) OverdueBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockFinancial) TotalInvoiced(ctx context.Context, id string) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockFinancial) TotalCredited(ctx context.Context, id string) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockFinancial) TotalPaid(ctx context.Context, id string) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockQueue struct{ mock.Mock }

func (m *mockQueue) Enqueue(ctx context.Context, req entity.FinTranRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type mockErrorLogs struct{ mock.Mock }

func (m *mockErrorLogs) Insert(ctx context.Context, source, message string) error {
	return m.Called(ctx, source, message).Error(0)
}

type fixedClock string

func (c fixedClock) Timestamp() string { return string(c) }
