package rate

import (
	"context"
	"time"

	"fxconvert/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) GetRateTable(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	table, _ := args.Get(0).(*domain.RateTable)
	return table, args.Error(1)
}

type MockConversionRepository struct{ mock.Mock }

func (m *MockConversionRepository) Save(ctx context.Context, conversion domain.Conversion) error {
	args := m.Called(ctx, conversion)
	return args.Error(0)
}

func (m *MockConversionRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Conversion, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(domain.Conversion)
	return c, args.Error(1)
}

func (m *MockConversionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Conversion, error) {
	args := m.Called(ctx, limit)
	list, _ := args.Get(0).([]domain.Conversion)
	return list, args.Error(1)
}

func (m *MockConversionRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type MockConversionCache struct{ mock.Mock }

func (m *MockConversionCache) Get(id uuid.UUID) (domain.Conversion, bool) {
	args := m.Called(id)
	c, _ := args.Get(0).(domain.Conversion)
	return c, args.Bool(1)
}

func (m *MockConversionCache) Set(conversion domain.Conversion) {
	m.Called(conversion)
}

func tableOf(base string, kv ...any) *domain.RateTable {
	table := domain.NewRateTable(base)
	for i := 0; i+1 < len(kv); i += 2 {
		table.Put(kv[i].(string), kv[i+1].(float64))
	}
	return table
}
