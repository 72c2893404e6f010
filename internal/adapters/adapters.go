package adapters

import (
	"context"
	"fxconvert/internal/domain"
	"time"

	"github.com/google/uuid"
)

type RateClient interface {
	GetRateTable(ctx context.Context, base string) (*domain.RateTable, error)
}

type ConversionRepository interface {
	Save(ctx context.Context, conversion domain.Conversion) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Conversion, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Conversion, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type ConversionCache interface {
	Get(id uuid.UUID) (domain.Conversion, bool)
	Set(conversion domain.Conversion)
}
