package rate

import (
	"context"
	"fxconvert/internal/adapters"
	"fxconvert/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Service converts amounts and keeps a history of completed conversions.
type Service struct {
	converter *Converter
	repo      adapters.ConversionRepository // nil when history is not persisted
	cache     adapters.ConversionCache
	now       func() time.Time
}

func NewService(converter *Converter, repo adapters.ConversionRepository, cache adapters.ConversionCache) *Service {
	return &Service{converter: converter, repo: repo, cache: cache, now: time.Now}
}

// Convert runs a conversion and records it. A failure to persist the record is logged
// and does not fail the conversion.
func (s *Service) Convert(ctx context.Context, source, target, amountText string) (domain.Conversion, error) {
	conversion, err := s.converter.Convert(ctx, source, target, amountText)
	if err != nil {
		return domain.Conversion{}, err
	}

	conversion.ID = uuid.New()
	conversion.CreatedAt = s.now().UTC()

	if s.repo != nil {
		if saveErr := s.repo.Save(ctx, conversion); saveErr != nil {
			logrus.WithError(saveErr).WithField("conversion_id", conversion.ID).Warn("conversion wasn't recorded")
		}
	}
	s.cache.Set(conversion)
	return conversion, nil
}

func (s *Service) GetConversion(ctx context.Context, id uuid.UUID) (domain.Conversion, error) {
	if conversion, ok := s.cache.Get(id); ok {
		return conversion, nil
	}
	if s.repo == nil {
		return domain.Conversion{}, domain.ErrConversionNotFound
	}

	conversion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Conversion{}, err
	}
	s.cache.Set(conversion)
	return conversion, nil
}

// ListRecent returns up to limit conversions, newest first. The limit is clamped to 1..MaxHistoryLimit.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.Conversion, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	if s.repo == nil {
		return []domain.Conversion{}, nil
	}
	return s.repo.ListRecent(ctx, limit)
}
