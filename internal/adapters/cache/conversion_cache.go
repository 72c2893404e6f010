package cache

import (
	"fmt"
	"fxconvert/internal/domain"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

// RistrettoConversionCache keeps recent conversion records for lookups by id.
type RistrettoConversionCache struct {
	cache *ristretto.Cache
}

func NewConversionCache(maxItems int64) (*RistrettoConversionCache, error) {
	if maxItems <= 0 {
		maxItems = 1024
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create conversion cache failed: %w", err)
	}
	return &RistrettoConversionCache{cache: c}, nil
}

func (c *RistrettoConversionCache) Get(id uuid.UUID) (domain.Conversion, bool) {
	if v, ok := c.cache.Get(id.String()); ok {
		conversion, ok := v.(domain.Conversion)
		return conversion, ok
	}
	return domain.Conversion{}, false
}

func (c *RistrettoConversionCache) Set(conversion domain.Conversion) {
	c.cache.Set(conversion.ID.String(), conversion, 1)
}

func (c *RistrettoConversionCache) Close() { c.cache.Close() }
