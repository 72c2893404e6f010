package rate

import (
	"context"
	"fmt"
	"fxconvert/internal/adapters"
)

// Loader fetches the supported currency codes from the rate table of a fixed base.
type Loader struct {
	client  adapters.RateClient
	catalog *Catalog
	base    string
}

func NewLoader(client adapters.RateClient, catalog *Catalog, base string) *Loader {
	return &Loader{client: client, catalog: catalog, base: base}
}

// Load returns the codes in provider order and publishes them to the catalog.
// On failure the catalog is left untouched.
func (l *Loader) Load(ctx context.Context) ([]string, error) {
	table, err := l.client.GetRateTable(ctx, l.base)
	if err != nil {
		return nil, fmt.Errorf("failed to load currencies for base %q: %w", l.base, err)
	}
	codes := table.Codes()
	l.catalog.Replace(codes)
	return codes, nil
}
