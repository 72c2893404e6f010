package rate

import (
	"context"
	"fmt"
	"fxconvert/internal/adapters"
	"fxconvert/internal/domain"
	"strings"

	"github.com/shopspring/decimal"
)

type Converter struct {
	client  adapters.RateClient
	catalog *Catalog
}

func NewConverter(client adapters.RateClient, catalog *Catalog) *Converter {
	return &Converter{client: client, catalog: catalog}
}

// Convert fetches the live rate table of source and converts amountText into target.
// The amount is validated before any request is made.
func (c *Converter) Convert(ctx context.Context, source, target, amountText string) (domain.Conversion, error) {
	amount, err := ParseAmount(amountText)
	if err != nil {
		return domain.Conversion{}, err
	}
	if err = c.catalog.ValidateCodes(source, target); err != nil {
		return domain.Conversion{}, err
	}

	table, err := c.client.GetRateTable(ctx, source)
	if err != nil {
		return domain.Conversion{}, fmt.Errorf("failed to fetch rates for %q: %w", source, err)
	}

	// the catalog was captured for another base, so the target may still be missing here
	rate, ok := table.Rate(target)
	if !ok {
		return domain.Conversion{}, fmt.Errorf("%w: %s/%s", ErrUnsupportedPair, source, target)
	}

	return domain.Conversion{
		Source:    source,
		Target:    target,
		Amount:    strings.TrimSpace(amountText),
		Rate:      rate,
		Converted: amount.Mul(decimal.NewFromFloat(rate)).StringFixed(2),
	}, nil
}
