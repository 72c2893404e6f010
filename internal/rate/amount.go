package rate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount accepts decimal text strictly greater than zero.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(text)
	if err != nil || amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
