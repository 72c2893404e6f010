package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CurrencySelection is the (source, target) pair currently chosen by the user.
type CurrencySelection struct {
	Source string
	Target string
}

type Conversion struct {
	ID        uuid.UUID
	Source    string
	Target    string
	Amount    string // as entered, trimmed
	Rate      float64
	Converted string // fixed to 2 decimal places
	CreatedAt time.Time
}

// Text renders the conversion as "100 USD = 90.00 EUR".
func (c Conversion) Text() string {
	return fmt.Sprintf("%s %s = %s %s", c.Amount, c.Source, c.Converted, c.Target)
}
