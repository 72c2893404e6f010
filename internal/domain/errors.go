package domain

import "errors"

var (
	ErrRatesUnavailable   = errors.New("exchange rates unavailable")
	ErrConversionNotFound = errors.New("conversion not found")
)
