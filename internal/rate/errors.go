package rate

import "errors"

var (
	ErrInvalidAmount     = errors.New("amount must be a number greater than zero")
	ErrSourceRequired    = errors.New("source currency is required")
	ErrTargetRequired    = errors.New("target currency is required")
	ErrSourceUnsupported = errors.New("source currency not supported")
	ErrTargetUnsupported = errors.New("target currency not supported")
	ErrUnsupportedPair   = errors.New("unsupported currency pair")
)
