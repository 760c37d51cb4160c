package entities

import "errors"

var (
	// ErrInvalidRoute reports a hop chain that does not connect the declared
	// input currency to the declared output currency.
	ErrInvalidRoute = errors.New("invalid route")
	// ErrInvalidPool reports a pool that cannot exist on chain.
	ErrInvalidPool = errors.New("invalid pool")
	// ErrUnsupportedTradeShape reports a trade that cannot be expressed as one
	// atomic router call.
	ErrUnsupportedTradeShape = errors.New("unsupported trade shape")
	// ErrInvalidPercent reports a fraction with a zero denominator or a
	// negative or oversized value.
	ErrInvalidPercent = errors.New("invalid percent")
	// ErrUnknownChain reports a chain id with no known wrapped native token.
	ErrUnknownChain = errors.New("unknown chain")
)
