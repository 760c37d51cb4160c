package router

import (
	"errors"

	"swapcalldata/internal/entities"
)

// Route and shape failures come from the entities package; they are
// re-exported so callers of SwapCallParameters can match every failure here.
var (
	ErrInvalidRoute          = entities.ErrInvalidRoute
	ErrUnsupportedTradeShape = entities.ErrUnsupportedTradeShape
)

var (
	ErrInvalidSlippage     = errors.New("invalid slippage tolerance")
	ErrMissingFeeRecipient = errors.New("missing fee recipient")
	ErrInvalidFee          = errors.New("invalid fee")
	ErrInvalidDeadline     = errors.New("invalid deadline")
	ErrInvalidPermit       = errors.New("invalid permit")
	ErrInvalidPath         = errors.New("invalid path")
	ErrUnknownSelector     = errors.New("unknown selector")
)

var (
	ErrMissingRecipient  = errors.New("missing recipient")
	ErrInvalidPriceLimit = errors.New("invalid sqrt price limit")
)
