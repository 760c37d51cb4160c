package entities

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// TradeType is the fixed side of a trade.
type TradeType uint8

const (
	ExactInput TradeType = iota
	ExactOutput
)

func (t TradeType) String() string {
	switch t {
	case ExactInput:
		return "EXACT_INPUT"
	case ExactOutput:
		return "EXACT_OUTPUT"
	default:
		return fmt.Sprintf("TradeType(%d)", uint8(t))
	}
}

// ParseTradeType accepts EXACT_INPUT / EXACT_OUTPUT in any case.
func ParseTradeType(s string) (TradeType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EXACT_INPUT", "EXACTINPUT", "EXACT_IN":
		return ExactInput, nil
	case "EXACT_OUTPUT", "EXACTOUTPUT", "EXACT_OUT":
		return ExactOutput, nil
	default:
		return 0, fmt.Errorf("%w: trade type %q", ErrUnsupportedTradeShape, s)
	}
}

// Swap is one priced leg of a trade.
type Swap struct {
	Route        *Route
	InputAmount  *uint256.Int
	OutputAmount *uint256.Int
}

// Trade is a quoted trade over one or more routes that share their input and
// output currency.
type Trade struct {
	swaps     []Swap
	tradeType TradeType
}

// NewTrade validates and copies the legs of a trade.
func NewTrade(tradeType TradeType, swaps ...Swap) (*Trade, error) {
	if tradeType != ExactInput && tradeType != ExactOutput {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTradeShape, tradeType)
	}
	if len(swaps) == 0 {
		return nil, fmt.Errorf("%w: no routes", ErrUnsupportedTradeShape)
	}

	owned := make([]Swap, 0, len(swaps))
	totalIn, totalOut := new(uint256.Int), new(uint256.Int)
	for i, s := range swaps {
		if s.Route == nil {
			return nil, fmt.Errorf("%w: leg %d has no route", ErrInvalidRoute, i)
		}
		if s.InputAmount == nil || s.OutputAmount == nil {
			return nil, fmt.Errorf("%w: leg %d is missing an amount", ErrInvalidRoute, i)
		}
		if !s.Route.Input.Equal(swaps[0].Route.Input) {
			return nil, fmt.Errorf("%w: leg %d input %s differs from %s", ErrUnsupportedTradeShape, i, s.Route.Input, swaps[0].Route.Input)
		}
		if !s.Route.Output.Equal(swaps[0].Route.Output) {
			return nil, fmt.Errorf("%w: leg %d output %s differs from %s", ErrUnsupportedTradeShape, i, s.Route.Output, swaps[0].Route.Output)
		}
		if _, overflow := totalIn.AddOverflow(totalIn, s.InputAmount); overflow {
			return nil, fmt.Errorf("%w: total input overflows 256 bits", ErrUnsupportedTradeShape)
		}
		if _, overflow := totalOut.AddOverflow(totalOut, s.OutputAmount); overflow {
			return nil, fmt.Errorf("%w: total output overflows 256 bits", ErrUnsupportedTradeShape)
		}
		owned = append(owned, Swap{
			Route:        s.Route,
			InputAmount:  new(uint256.Int).Set(s.InputAmount),
			OutputAmount: new(uint256.Int).Set(s.OutputAmount),
		})
	}

	return &Trade{swaps: owned, tradeType: tradeType}, nil
}

// FromRoute is NewTrade for a single route.
func FromRoute(route *Route, inputAmount, outputAmount *uint256.Int, tradeType TradeType) (*Trade, error) {
	return NewTrade(tradeType, Swap{Route: route, InputAmount: inputAmount, OutputAmount: outputAmount})
}

func (t *Trade) TradeType() TradeType { return t.tradeType }

// Swaps returns a copy of the legs; amounts are shared and must not be mutated.
func (t *Trade) Swaps() []Swap {
	return append([]Swap(nil), t.swaps...)
}

func (t *Trade) InputCurrency() Currency  { return t.swaps[0].Route.Input }
func (t *Trade) OutputCurrency() Currency { return t.swaps[0].Route.Output }

// InputAmount sums the quoted input across legs.
func (t *Trade) InputAmount() *uint256.Int {
	total := new(uint256.Int)
	for _, s := range t.swaps {
		total.Add(total, s.InputAmount)
	}
	return total
}

// OutputAmount sums the quoted output across legs.
func (t *Trade) OutputAmount() *uint256.Int {
	total := new(uint256.Int)
	for _, s := range t.swaps {
		total.Add(total, s.OutputAmount)
	}
	return total
}
