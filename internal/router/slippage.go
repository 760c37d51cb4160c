package router

import (
	"fmt"

	"github.com/holiman/uint256"

	"swapcalldata/internal/entities"
)

func validateSlippage(slippage entities.Percent) error {
	if !slippage.Valid() {
		return fmt.Errorf("%w: zero denominator", ErrInvalidSlippage)
	}
	if !slippage.LessThanOne() {
		return fmt.Errorf("%w: %s is not below 1", ErrInvalidSlippage, slippage)
	}
	return nil
}

// MinimumAmountOut bounds the output an exact-input leg may accept:
// floor(amountOut * (1 - slippage)). Exact-output legs return amountOut.
func MinimumAmountOut(tradeType entities.TradeType, slippage entities.Percent, amountOut *uint256.Int) (*uint256.Int, error) {
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}
	if tradeType == entities.ExactOutput {
		return new(uint256.Int).Set(amountOut), nil
	}

	den := slippage.Denominator()
	keep := new(uint256.Int).Sub(den, slippage.Numerator())
	// keep <= den, so the quotient never exceeds amountOut
	out, _ := new(uint256.Int).MulDivOverflow(amountOut, keep, den)
	return out, nil
}

// MaximumAmountIn bounds the input an exact-output leg may spend:
// ceil(amountIn * (1 + slippage)). Exact-input legs return amountIn.
func MaximumAmountIn(tradeType entities.TradeType, slippage entities.Percent, amountIn *uint256.Int) (*uint256.Int, error) {
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}
	if tradeType == entities.ExactInput {
		return new(uint256.Int).Set(amountIn), nil
	}

	den := slippage.Denominator()
	grow, overflow := new(uint256.Int).AddOverflow(den, slippage.Numerator())
	if overflow {
		return nil, fmt.Errorf("%w: %s overflows 256 bits", ErrInvalidSlippage, slippage)
	}
	out, overflow := new(uint256.Int).MulDivOverflow(amountIn, grow, den)
	if overflow {
		return nil, fmt.Errorf("%w: maximum input for %s overflows 256 bits", ErrInvalidSlippage, amountIn.Dec())
	}
	if !new(uint256.Int).MulMod(amountIn, grow, den).IsZero() {
		if _, overflow := out.AddOverflow(out, uint256.NewInt(1)); overflow {
			return nil, fmt.Errorf("%w: maximum input for %s overflows 256 bits", ErrInvalidSlippage, amountIn.Dec())
		}
	}
	return out, nil
}
