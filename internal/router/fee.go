package router

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var bipsPerUnit = uint256.NewInt(10_000)

func (f *FeeOptions) active() bool {
	return f != nil && !f.Fee.IsZero()
}

func validateFee(f *FeeOptions) error {
	if !f.active() {
		return nil
	}
	if !f.Fee.LessThanOne() {
		return fmt.Errorf("%w: %s is not below 1", ErrInvalidFee, f.Fee)
	}
	if f.feeBips().Sign() == 0 {
		return fmt.Errorf("%w: %s is below one basis point", ErrInvalidFee, f.Fee)
	}
	if f.Recipient == (common.Address{}) {
		return fmt.Errorf("%w: fee %s", ErrMissingFeeRecipient, f.Fee)
	}
	return nil
}

// feeBips converts the fee fraction to basis points, rounding down.
func (f *FeeOptions) feeBips() *big.Int {
	bips, _ := new(uint256.Int).MulDivOverflow(f.Fee.Numerator(), bipsPerUnit, f.Fee.Denominator())
	return bips.ToBig()
}

// encodeFeeStep builds the call that pays out the router's custody of the
// output with a fee taken off the top. A native output is unwrapped in the
// same call.
func encodeFeeStep(f *FeeOptions, outputIsNative bool, tokenOut common.Address, amountMinimum *uint256.Int, recipient common.Address) ([]byte, error) {
	rabi, err := SwapRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}

	if outputIsNative {
		input, err := rabi.Pack(methodUnwrapWETH9WithFee, amountMinimum.ToBig(), recipient, f.feeBips(), f.Recipient)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", methodUnwrapWETH9WithFee, err)
		}
		return input, nil
	}

	input, err := rabi.Pack(methodSweepTokenWithFee, tokenOut, amountMinimum.ToBig(), recipient, f.feeBips(), f.Recipient)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodSweepTokenWithFee, err)
	}
	return input, nil
}
