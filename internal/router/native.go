package router

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"swapcalldata/internal/entities"
)

// nativePlan records what the native asset at either end of a trade
// requires from the rest of the call sequence.
type nativePlan struct {
	inputIsNative  bool
	outputIsNative bool
	// mustRefund is set when the attached value is only an upper bound.
	mustRefund bool
	// routerMustCustody is set when a later call still has to move the
	// swap output, so the swap pays the router instead of the recipient.
	routerMustCustody bool
}

func planNative(trade *entities.Trade, fee *FeeOptions) (nativePlan, error) {
	var plan nativePlan

	switch in := trade.InputCurrency(); in.Kind() {
	case entities.KindNative:
		plan.inputIsNative = true
	case entities.KindToken:
	default:
		return nativePlan{}, fmt.Errorf("%w: input currency kind %s", ErrInvalidRoute, in.Kind())
	}

	switch out := trade.OutputCurrency(); out.Kind() {
	case entities.KindNative:
		plan.outputIsNative = true
	case entities.KindToken:
	default:
		return nativePlan{}, fmt.Errorf("%w: output currency kind %s", ErrInvalidRoute, out.Kind())
	}

	plan.mustRefund = plan.inputIsNative && trade.TradeType() == entities.ExactOutput
	plan.routerMustCustody = plan.outputIsNative || fee.active()
	return plan, nil
}

func (p nativePlan) swapRecipient(recipient common.Address) common.Address {
	if p.routerMustCustody {
		return RouterCustody
	}
	return recipient
}

// encodeUnwrapWETH9 unwraps at least amountMinimum of the router's wrapped
// balance and sends the native asset to recipient.
func encodeUnwrapWETH9(amountMinimum *uint256.Int, recipient common.Address) ([]byte, error) {
	rabi, err := SwapRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}
	input, err := rabi.Pack(methodUnwrapWETH9, amountMinimum.ToBig(), recipient)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodUnwrapWETH9, err)
	}
	return input, nil
}

// encodeRefundETH returns any unspent attached value to the sender.
func encodeRefundETH() ([]byte, error) {
	rabi, err := SwapRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}
	input, err := rabi.Pack(methodRefundETH)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodRefundETH, err)
	}
	return input, nil
}
