// Package router turns quoted trades into calldata for the concentrated
// liquidity SwapRouter: one swap call per route leg, plus the permit,
// unwrap, fee and refund calls the trade's currencies require, batched
// through multicall when more than one call results.
//
// Everything here is a pure function of its arguments and safe for
// concurrent use.
package router

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"swapcalldata/internal/entities"
)

// RouterCustody is the swap recipient that leaves the output with the router
// for a following call to pay out. The router treats the zero address as
// itself.
var RouterCustody = common.Address{}

// SwapCallParameters produces the calldata and native value that execute
// trade against the router.
func SwapCallParameters(trade *entities.Trade, opts SwapOptions) (CallParameters, error) {
	if trade == nil {
		return CallParameters{}, fmt.Errorf("%w: nil trade", ErrUnsupportedTradeShape)
	}
	swaps := trade.Swaps()
	if len(swaps) == 0 {
		return CallParameters{}, fmt.Errorf("%w: no routes", ErrUnsupportedTradeShape)
	}
	if err := opts.validate(); err != nil {
		return CallParameters{}, err
	}

	for i, s := range swaps {
		if err := validateRoute(s.Route); err != nil {
			return CallParameters{}, fmt.Errorf("leg %d: %w", i, err)
		}
		if s.Route.Hops() > 1 && opts.SqrtPriceLimitX96 != nil {
			return CallParameters{}, fmt.Errorf("%w: price limit on %d-hop leg %d", ErrUnsupportedTradeShape, s.Route.Hops(), i)
		}
	}

	plan, err := planNative(trade, opts.Fee)
	if err != nil {
		return CallParameters{}, err
	}

	calls := make([][]byte, 0, len(swaps)+3)

	if opts.InputTokenPermit != nil {
		if plan.inputIsNative {
			return CallParameters{}, fmt.Errorf("%w: input %s is not a token", ErrInvalidPermit, trade.InputCurrency())
		}
		call, err := encodePermit(trade.InputCurrency().Address(), opts.InputTokenPermit)
		if err != nil {
			return CallParameters{}, err
		}
		calls = append(calls, call)
	}

	tradeType := trade.TradeType()
	totalValue := new(uint256.Int)
	totalAmountOut := new(uint256.Int)
	for _, s := range swaps {
		amountIn, err := MaximumAmountIn(tradeType, opts.SlippageTolerance, s.InputAmount)
		if err != nil {
			return CallParameters{}, err
		}
		amountOut, err := MinimumAmountOut(tradeType, opts.SlippageTolerance, s.OutputAmount)
		if err != nil {
			return CallParameters{}, err
		}

		call, err := encodeSwap(swapLeg{
			route:             s.Route,
			tradeType:         tradeType,
			amountIn:          amountIn,
			amountOut:         amountOut,
			recipient:         plan.swapRecipient(opts.Recipient),
			deadline:          opts.Deadline,
			sqrtPriceLimitX96: opts.priceLimit(),
		})
		if err != nil {
			return CallParameters{}, err
		}
		calls = append(calls, call)

		// the minimums never exceed the quoted outputs, whose sum NewTrade bounds
		totalAmountOut.Add(totalAmountOut, amountOut)
		if plan.inputIsNative {
			if _, overflow := totalValue.AddOverflow(totalValue, amountIn); overflow {
				return CallParameters{}, fmt.Errorf("%w: native value overflows 256 bits", ErrInvalidSlippage)
			}
		}
	}

	if plan.routerMustCustody {
		var call []byte
		if opts.Fee.active() {
			call, err = encodeFeeStep(opts.Fee, plan.outputIsNative, trade.OutputCurrency().Address(), totalAmountOut, opts.Recipient)
		} else {
			call, err = encodeUnwrapWETH9(totalAmountOut, opts.Recipient)
		}
		if err != nil {
			return CallParameters{}, err
		}
		calls = append(calls, call)
	}

	if plan.mustRefund {
		call, err := encodeRefundETH()
		if err != nil {
			return CallParameters{}, err
		}
		calls = append(calls, call)
	}

	var batchDeadline *uint256.Int
	if opts.MulticallDeadline {
		batchDeadline = opts.Deadline
	}
	calldata, err := EncodeMulticall(calls, batchDeadline)
	if err != nil {
		return CallParameters{}, err
	}

	return CallParameters{Calldata: calldata, Value: toHex(totalValue)}, nil
}

// validateRoute re-checks a route's hop chain, since a Route may have been
// assembled without NewRoute.
func validateRoute(route *entities.Route) error {
	if route == nil || route.Hops() == 0 {
		return fmt.Errorf("%w: empty route", ErrInvalidRoute)
	}
	if len(route.TokenPath) != route.Hops()+1 {
		return fmt.Errorf("%w: token path has %d entries for %d pools", ErrInvalidRoute, len(route.TokenPath), route.Hops())
	}
	if !route.TokenPath[0].Equal(route.Input.Wrapped()) {
		return fmt.Errorf("%w: path starts at %s, route input is %s", ErrInvalidRoute, route.TokenPath[0], route.Input)
	}
	if !route.TokenPath[route.Hops()].Equal(route.Output.Wrapped()) {
		return fmt.Errorf("%w: path ends at %s, route output is %s", ErrInvalidRoute, route.TokenPath[route.Hops()], route.Output)
	}
	for i, pool := range route.Pools {
		if pool == nil {
			return fmt.Errorf("%w: pool %d is nil", ErrInvalidRoute, i)
		}
		if pool.Fee >= entities.MaxFee {
			return fmt.Errorf("%w: pool %d fee %d exceeds uint24", ErrInvalidRoute, i, pool.Fee)
		}
		in, out := route.TokenPath[i], route.TokenPath[i+1]
		if !pool.Involves(in) || !pool.Involves(out) || in.Equal(out) {
			return fmt.Errorf("%w: pool %d does not connect %s to %s", ErrInvalidRoute, i, in, out)
		}
	}
	return nil
}
