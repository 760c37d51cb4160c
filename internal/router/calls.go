package router

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"swapcalldata/internal/entities"
)

// ExactInputSingleParams mirrors ISwapRouter.ExactInputSingleParams.
type ExactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	Deadline          *big.Int
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

// ExactOutputSingleParams mirrors ISwapRouter.ExactOutputSingleParams.
type ExactOutputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	Fee               *big.Int
	Recipient         common.Address
	Deadline          *big.Int
	AmountOut         *big.Int
	AmountInMaximum   *big.Int
	SqrtPriceLimitX96 *big.Int
}

// ExactInputParams mirrors ISwapRouter.ExactInputParams.
type ExactInputParams struct {
	Path             []byte
	Recipient        common.Address
	Deadline         *big.Int
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

// ExactOutputParams mirrors ISwapRouter.ExactOutputParams.
type ExactOutputParams struct {
	Path            []byte
	Recipient       common.Address
	Deadline        *big.Int
	AmountOut       *big.Int
	AmountInMaximum *big.Int
}

// swapLeg is one route with its slippage-bounded amounts already applied.
type swapLeg struct {
	route             *entities.Route
	tradeType         entities.TradeType
	amountIn          *uint256.Int // exact input, or maximum input
	amountOut         *uint256.Int // exact output, or minimum output
	recipient         common.Address
	deadline          *uint256.Int
	sqrtPriceLimitX96 *uint256.Int
}

// encodeSwap picks one of the four swap methods from the hop count and trade type.
func encodeSwap(leg swapLeg) ([]byte, error) {
	rabi, err := SwapRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}

	singleHop := leg.route.Hops() == 1
	var (
		method string
		params interface{}
	)
	switch {
	case singleHop && leg.tradeType == entities.ExactInput:
		method = methodExactInputSingle
		params = ExactInputSingleParams{
			TokenIn:           leg.route.TokenPath[0].Address(),
			TokenOut:          leg.route.TokenPath[1].Address(),
			Fee:               big.NewInt(int64(leg.route.Pools[0].Fee)),
			Recipient:         leg.recipient,
			Deadline:          leg.deadline.ToBig(),
			AmountIn:          leg.amountIn.ToBig(),
			AmountOutMinimum:  leg.amountOut.ToBig(),
			SqrtPriceLimitX96: leg.sqrtPriceLimitX96.ToBig(),
		}
	case singleHop && leg.tradeType == entities.ExactOutput:
		method = methodExactOutputSingle
		params = ExactOutputSingleParams{
			TokenIn:           leg.route.TokenPath[0].Address(),
			TokenOut:          leg.route.TokenPath[1].Address(),
			Fee:               big.NewInt(int64(leg.route.Pools[0].Fee)),
			Recipient:         leg.recipient,
			Deadline:          leg.deadline.ToBig(),
			AmountOut:         leg.amountOut.ToBig(),
			AmountInMaximum:   leg.amountIn.ToBig(),
			SqrtPriceLimitX96: leg.sqrtPriceLimitX96.ToBig(),
		}
	case leg.tradeType == entities.ExactInput:
		method = methodExactInput
		params = ExactInputParams{
			Path:             EncodeRouteToPath(leg.route, false),
			Recipient:        leg.recipient,
			Deadline:         leg.deadline.ToBig(),
			AmountIn:         leg.amountIn.ToBig(),
			AmountOutMinimum: leg.amountOut.ToBig(),
		}
	case leg.tradeType == entities.ExactOutput:
		method = methodExactOutput
		params = ExactOutputParams{
			Path:            EncodeRouteToPath(leg.route, true),
			Recipient:       leg.recipient,
			Deadline:        leg.deadline.ToBig(),
			AmountOut:       leg.amountOut.ToBig(),
			AmountInMaximum: leg.amountIn.ToBig(),
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTradeShape, leg.tradeType)
	}

	input, err := rabi.Pack(method, params)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	return input, nil
}
