package router

import (
	"fmt"

	"github.com/holiman/uint256"
)

// EncodeMulticall batches calls into one atomic router call. A single call is
// returned as is. With a non-nil deadline the deadline-checking overload is
// used.
func EncodeMulticall(calls [][]byte, deadline *uint256.Int) ([]byte, error) {
	switch len(calls) {
	case 0:
		return nil, fmt.Errorf("%w: no calls to encode", ErrUnsupportedTradeShape)
	case 1:
		return append([]byte(nil), calls[0]...), nil
	}

	if deadline != nil {
		mabi, err := MulticallDeadlineABI()
		if err != nil {
			return nil, fmt.Errorf("parse multicall abi: %w", err)
		}
		input, err := mabi.Pack(methodMulticall, deadline.ToBig(), calls)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", methodMulticall, err)
		}
		return input, nil
	}

	rabi, err := SwapRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}
	input, err := rabi.Pack(methodMulticall, calls)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", methodMulticall, err)
	}
	return input, nil
}
