package router

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"swapcalldata/internal/model"
)

// DecodeCalldata explains a payload produced by SwapCallParameters, recursing
// into multicall batches.
func DecodeCalldata(data []byte) (model.DecodedCall, error) {
	if len(data) < 4 {
		return model.DecodedCall{}, fmt.Errorf("%w: calldata is %d bytes", ErrUnknownSelector, len(data))
	}

	method, err := lookupMethod(data[:4])
	if err != nil {
		return model.DecodedCall{}, err
	}
	values, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return model.DecodedCall{}, fmt.Errorf("unpack %s: %w", method.Name, err)
	}

	call := model.DecodedCall{
		Selector: hexutil.Encode(method.ID),
		Method:   method.Sig,
		Args:     map[string]string{},
	}

	switch {
	case method.Name == methodExactInputSingle:
		p := *abi.ConvertType(values[0], new(ExactInputSingleParams)).(*ExactInputSingleParams)
		setAddr(call.Args, "tokenIn", p.TokenIn)
		setAddr(call.Args, "tokenOut", p.TokenOut)
		setInt(call.Args, "fee", p.Fee)
		setAddr(call.Args, "recipient", p.Recipient)
		setInt(call.Args, "deadline", p.Deadline)
		setInt(call.Args, "amountIn", p.AmountIn)
		setInt(call.Args, "amountOutMinimum", p.AmountOutMinimum)
		setInt(call.Args, "sqrtPriceLimitX96", p.SqrtPriceLimitX96)
	case method.Name == methodExactOutputSingle:
		p := *abi.ConvertType(values[0], new(ExactOutputSingleParams)).(*ExactOutputSingleParams)
		setAddr(call.Args, "tokenIn", p.TokenIn)
		setAddr(call.Args, "tokenOut", p.TokenOut)
		setInt(call.Args, "fee", p.Fee)
		setAddr(call.Args, "recipient", p.Recipient)
		setInt(call.Args, "deadline", p.Deadline)
		setInt(call.Args, "amountOut", p.AmountOut)
		setInt(call.Args, "amountInMaximum", p.AmountInMaximum)
		setInt(call.Args, "sqrtPriceLimitX96", p.SqrtPriceLimitX96)
	case method.Name == methodExactInput:
		p := *abi.ConvertType(values[0], new(ExactInputParams)).(*ExactInputParams)
		if err := setPath(call.Args, p.Path); err != nil {
			return model.DecodedCall{}, err
		}
		setAddr(call.Args, "recipient", p.Recipient)
		setInt(call.Args, "deadline", p.Deadline)
		setInt(call.Args, "amountIn", p.AmountIn)
		setInt(call.Args, "amountOutMinimum", p.AmountOutMinimum)
	case method.Name == methodExactOutput:
		p := *abi.ConvertType(values[0], new(ExactOutputParams)).(*ExactOutputParams)
		if err := setPath(call.Args, p.Path); err != nil {
			return model.DecodedCall{}, err
		}
		setAddr(call.Args, "recipient", p.Recipient)
		setInt(call.Args, "deadline", p.Deadline)
		setInt(call.Args, "amountOut", p.AmountOut)
		setInt(call.Args, "amountInMaximum", p.AmountInMaximum)
	case method.Name == methodMulticall && len(values) == 1:
		inner, err := decodeBatch(values[0])
		if err != nil {
			return model.DecodedCall{}, err
		}
		call.Calls = inner
	case method.Name == methodMulticall && len(values) == 2:
		setValue(call.Args, "deadline", values[0])
		inner, err := decodeBatch(values[1])
		if err != nil {
			return model.DecodedCall{}, err
		}
		call.Calls = inner
	default:
		// flat argument lists decode generically
		for i, input := range method.Inputs {
			setValue(call.Args, input.Name, values[i])
		}
	}

	if len(call.Args) == 0 {
		call.Args = nil
	}
	return call, nil
}

func lookupMethod(selector []byte) (*abi.Method, error) {
	rabi, err := SwapRouterABI()
	if err != nil {
		return nil, fmt.Errorf("parse router abi: %w", err)
	}
	if method, err := rabi.MethodById(selector); err == nil {
		return method, nil
	}

	mabi, err := MulticallDeadlineABI()
	if err != nil {
		return nil, fmt.Errorf("parse multicall abi: %w", err)
	}
	if method, err := mabi.MethodById(selector); err == nil {
		return method, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSelector, hexutil.Encode(selector))
}

func decodeBatch(value interface{}) ([]model.DecodedCall, error) {
	blobs, ok := value.([][]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected multicall data type %T", value)
	}
	out := make([]model.DecodedCall, 0, len(blobs))
	for i, blob := range blobs {
		inner, err := DecodeCalldata(blob)
		if err != nil {
			return nil, fmt.Errorf("multicall item %d: %w", i, err)
		}
		out = append(out, inner)
	}
	return out, nil
}

func setPath(args map[string]string, path []byte) error {
	tokens, fees, err := DecodePath(path)
	if err != nil {
		return err
	}
	args["path"] = hexutil.Encode(path)

	hops := make([]string, 0, len(tokens))
	for _, token := range tokens {
		hops = append(hops, token.Hex())
	}
	args["tokens"] = strings.Join(hops, ",")

	tiers := make([]string, 0, len(fees))
	for _, fee := range fees {
		tiers = append(tiers, fmt.Sprintf("%d", fee))
	}
	args["fees"] = strings.Join(tiers, ",")
	return nil
}

func setAddr(args map[string]string, name string, v common.Address) {
	args[name] = v.Hex()
}

func setInt(args map[string]string, name string, v *big.Int) {
	args[name] = v.String()
}

func setValue(args map[string]string, name string, value interface{}) {
	switch v := value.(type) {
	case common.Address:
		setAddr(args, name, v)
	case *big.Int:
		setInt(args, name, v)
	case uint8:
		args[name] = fmt.Sprintf("%d", v)
	case [32]byte:
		args[name] = hexutil.Encode(v[:])
	case []byte:
		args[name] = hexutil.Encode(v)
	default:
		args[name] = fmt.Sprintf("%v", v)
	}
}
