package ingest

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ParseAddress converts a hex string into common.Address.
func ParseAddress(input string) (common.Address, error) {
	input = strings.TrimSpace(input)
	if !common.IsHexAddress(input) {
		return common.Address{}, fmt.Errorf("invalid address: %q", input)
	}
	return common.HexToAddress(input), nil
}

// ParseAmount reads a decimal or 0x-prefixed hex integer of at most 256 bits.
func ParseAmount(input string) (*uint256.Int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
		b, ok := new(big.Int).SetString(input[2:], 16)
		if !ok || b.Sign() < 0 {
			return nil, fmt.Errorf("invalid amount %q", input)
		}
		v, overflow := uint256.FromBig(b)
		if overflow {
			return nil, fmt.Errorf("amount %q exceeds 256 bits", input)
		}
		return v, nil
	}
	v, err := uint256.FromDecimal(input)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", input, err)
	}
	return v, nil
}

// parseOptionalAmount is ParseAmount with "" meaning nil.
func parseOptionalAmount(input string) (*uint256.Int, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	return ParseAmount(input)
}
