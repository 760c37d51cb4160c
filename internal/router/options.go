package router

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"swapcalldata/internal/entities"
)

// SwapOptions configures how a trade is turned into router calldata.
type SwapOptions struct {
	// SlippageTolerance must lie in [0, 1).
	SlippageTolerance entities.Percent
	// Recipient receives the trade output. Must not be the zero address.
	Recipient common.Address
	// Deadline is the unix time after which the router rejects the call. Must be > 0.
	Deadline *uint256.Int
	// SqrtPriceLimitX96 bounds the pool price on single-hop swaps. Nil encodes
	// zero, meaning no limit. Setting it on a multi-hop leg is an error.
	SqrtPriceLimitX96 *uint256.Int
	// Fee skims a share of the output to a third party. Nil or a zero fee
	// adds no fee step. A nonzero fee below one basis point is rejected,
	// since the router only takes whole bips.
	Fee *FeeOptions
	// InputTokenPermit prepends a selfPermit call approving the router to
	// spend the input token. Nil adds none.
	InputTokenPermit *PermitOptions
	// MulticallDeadline batches through multicall(uint256,bytes[]) instead
	// of multicall(bytes[]) when more than one call is needed.
	MulticallDeadline bool
}

// FeeOptions describes an output fee.
type FeeOptions struct {
	Fee       entities.Percent
	Recipient common.Address
}

// PermitOptions carries a signed ERC-2612 permit, or a DAI-style permit when
// Allowed is set.
type PermitOptions struct {
	Allowed bool
	V       uint8
	R       common.Hash
	S       common.Hash

	// Amount and Deadline are used by standard permits.
	Amount   *uint256.Int
	Deadline *uint256.Int

	// Nonce and Expiry are used by allowed permits.
	Nonce  *uint256.Int
	Expiry *uint256.Int
}

// CallParameters is the payload of the transaction to send to the router.
type CallParameters struct {
	Calldata []byte
	// Value is the native amount to attach, as 0x-prefixed hex with an even
	// number of digits; "0x00" when nothing is attached.
	Value string
}

// CalldataHex returns the calldata as 0x-prefixed hex.
func (p CallParameters) CalldataHex() string {
	return hexutil.Encode(p.Calldata)
}

func (o SwapOptions) validate() error {
	if err := validateSlippage(o.SlippageTolerance); err != nil {
		return err
	}
	if o.Recipient == (common.Address{}) {
		return ErrMissingRecipient
	}
	if o.Deadline == nil || o.Deadline.IsZero() {
		return fmt.Errorf("%w: must be a positive unix timestamp", ErrInvalidDeadline)
	}
	if o.SqrtPriceLimitX96 != nil && o.SqrtPriceLimitX96.BitLen() > 160 {
		return fmt.Errorf("%w: %s exceeds uint160", ErrInvalidPriceLimit, o.SqrtPriceLimitX96.Dec())
	}
	if err := validateFee(o.Fee); err != nil {
		return err
	}
	return validatePermit(o.InputTokenPermit)
}

func (o SwapOptions) priceLimit() *uint256.Int {
	if o.SqrtPriceLimitX96 == nil {
		return new(uint256.Int)
	}
	return o.SqrtPriceLimitX96
}

// toHex renders v with an even number of hex digits.
func toHex(v *uint256.Int) string {
	digits := strings.TrimPrefix(v.Hex(), "0x")
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	return "0x" + digits
}
