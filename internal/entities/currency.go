package entities

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// CurrencyKind tags the variant held by a Currency.
type CurrencyKind uint8

const (
	KindToken CurrencyKind = iota + 1
	KindNative
)

func (k CurrencyKind) String() string {
	switch k {
	case KindToken:
		return "token"
	case KindNative:
		return "native"
	default:
		return "unknown"
	}
}

// Currency is either an ERC20 token or the chain's native asset. A native
// currency carries the address of the token that wraps it, since pools only
// ever hold the wrapped form.
type Currency struct {
	kind     CurrencyKind
	address  common.Address
	decimals uint8
	symbol   string
}

// NewToken builds a token currency.
func NewToken(address common.Address, decimals uint8, symbol string) Currency {
	return Currency{kind: KindToken, address: address, decimals: decimals, symbol: symbol}
}

// NewNative builds the native currency of a chain whose wrapped form lives at wrapped.
func NewNative(wrapped common.Address, symbol string) Currency {
	return Currency{kind: KindNative, address: wrapped, decimals: 18, symbol: symbol}
}

var wrappedNative = map[uint64]struct {
	address common.Address
	symbol  string
}{
	1:     {common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), "ETH"},
	10:    {common.HexToAddress("0x4200000000000000000000000000000000000006"), "ETH"},
	56:    {common.HexToAddress("0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"), "BNB"},
	137:   {common.HexToAddress("0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270"), "MATIC"},
	8453:  {common.HexToAddress("0x4200000000000000000000000000000000000006"), "ETH"},
	42161: {common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"), "ETH"},
}

// NativeOnChain returns the native currency of a known chain.
func NativeOnChain(chainID uint64) (Currency, error) {
	w, ok := wrappedNative[chainID]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %d", ErrUnknownChain, chainID)
	}
	return NewNative(w.address, w.symbol), nil
}

func (c Currency) Kind() CurrencyKind { return c.kind }
func (c Currency) IsNative() bool     { return c.kind == KindNative }
func (c Currency) IsToken() bool      { return c.kind == KindToken }
func (c Currency) Decimals() uint8    { return c.decimals }
func (c Currency) Symbol() string     { return c.symbol }

// Address is the token address, or the wrapped token address for the native asset.
func (c Currency) Address() common.Address { return c.address }

// Wrapped returns the token form of the currency.
func (c Currency) Wrapped() Currency {
	switch c.kind {
	case KindNative:
		return NewToken(c.address, c.decimals, "W"+c.symbol)
	default:
		return c
	}
}

// Equal reports whether both currencies are the same variant and, for
// tokens, share an address.
func (c Currency) Equal(other Currency) bool {
	switch c.kind {
	case KindNative:
		return other.kind == KindNative
	case KindToken:
		return other.kind == KindToken && c.address == other.address
	default:
		return false
	}
}

func (c Currency) String() string {
	switch c.kind {
	case KindNative:
		return c.symbol
	case KindToken:
		if c.symbol != "" {
			return c.symbol + "(" + c.address.Hex() + ")"
		}
		return c.address.Hex()
	default:
		return "invalid currency"
	}
}
