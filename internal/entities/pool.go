package entities

import (
	"bytes"
	"fmt"

	"github.com/holiman/uint256"
)

// FeeAmount is a pool fee tier in hundredths of a basis point.
type FeeAmount uint32

const (
	FeeLowest FeeAmount = 100
	FeeLow    FeeAmount = 500
	FeeMedium FeeAmount = 3000
	FeeHigh   FeeAmount = 10000

	// MaxFee is the exclusive bound of a uint24 fee, which the router
	// encodes in three bytes.
	MaxFee FeeAmount = 1 << 24
)

// Pool is a snapshot of one concentrated liquidity pool. Only the token pair
// and fee tier reach the calldata; price and liquidity describe the state
// the upstream quote was taken against.
type Pool struct {
	Token0       Currency
	Token1       Currency
	Fee          FeeAmount
	SqrtPriceX96 *uint256.Int
	Liquidity    *uint256.Int
	TickCurrent  int32
}

// NewPool builds a pool, sorting the pair by address the way the factory does.
func NewPool(tokenA, tokenB Currency, fee FeeAmount, sqrtPriceX96, liquidity *uint256.Int, tickCurrent int32) (*Pool, error) {
	if !tokenA.IsToken() || !tokenB.IsToken() {
		return nil, fmt.Errorf("%w: pool currencies must be tokens", ErrInvalidPool)
	}
	cmp := bytes.Compare(tokenA.Address().Bytes(), tokenB.Address().Bytes())
	if cmp == 0 {
		return nil, fmt.Errorf("%w: identical tokens %s", ErrInvalidPool, tokenA.Address().Hex())
	}
	if fee >= MaxFee {
		return nil, fmt.Errorf("%w: fee %d exceeds uint24", ErrInvalidPool, fee)
	}
	if cmp > 0 {
		tokenA, tokenB = tokenB, tokenA
	}
	return &Pool{
		Token0:       tokenA,
		Token1:       tokenB,
		Fee:          fee,
		SqrtPriceX96: cloneOrZero(sqrtPriceX96),
		Liquidity:    cloneOrZero(liquidity),
		TickCurrent:  tickCurrent,
	}, nil
}

// Involves reports whether token is one side of the pool.
func (p *Pool) Involves(token Currency) bool {
	return token.Equal(p.Token0) || token.Equal(p.Token1)
}

// Other returns the side of the pool opposite to token. The caller must
// check Involves first.
func (p *Pool) Other(token Currency) Currency {
	if token.Equal(p.Token0) {
		return p.Token1
	}
	return p.Token0
}

func cloneOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(v)
}
