package entities

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Percent is an exact rational fraction. The zero value is 0/1.
type Percent struct {
	num *uint256.Int
	den *uint256.Int
}

// NewPercent builds numerator/denominator.
func NewPercent(numerator, denominator uint64) Percent {
	return Percent{num: uint256.NewInt(numerator), den: uint256.NewInt(denominator)}
}

// NewPercentFromInts builds a fraction from 256-bit parts; the parts are copied.
func NewPercentFromInts(numerator, denominator *uint256.Int) Percent {
	return Percent{num: cloneOrZero(numerator), den: cloneOrZero(denominator)}
}

// PercentFromDecimal converts a non-negative decimal such as 0.005 into the
// fraction 5/1000.
func PercentFromDecimal(d decimal.Decimal) (Percent, error) {
	if d.IsNegative() {
		return Percent{}, fmt.Errorf("%w: negative value %s", ErrInvalidPercent, d)
	}
	coef := d.Coefficient()
	exp := d.Exponent()
	den := big.NewInt(1)
	if exp >= 0 {
		coef.Mul(coef, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
	} else {
		den.Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
	}
	num, overflow := uint256.FromBig(coef)
	if overflow {
		return Percent{}, fmt.Errorf("%w: %s overflows 256 bits", ErrInvalidPercent, d)
	}
	denom, overflow := uint256.FromBig(den)
	if overflow {
		return Percent{}, fmt.Errorf("%w: %s has too many decimals", ErrInvalidPercent, d)
	}
	return Percent{num: num, den: denom}, nil
}

// ParsePercent reads a decimal fraction ("0.005") or a percentage ("0.5%").
func ParsePercent(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	scaled := strings.HasSuffix(s, "%")
	s = strings.TrimSuffix(s, "%")
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Percent{}, fmt.Errorf("%w: %v", ErrInvalidPercent, err)
	}
	if scaled {
		d = d.Shift(-2)
	}
	return PercentFromDecimal(d)
}

// Numerator returns a copy of the numerator.
func (p Percent) Numerator() *uint256.Int {
	if p.num == nil {
		return new(uint256.Int)
	}
	return new(uint256.Int).Set(p.num)
}

// Denominator returns a copy of the denominator.
func (p Percent) Denominator() *uint256.Int {
	if p.den == nil {
		return uint256.NewInt(1)
	}
	return new(uint256.Int).Set(p.den)
}

// IsZero reports a zero numerator.
func (p Percent) IsZero() bool {
	return p.num == nil || p.num.IsZero()
}

// Valid reports a nonzero denominator.
func (p Percent) Valid() bool {
	return p.den == nil || !p.den.IsZero()
}

// LessThanOne reports numerator < denominator for a valid fraction.
func (p Percent) LessThanOne() bool {
	return p.Valid() && p.Numerator().Lt(p.Denominator())
}

func (p Percent) String() string {
	return p.Numerator().Dec() + "/" + p.Denominator().Dec()
}
