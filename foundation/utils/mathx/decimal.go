// File: decimal.go
// Title: Decimal Arithmetic
// Description: Exact decimal values backed by *big.Rat with rounding to a
//              fixed number of fractional digits under several modes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method
// - 2026-10-13 v0.2.0: Exact integer-based rounding, dropped object pools,
//                       errors from the shared constructors

package mathx

import (
	"math/big"

	"github.com/msto63/quickx/foundation/core/errors"
)

// RoundingMode defines how decimal numbers are rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds ties away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds ties to the even neighbour (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds ties toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

// String returns the mode name
func (m RoundingMode) String() string {
	switch m {
	case RoundingModeHalfUp:
		return "half-up"
	case RoundingModeHalfEven:
		return "half-even"
	case RoundingModeHalfDown:
		return "half-down"
	case RoundingModeUp:
		return "up"
	case RoundingModeDown:
		return "down"
	default:
		return "unknown"
	}
}

// maxStringDigits bounds the fractional digits String prints for values
// without a terminating decimal expansion
const maxStringDigits = 20

// Decimal represents a decimal number with arbitrary precision. The zero
// value is 0.
type Decimal struct {
	value *big.Rat
}

// NewDecimal creates a Decimal from a string such as "123.45", "-67.89",
// "1e3" or "1/2"
func NewDecimal(s string) (Decimal, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, errors.MathxInvalidDecimal(s)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a Decimal from a string, panicking on error.
// Use it for constants.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// NewDecimalFromFloat creates a Decimal holding the exact binary value of f.
// Prefer string input when the decimal digits matter.
func NewDecimalFromFloat(f float64) Decimal {
	rat := new(big.Rat)
	if rat.SetFloat64(f) == nil {
		return Decimal{value: new(big.Rat)}
	}
	return Decimal{value: rat}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns d + other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns d - other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns d * other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Divide returns d / other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, errors.MathxDivisionByZero("Divide")
	}
	return Decimal{value: new(big.Rat).Quo(d.rat(), other.rat())}, nil
}

// Abs returns |d|
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsZero reports whether d equals zero
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Compare returns -1 if d < other, 0 if equal, +1 if d > other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports whether d and other are the same number
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// Round rounds d to places fractional digits. Negative places are treated
// as zero.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)

	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(scale))
	q, rem := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))
	if rem.Sign() != 0 && roundsAway(q, rem, scaled.Denom(), mode) {
		if scaled.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return Decimal{value: new(big.Rat).SetFrac(q, scale)}
}

// roundsAway decides whether the truncated quotient q moves one unit away
// from zero. rem is the non-zero truncation remainder over denom.
func roundsAway(q, rem, denom *big.Int, mode RoundingMode) bool {
	half := new(big.Int).Abs(rem)
	half.Lsh(half, 1)
	cmp := half.Cmp(denom)

	switch mode {
	case RoundingModeHalfUp:
		return cmp >= 0
	case RoundingModeHalfEven:
		return cmp > 0 || (cmp == 0 && q.Bit(0) == 1)
	case RoundingModeHalfDown:
		return cmp > 0
	case RoundingModeUp:
		return true
	default:
		return false
	}
}

// Truncate drops fractional digits beyond places
func (d Decimal) Truncate(places int) Decimal {
	return d.Round(places, RoundingModeDown)
}

// String returns the shortest exact decimal form when one exists, and
// otherwise maxStringDigits fractional digits with trailing zeros removed
func (d Decimal) String() string {
	digits, exact := terminatingDigits(d.rat().Denom())
	if exact {
		return d.rat().FloatString(digits)
	}
	s := d.rat().FloatString(maxStringDigits)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// StringFixed formats d with exactly places fractional digits, rounding
// ties away from zero
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, RoundingModeHalfUp).rat().FloatString(places)
}

// Float64 returns the nearest float64
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// terminatingDigits reports how many fractional digits the expansion of
// 1/denom has, and whether it terminates at all
func terminatingDigits(denom *big.Int) (int, bool) {
	rest := new(big.Int).Set(denom)
	two, five := big.NewInt(2), big.NewInt(5)
	mod := new(big.Int)
	twos, fives := 0, 0
	for {
		q, m := new(big.Int).QuoRem(rest, two, mod)
		if m.Sign() != 0 {
			break
		}
		rest = q
		twos++
	}
	for {
		q, m := new(big.Int).QuoRem(rest, five, mod)
		if m.Sign() != 0 {
			break
		}
		rest = q
		fives++
	}
	if !rest.IsInt64() || rest.Int64() != 1 {
		return 0, false
	}
	return max(twos, fives), true
}
