// File: round.go
// Title: Fixed-Digit Rounding
// Description: Rounds decimals to a fixed number of fractional digits with
//              ties going away from zero.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package mathx

import (
	"github.com/msto63/quickx/foundation/core/errors"
)

// MaxKeepDigits is the largest digit count RoundKeepDigits accepts
const MaxKeepDigits = 28

// RoundKeepDigits rounds d to digits fractional digits, ties away from
// zero: 2.5 becomes 3, -2.5 becomes -3 and 1.005 becomes 1.01.
func RoundKeepDigits(d Decimal, digits int) (Decimal, error) {
	if digits < 0 || digits > MaxKeepDigits {
		return Decimal{}, errors.MathxOutOfRange("RoundKeepDigits", "digits", digits, "between 0 and 28")
	}
	return d.Round(digits, RoundingModeHalfUp), nil
}

// RoundKeepOneDigit rounds to one fractional digit
func RoundKeepOneDigit(d Decimal) Decimal {
	return d.Round(1, RoundingModeHalfUp)
}

// RoundKeepTwoDigits rounds to two fractional digits
func RoundKeepTwoDigits(d Decimal) Decimal {
	return d.Round(2, RoundingModeHalfUp)
}

// RoundKeepThreeDigits rounds to three fractional digits
func RoundKeepThreeDigits(d Decimal) Decimal {
	return d.Round(3, RoundingModeHalfUp)
}
