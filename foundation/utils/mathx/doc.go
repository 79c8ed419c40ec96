// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal values and fixed-digit
//              rounding helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-13 v0.3.0: Reduced to decimals and rounding

// Package mathx provides exact decimal arithmetic and rounding.
//
// Decimal wraps a *big.Rat, so values parsed from strings such as "1.005"
// are held exactly and rounding never suffers from binary floating point
// artefacts:
//
//	d := mathx.MustNewDecimal("1.005")
//	fmt.Println(mathx.RoundKeepTwoDigits(d)) // 1.01
//
// RoundKeepDigits rounds ties away from zero. Decimal.Round accepts any
// RoundingMode:
//
//	v := mathx.MustNewDecimal("2.5")
//	v.Round(0, mathx.RoundingModeHalfEven) // 2
//	v.Round(0, mathx.RoundingModeHalfUp)   // 3
//
// Digit counts outside 0..MaxKeepDigits are rejected with an error that
// matches ErrInvalidArgument from foundation/core/error.
package mathx
