// File: decimal_test.go
// Title: Unit Tests for Decimal Arithmetic
// Description: Tests for parsing, arithmetic, rounding modes, fixed-digit
//              rounding and string forms.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for decimal arithmetic
// - 2026-10-13 v0.2.0: Rounding mode tables and RoundKeepDigits

package mathx

import (
	stderrors "errors"
	"testing"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
)

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{"positive integer", "123", false, "123"},
		{"negative integer", "-456", false, "-456"},
		{"positive decimal", "123.45", false, "123.45"},
		{"negative decimal", "-67.89", false, "-67.89"},
		{"zero", "0", false, "0"},
		{"zero decimal", "0.00", false, "0"},
		{"leading zeros", "000123.450", false, "123.45"},
		{"fraction", "1/2", false, "0.5"},
		{"exponent", "1.5e2", false, "150"},
		{"invalid format", "abc", true, ""},
		{"empty string", "", true, ""},
		{"multiple decimals", "12.34.56", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewDecimal(tt.input)

			if tt.wantErr {
				if !stderrors.Is(err, mdwerror.ErrInvalidArgument) {
					t.Errorf("NewDecimal(%q) error = %v, want ErrInvalidArgument", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewDecimal(%q) unexpected error: %v", tt.input, err)
			}
			if result.String() != tt.want {
				t.Errorf("NewDecimal(%q) = %q, want %q", tt.input, result.String(), tt.want)
			}
		})
	}
}

func TestMustNewDecimal(t *testing.T) {
	if got := MustNewDecimal("123.45").String(); got != "123.45" {
		t.Errorf("MustNewDecimal(\"123.45\") = %q, want %q", got, "123.45")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustNewDecimal(\"invalid\") expected panic")
		}
	}()
	MustNewDecimal("invalid")
}

func TestArithmetic(t *testing.T) {
	a := MustNewDecimal("10.25")
	b := MustNewDecimal("0.75")

	tests := []struct {
		name string
		got  Decimal
		want string
	}{
		{"add", a.Add(b), "11"},
		{"subtract", a.Subtract(b), "9.5"},
		{"multiply", a.Multiply(b), "7.6875"},
		{"negate", a.Neg(), "-10.25"},
		{"abs", a.Neg().Abs(), "10.25"},
		{"from int", NewDecimalFromInt(-7), "-7"},
		{"from float", NewDecimalFromFloat(0.5), "0.5"},
		{"zero value", Decimal{}.Add(b), "0.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	q, err := NewDecimalFromInt(1).Divide(NewDecimalFromInt(3))
	if err != nil {
		t.Fatalf("Divide() error = %v", err)
	}
	if got := q.String(); got != "0.33333333333333333333" {
		t.Errorf("1/3 = %q, want %q", got, "0.33333333333333333333")
	}
	if _, err := a.Divide(Decimal{}); !stderrors.Is(err, mdwerror.ErrInvalidArgument) {
		t.Errorf("Divide(0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.10", "1.1", 0},
		{"-1", "1", -1},
		{"2.5", "2.49", 1},
	}

	for _, tt := range tests {
		if got := MustNewDecimal(tt.a).Compare(MustNewDecimal(tt.b)); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if !MustNewDecimal("0.0").IsZero() {
		t.Error("0.0 should be zero")
	}
	if !MustNewDecimal("3/6").Equal(MustNewDecimal("0.5")) {
		t.Error("3/6 should equal 0.5")
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		value  string
		places int
		mode   RoundingMode
		want   string
	}{
		{"2.5", 0, RoundingModeHalfUp, "3"},
		{"-2.5", 0, RoundingModeHalfUp, "-3"},
		{"2.4", 0, RoundingModeHalfUp, "2"},
		{"2.5", 0, RoundingModeHalfEven, "2"},
		{"3.5", 0, RoundingModeHalfEven, "4"},
		{"-2.5", 0, RoundingModeHalfEven, "-2"},
		{"-3.5", 0, RoundingModeHalfEven, "-4"},
		{"2.5", 0, RoundingModeHalfDown, "2"},
		{"2.51", 0, RoundingModeHalfDown, "3"},
		{"-2.5", 0, RoundingModeHalfDown, "-2"},
		{"2.01", 0, RoundingModeUp, "3"},
		{"-2.01", 0, RoundingModeUp, "-3"},
		{"2.99", 0, RoundingModeDown, "2"},
		{"-2.99", 0, RoundingModeDown, "-2"},
		{"1.005", 2, RoundingModeHalfUp, "1.01"},
		{"1.2345", 3, RoundingModeHalfEven, "1.234"},
		{"7", 2, RoundingModeUp, "7"},
		{"1.5", -1, RoundingModeHalfUp, "2"},
	}

	for _, tt := range tests {
		t.Run(tt.value+"/"+tt.mode.String(), func(t *testing.T) {
			got := MustNewDecimal(tt.value).Round(tt.places, tt.mode).String()
			if got != tt.want {
				t.Errorf("Round(%s, %d, %s) = %q, want %q", tt.value, tt.places, tt.mode, got, tt.want)
			}
		})
	}

	if got := MustNewDecimal("9.876").Truncate(1).String(); got != "9.8" {
		t.Errorf("Truncate(9.876, 1) = %q, want %q", got, "9.8")
	}
}

func TestRoundKeepDigits(t *testing.T) {
	tests := []struct {
		value  string
		digits int
		want   string
	}{
		{"2.5", 0, "3"},
		{"-2.5", 0, "-3"},
		{"1.005", 2, "1.01"},
		{"-1.005", 2, "-1.01"},
		{"1.0049", 2, "1"},
		{"0.12345", 4, "0.1235"},
	}

	for _, tt := range tests {
		got, err := RoundKeepDigits(MustNewDecimal(tt.value), tt.digits)
		if err != nil {
			t.Fatalf("RoundKeepDigits(%s, %d) error = %v", tt.value, tt.digits, err)
		}
		if got.String() != tt.want {
			t.Errorf("RoundKeepDigits(%s, %d) = %q, want %q", tt.value, tt.digits, got, tt.want)
		}
	}

	for _, digits := range []int{-1, MaxKeepDigits + 1} {
		_, err := RoundKeepDigits(MustNewDecimal("1"), digits)
		if mdwerror.GetCode(err) != mdwerror.CodeValueOutOfRange {
			t.Errorf("RoundKeepDigits(1, %d) code = %v, want %v", digits, mdwerror.GetCode(err), mdwerror.CodeValueOutOfRange)
		}
	}

	d := MustNewDecimal("3.14159")
	shortcuts := []struct {
		name string
		got  Decimal
		want string
	}{
		{"one", RoundKeepOneDigit(d), "3.1"},
		{"two", RoundKeepTwoDigits(d), "3.14"},
		{"three", RoundKeepThreeDigits(d), "3.142"},
	}
	for _, tt := range shortcuts {
		if tt.got.String() != tt.want {
			t.Errorf("RoundKeep %s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestStringFixed(t *testing.T) {
	tests := []struct {
		value  string
		places int
		want   string
	}{
		{"10.5", 2, "10.50"},
		{"1.005", 2, "1.01"},
		{"-0.004", 2, "0.00"},
		{"42", 0, "42"},
		{"42.5", -3, "43"},
	}

	for _, tt := range tests {
		if got := MustNewDecimal(tt.value).StringFixed(tt.places); got != tt.want {
			t.Errorf("StringFixed(%s, %d) = %q, want %q", tt.value, tt.places, got, tt.want)
		}
	}

	if got := MustNewDecimal("0.25").Float64(); got != 0.25 {
		t.Errorf("Float64() = %v, want 0.25", got)
	}
}
