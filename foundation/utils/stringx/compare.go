// File: compare.go
// Title: Case-Insensitive Comparison and Affixes
// Description: Culture-aware, invariant and ordinal case-insensitive
//              equality, and prefix/suffix handling under a comparison mode.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/quickx/foundation/core/i18n"
)

// Comparison selects how two strings are matched
type Comparison int

const (
	// Ordinal compares bytes exactly (default)
	Ordinal Comparison = iota

	// OrdinalIgnoreCase uses simple Unicode case folding
	OrdinalIgnoreCase

	// InvariantIgnoreCase uses full, language-neutral case folding
	InvariantIgnoreCase

	// CurrentCultureIgnoreCase folds case under i18n.Current()
	CurrentCultureIgnoreCase
)

var comparisonNames = [...]string{"ordinal", "ordinal-ignore-case", "invariant-ignore-case", "current-culture-ignore-case"}

// String returns the name of the comparison mode
func (c Comparison) String() string {
	if c < Ordinal || c > CurrentCultureIgnoreCase {
		return "unknown"
	}
	return comparisonNames[c]
}

func comparison(cmp []Comparison) Comparison {
	if len(cmp) > 0 {
		return cmp[0]
	}
	return Ordinal
}

// Equal reports whether a and b match under cmp
func (c Comparison) Equal(a, b string) bool {
	switch c {
	case OrdinalIgnoreCase:
		return strings.EqualFold(a, b)
	case InvariantIgnoreCase:
		return EqualsIgnoreCaseInvariant(a, b)
	case CurrentCultureIgnoreCase:
		return EqualsIgnoreCaseIn(i18n.Current(), a, b)
	default:
		return a == b
	}
}

// EqualsIgnoreCase compares a and b ignoring case under the current culture
func EqualsIgnoreCase(a, b string) bool {
	return EqualsIgnoreCaseIn(i18n.Current(), a, b)
}

// EqualsIgnoreCaseIn compares a and b ignoring case under tag. Turkish and
// Azeri keep dotted and dotless i apart; other languages use full folding.
func EqualsIgnoreCaseIn(tag language.Tag, a, b string) bool {
	if base, _ := tag.Base(); base == turkish || base == azeri {
		// casers are stateful, one per String call
		return cases.Lower(tag).String(a) == cases.Lower(tag).String(b)
	}
	return EqualsIgnoreCaseInvariant(a, b)
}

var (
	turkish, _ = language.Turkish.Base()
	azeri, _   = language.Azerbaijani.Base()
)

// EqualsIgnoreCaseInvariant compares a and b with language-neutral full
// case folding
func EqualsIgnoreCaseInvariant(a, b string) bool {
	return cases.Fold().String(a) == cases.Fold().String(b)
}

// EqualsIgnoreCaseOrdinal compares a and b with simple Unicode folding
func EqualsIgnoreCaseOrdinal(a, b string) bool {
	return strings.EqualFold(a, b)
}

// HasPrefix reports whether s begins with prefix under cmp. Case-insensitive
// modes compare the leading runes of s, as many as prefix has.
func HasPrefix(s, prefix string, cmp ...Comparison) bool {
	c := comparison(cmp)
	if c == Ordinal {
		return strings.HasPrefix(s, prefix)
	}
	head := Left(s, utf8.RuneCountInString(prefix))
	return c.Equal(head, prefix)
}

// HasSuffix reports whether s ends with suffix under cmp
func HasSuffix(s, suffix string, cmp ...Comparison) bool {
	c := comparison(cmp)
	if c == Ordinal {
		return strings.HasSuffix(s, suffix)
	}
	tail := Right(s, utf8.RuneCountInString(suffix))
	return c.Equal(tail, suffix)
}

// EnsureStartsWith prepends prefix unless s already starts with it
func EnsureStartsWith(s, prefix string, cmp ...Comparison) string {
	if HasPrefix(s, prefix, cmp...) {
		return s
	}
	return prefix + s
}

// EnsureEndsWith appends suffix unless s already ends with it
func EnsureEndsWith(s, suffix string, cmp ...Comparison) string {
	if HasSuffix(s, suffix, cmp...) {
		return s
	}
	return s + suffix
}

// RemovePrefix strips one leading prefix if present
func RemovePrefix(s, prefix string, cmp ...Comparison) string {
	if !HasPrefix(s, prefix, cmp...) {
		return s
	}
	return s[len(Left(s, utf8.RuneCountInString(prefix))):]
}

// RemoveSuffix strips one trailing suffix if present
func RemoveSuffix(s, suffix string, cmp ...Comparison) string {
	if !HasSuffix(s, suffix, cmp...) {
		return s
	}
	return s[:len(s)-len(Right(s, utf8.RuneCountInString(suffix)))]
}
