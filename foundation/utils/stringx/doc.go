// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides rune-safe string shaping for quickx.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-13 v0.3.0: Substrings, comparison modes, encodings, FormatWith

// Package stringx provides string shaping operations.
//
// Package: stringx
// Title: String Shaping for quickx
// Description: Substring extraction by rune count, delimiter search,
//              culture-aware case-insensitive comparison, prefix and suffix
//              handling, line endings, base64 through text encodings,
//              enum lookup and positional formatting.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-13
//
// # Substrings
//
// Lengths count runes, not bytes:
//
//	stringx.Left("this my source", 7)                   // "this my"
//	stringx.Right("abcdef", 3)                          // "def"
//	stringx.Between("this begin my source end", "begin", "end") // " my source "
//
// Left, Right and Between clamp or return "". The OrError variants report
// misuse instead: a length outside the string fails with CodeInvalidLength
// (matching mdwerror.ErrInvalidArgument) and a missing delimiter fails with
// CodeNotFound (matching mdwerror.ErrNotFound).
//
// # Comparison
//
// EqualsIgnoreCase follows i18n.Current(), so under Turkish "I" and "i"
// differ while "İ" and "i" match. EqualsIgnoreCaseInvariant applies
// language-neutral folding and EqualsIgnoreCaseOrdinal uses
// strings.EqualFold. The affix helpers take an optional Comparison:
//
//	stringx.EnsureStartsWith("example.com", "https://")
//	stringx.RemoveSuffix("Report.PDF", ".pdf", stringx.OrdinalIgnoreCase) // "Report"
//
// # Encodings
//
// ToBase64 and FromBase64 use UTF-8 unless an encoding from
// golang.org/x/text/encoding is given; LookupEncoding resolves WHATWG
// labels such as "utf-16le" or "windows-1252".
//
// # Formatting
//
// FormatWith fills {index[,alignment][:format]} placeholders:
//
//	s, err := stringx.FormatWithLocale(language.German, "{0:N2} EUR", 1234.5)
//	// "1.234,50 EUR"
package stringx
