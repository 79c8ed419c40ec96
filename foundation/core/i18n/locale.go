// File: locale.go
// Title: Locale Normalization
// Description: Normalization, validation and parsing of locale strings as
//              they appear in environment variables and configuration files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial locale helpers
// - 2026-10-13 v0.2.0: Parsing into language.Tag, POSIX suffix handling

package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
	"github.com/msto63/quickx/foundation/core/errors"
)

// NormalizeLocale normalizes a locale string to "ll" or "ll-CC". POSIX
// suffixes (".UTF-8", "@euro") are dropped. Invalid input yields "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(strings.ToLower(locale), "_", "-"), "-")

	lang := parts[0]
	if len(lang) != 2 && len(lang) != 3 {
		return ""
	}
	for _, r := range lang {
		if r < 'a' || r > 'z' {
			return ""
		}
	}

	if len(parts) > 1 && len(parts[1]) == 2 {
		return lang + "-" + strings.ToUpper(parts[1])
	}
	return lang
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if strings.TrimSpace(locale) == "" {
		return errors.RequiredArgument(errors.ModuleI18n, "ValidateLocale", "locale")
	}
	if NormalizeLocale(locale) == "" {
		return errors.InvalidInput(errors.ModuleI18n, "ValidateLocale", "locale", locale, "expected e.g. 'en' or 'en-US'")
	}
	return nil
}

// SplitLocale splits a locale into language and country parts
func SplitLocale(locale string) (lang, country string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}
	lang, country, _ = strings.Cut(normalized, "-")
	return lang, country
}

// ParseLocale parses a locale string into a language tag. "C", "POSIX" and
// "invariant" map to Invariant.
func ParseLocale(locale string) (language.Tag, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "c", "posix", "invariant", "und":
		return Invariant, nil
	}
	if err := ValidateLocale(locale); err != nil {
		return Invariant, err
	}
	tag, err := language.Parse(NormalizeLocale(locale))
	if err != nil {
		return Invariant, errors.NewErrorBuilder(errors.ModuleI18n).
			Operation("ParseLocale").
			Code(mdwerror.CodeInvalidInput).
			Messagef("ParseLocale: unknown locale %q", locale).
			Cause(err).
			Detail("locale", locale).
			Build()
	}
	return tag, nil
}

// DisplayName returns the name of the locale in its own language,
// e.g. "Deutsch (Deutschland)" for de-DE. Unknown tags return their string form.
func DisplayName(tag language.Tag) string {
	if tag == Invariant {
		return "Invariant"
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}
