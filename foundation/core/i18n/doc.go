// File: doc.go
// Title: Internationalization Package Documentation
// Description: Package i18n owns the process-wide current culture used by
//              the locale-sensitive quickx operations and offers locale
//              normalization helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-13 v0.2.0: Reduced to culture handling on golang.org/x/text/language

/*
Package i18n provides culture handling for quickx.

The current culture is a language.Tag. It starts from the process
environment (LC_ALL, LC_MESSAGES, LANG) and can be replaced at runtime:

	i18n.SetCurrent(language.German)
	tag := i18n.Current()

Culture-aware formatting goes through a cached message.Printer:

	p := i18n.Printer(i18n.Current())
	p.Sprintf("%d", 1234567) // "1.234.567" for German

Invariant is the culture-neutral tag (language.Und). Operations documented
as "invariant" use it regardless of the current culture.

Locale strings such as "de_DE.UTF-8" are normalized with NormalizeLocale
and parsed with ParseLocale; the latter returns an mdwerror.Error matching
ErrInvalidArgument for unparsable input.
*/
package i18n
