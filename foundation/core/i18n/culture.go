// File: culture.go
// Title: Current Culture
// Description: The process-wide culture consulted by locale-sensitive
//              formatting and comparison, and cached message printers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package i18n

import (
	"os"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/msto63/quickx/pkg/core/cache"
)

// Invariant is the culture-neutral tag
var Invariant = language.Und

var (
	currentMu sync.RWMutex
	current   = FromEnvironment()

	printers = cache.New[language.Tag, *message.Printer](cache.Config{MaxItems: 64})
)

// environment variables consulted by FromEnvironment, highest priority first
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Current returns the current culture
func Current() language.Tag {
	currentMu.RLock()
	defer currentMu.RUnlock()
	return current
}

// SetCurrent replaces the current culture and returns the previous one
func SetCurrent(tag language.Tag) language.Tag {
	currentMu.Lock()
	defer currentMu.Unlock()
	prev := current
	current = tag
	return prev
}

// SetCurrentLocale parses locale and installs it as the current culture
func SetCurrentLocale(locale string) error {
	tag, err := ParseLocale(locale)
	if err != nil {
		return err
	}
	SetCurrent(tag)
	return nil
}

// FromEnvironment derives a culture from LC_ALL, LC_MESSAGES and LANG. The
// first parsable value wins; Invariant is returned when none is set.
func FromEnvironment() language.Tag {
	for _, name := range localeEnvVars {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if tag, err := ParseLocale(value); err == nil {
			return tag
		}
	}
	return Invariant
}

// Printer returns a message printer for tag. Printers are cached per tag.
func Printer(tag language.Tag) *message.Printer {
	p, _ := printers.GetOrSet(tag, func() (*message.Printer, error) {
		return message.NewPrinter(tag), nil
	})
	return p
}

// Match picks the best supported tag for an Accept-Language style
// preference list such as "de-CH, en;q=0.8". The first supported tag is
// the fallback.
func Match(preferences string, supported ...language.Tag) language.Tag {
	if len(supported) == 0 {
		return Invariant
	}
	desired, _, err := language.ParseAcceptLanguage(preferences)
	if err != nil || len(desired) == 0 {
		return supported[0]
	}
	_, index, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return supported[0]
	}
	return supported[index]
}
