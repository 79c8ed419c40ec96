// File: format.go
// Title: Formatting, Unix Time and Rounding
// Description: Compact and ISO 8601 round-trip formatting, Unix timestamps
//              and truncation or rounding to wall-clock boundaries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial formatting and rounding helpers
// - 2026-10-13 v0.2.0: Round-trip ISO format, half-to-even rounding on the wall clock

package timex

import (
	"math"
	"strings"
	"time"

	"github.com/msto63/quickx/foundation/core/errors"
)

// Common time formats
const (
	// CompactDate is the eight digit yyyyMMdd form
	CompactDate = "20060102"

	// ISO8601Date is the date-only ISO form
	ISO8601Date = "2006-01-02"

	// RoundTrip keeps 7 fractional digits and the offset, Z for UTC
	RoundTrip = "2006-01-02T15:04:05.0000000Z07:00"
)

// ===============================
// Formatting Functions
// ===============================

// ToYYYYMMDD formats the calendar date of t as eight digits
func ToYYYYMMDD(t time.Time) string {
	return t.Format(CompactDate)
}

// ToISOString formats t in the RoundTrip layout
func ToISOString(t time.Time) string {
	return t.Format(RoundTrip)
}

// ParseISO parses a RoundTrip or any RFC 3339 timestamp
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.TimexParseError("ParseISO", s, RoundTrip, err)
	}
	return t, nil
}

// ===============================
// Unix Time
// ===============================

// ToUnixSeconds returns the seconds since the Unix epoch
func ToUnixSeconds(t time.Time) int64 {
	return t.Unix()
}

// ToUnixMilliseconds returns the milliseconds since the Unix epoch
func ToUnixMilliseconds(t time.Time) int64 {
	return t.UnixMilli()
}

// FromUnixSeconds returns the UTC instant sec seconds after the epoch
func FromUnixSeconds(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// FromUnixMilliseconds returns the UTC instant msec milliseconds after the epoch
func FromUnixMilliseconds(msec int64) time.Time {
	return time.UnixMilli(msec).UTC()
}

// ===============================
// Truncation and Rounding
// ===============================

// Truncate returns t rounded down to a multiple of d, counted on the wall
// clock of t's location from January 1 of year 1.
func Truncate(t time.Time, d time.Duration) (time.Time, error) {
	if d <= 0 {
		return time.Time{}, errors.TimexInvalidInterval("Truncate", d)
	}
	wall := wallClock(t)
	return fromWallClock(wall.Truncate(d), t.Location()), nil
}

// Round returns t rounded to the nearest multiple of d on the wall clock
// of t's location. Halfway values round to the even multiple.
func Round(t time.Time, d time.Duration) (time.Time, error) {
	if d <= 0 {
		return time.Time{}, errors.TimexInvalidInterval("Round", d)
	}
	wall := wallClock(t)
	down := wall.Truncate(d)
	rem := wall.Sub(down)

	switch up := d - rem; {
	case rem > up:
		down = down.Add(d)
	case rem == up && isOddMultiple(down, d):
		down = down.Add(d)
	}
	return fromWallClock(down, t.Location()), nil
}

// isOddMultiple reports whether boundary is an odd multiple of d
func isOddMultiple(boundary time.Time, d time.Duration) bool {
	if d > math.MaxInt64/2 {
		return false
	}
	return !boundary.Truncate(2 * d).Equal(boundary)
}

// wallClock reads the wall clock of t as a UTC instant
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func fromWallClock(w time.Time, loc *time.Location) time.Time {
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), w.Nanosecond(), loc)
}
