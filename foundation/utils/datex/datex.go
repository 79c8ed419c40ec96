// File: datex.go
// Title: Calendar Arithmetic on Dates
// Description: Day navigation, week and month boundaries, business days
//              and formatting for civil.Date.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package datex

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/msto63/quickx/foundation/core/errors"
	"github.com/msto63/quickx/foundation/utils/timex"
)

// ===============================
// Day Navigation
// ===============================

// Yesterday returns the previous calendar day
func Yesterday(d civil.Date) civil.Date {
	return d.AddDays(-1)
}

// Tomorrow returns the next calendar day
func Tomorrow(d civil.Date) civil.Date {
	return d.AddDays(1)
}

// YesterdayAndSkipWeekend returns the previous day, moved back to Friday
// when it falls on a weekend
func YesterdayAndSkipWeekend(d civil.Date) civil.Date {
	y := Yesterday(d)
	switch Weekday(y) {
	case time.Saturday:
		return Yesterday(y)
	case time.Sunday:
		return y.AddDays(-2)
	}
	return y
}

// TomorrowAndSkipWeekend returns the next day, moved forward to Monday
// when it falls on a weekend
func TomorrowAndSkipWeekend(d civil.Date) civil.Date {
	n := Tomorrow(d)
	switch Weekday(n) {
	case time.Saturday:
		return n.AddDays(2)
	case time.Sunday:
		return Tomorrow(n)
	}
	return n
}

// Next returns the first target weekday strictly after d
func Next(d civil.Date, target time.Weekday) civil.Date {
	return d.AddDays(timex.DaysUntilNext(Weekday(d), target))
}

// Previous returns the last target weekday strictly before d
func Previous(d civil.Date, target time.Weekday) civil.Date {
	return d.AddDays(-timex.DaysSincePrevious(Weekday(d), target))
}

// NextOrSame returns d if it falls on target, otherwise Next
func NextOrSame(d civil.Date, target time.Weekday) civil.Date {
	if Weekday(d) == target {
		return d
	}
	return Next(d, target)
}

// PreviousOrSame returns d if it falls on target, otherwise Previous
func PreviousOrSame(d civil.Date, target time.Weekday) civil.Date {
	if Weekday(d) == target {
		return d
	}
	return Previous(d, target)
}

// ===============================
// Boundaries
// ===============================

// FirstDayOfMonth returns day 1 of d's month
func FirstDayOfMonth(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastDayOfMonth returns the last valid day of d's month
func LastDayOfMonth(d civil.Date) civil.Date {
	next := time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC)
	return civil.DateOf(next)
}

// StartOfWeek returns the most recent startDay on or before d. The week
// starts on Monday unless startDay is given.
func StartOfWeek(d civil.Date, startDay ...time.Weekday) civil.Date {
	start := timex.DefaultWeekStart
	if len(startDay) > 0 {
		start = startDay[0]
	}
	return d.AddDays(-((7 + int(Weekday(d)) - int(start)) % 7))
}

// EndOfWeek returns StartOfWeek plus six days
func EndOfWeek(d civil.Date, startDay ...time.Weekday) civil.Date {
	return StartOfWeek(d, startDay...).AddDays(6)
}

// ===============================
// Weekdays and Business Days
// ===============================

// Weekday returns the day of the week of d
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// IsWeekend reports whether d is a Saturday or Sunday
func IsWeekend(d civil.Date) bool {
	return timex.IsWeekendDay(Weekday(d))
}

// IsWeekday reports whether d is Monday through Friday
func IsWeekday(d civil.Date) bool {
	return !IsWeekend(d)
}

// AddBusinessDays steps one day at a time in the direction of n until |n|
// weekdays have been passed
func AddBusinessDays(d civil.Date, n int) civil.Date {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for n > 0 {
		d = d.AddDays(step)
		if IsWeekday(d) {
			n--
		}
	}
	return d
}

// BusinessDaysBetween counts the weekdays from the earlier to the later of
// a and b, counting the later one only when inclusive is true
func BusinessDaysBetween(a, b civil.Date, inclusive bool) int {
	return timex.CountBusinessDays(a, b, inclusive)
}

// BusinessDays yields every business day between a and b inclusive in
// ascending order
func BusinessDays(a, b civil.Date) iter.Seq[civil.Date] {
	return func(yield func(civil.Date) bool) {
		for t := range timex.BusinessDays(a.In(time.UTC), b.In(time.UTC)) {
			if !yield(civil.DateOf(t)) {
				return
			}
		}
	}
}

// ===============================
// Conversion and Formatting
// ===============================

// ToTime returns midnight of d in loc, UTC when loc is omitted or nil
func ToTime(d civil.Date, loc ...*time.Location) time.Time {
	l := time.UTC
	if len(loc) > 0 && loc[0] != nil {
		l = loc[0]
	}
	return d.In(l)
}

// ToYYYYMMDD formats d as eight digits
func ToYYYYMMDD(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// ToISOString formats d as YYYY-MM-DD with a zero-padded four digit year
func ToISOString(d civil.Date) string {
	return d.String()
}

// ParseISO parses a YYYY-MM-DD date
func ParseISO(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, errors.InvalidFormat(errors.ModuleDatex, "ParseISO", s, timex.ISO8601Date, err)
	}
	return d, nil
}

// Validate reports a date that does not exist in the calendar, such as
// February 30
func Validate(d civil.Date) error {
	if !d.IsValid() {
		return errors.DatexInvalidDate("Validate", d)
	}
	return nil
}
