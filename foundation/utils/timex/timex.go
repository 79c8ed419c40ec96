// File: timex.go
// Title: Calendar Arithmetic on Instants
// Description: Day, week and month boundaries, weekday navigation and
//              date/instant interop for time.Time values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Fixed business day logic
// - 2026-10-13 v0.2.0: Weekday navigation, configurable week start, civil interop

package timex

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/msto63/quickx/foundation/core/errors"
)

// DefaultWeekStart is the first day of the week unless a start day is given
const DefaultWeekStart = time.Monday

// ===============================
// Day Navigation
// ===============================

// Yesterday returns t one calendar day earlier
func Yesterday(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

// Tomorrow returns t one calendar day later
func Tomorrow(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// YesterdayAndSkipWeekend returns the previous day, moved back to Friday
// when it falls on a weekend
func YesterdayAndSkipWeekend(t time.Time) time.Time {
	y := Yesterday(t)
	switch y.Weekday() {
	case time.Saturday:
		return Yesterday(y)
	case time.Sunday:
		return y.AddDate(0, 0, -2)
	}
	return y
}

// TomorrowAndSkipWeekend returns the next day, moved forward to Monday
// when it falls on a weekend
func TomorrowAndSkipWeekend(t time.Time) time.Time {
	n := Tomorrow(t)
	switch n.Weekday() {
	case time.Saturday:
		return n.AddDate(0, 0, 2)
	case time.Sunday:
		return Tomorrow(n)
	}
	return n
}

// ===============================
// Boundaries
// ===============================

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given time
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// FirstDayOfMonth returns midnight of the first day of t's month
func FirstDayOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth returns midnight of the last day of t's month
func LastDayOfMonth(t time.Time) time.Time {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the most recent startDay on or before t, keeping the
// time of day. The week starts on Monday unless startDay is given.
func StartOfWeek(t time.Time, startDay ...time.Weekday) time.Time {
	return t.AddDate(0, 0, -daysSinceWeekStart(t.Weekday(), weekStart(startDay)))
}

// EndOfWeek returns the last nanosecond of the sixth day after StartOfWeek
func EndOfWeek(t time.Time, startDay ...time.Weekday) time.Time {
	return EndOfDay(StartOfWeek(t, startDay...).AddDate(0, 0, 6))
}

func weekStart(startDay []time.Weekday) time.Weekday {
	if len(startDay) > 0 {
		return startDay[0]
	}
	return DefaultWeekStart
}

func daysSinceWeekStart(wd, start time.Weekday) int {
	return (7 + int(wd) - int(start)) % 7
}

// ===============================
// Weekdays
// ===============================

// IsWeekend reports whether t falls on Saturday or Sunday
func IsWeekend(t time.Time) bool {
	return IsWeekendDay(t.Weekday())
}

// IsWeekday reports whether t falls on Monday through Friday
func IsWeekday(t time.Time) bool {
	return !IsWeekend(t)
}

// IsWeekendDay reports whether wd is Saturday or Sunday
func IsWeekendDay(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

// Next returns the first target weekday strictly after t
func Next(t time.Time, target time.Weekday) time.Time {
	return t.AddDate(0, 0, DaysUntilNext(t.Weekday(), target))
}

// Previous returns the last target weekday strictly before t
func Previous(t time.Time, target time.Weekday) time.Time {
	return t.AddDate(0, 0, -DaysSincePrevious(t.Weekday(), target))
}

// NextOrSame returns t if it falls on target, otherwise Next
func NextOrSame(t time.Time, target time.Weekday) time.Time {
	if t.Weekday() == target {
		return t
	}
	return Next(t, target)
}

// PreviousOrSame returns t if it falls on target, otherwise Previous
func PreviousOrSame(t time.Time, target time.Weekday) time.Time {
	if t.Weekday() == target {
		return t
	}
	return Previous(t, target)
}

// DaysUntilNext returns the distance in days, 1 to 7, from one weekday to
// the next occurrence of target
func DaysUntilNext(from, target time.Weekday) int {
	diff := (int(target) - int(from) + 7) % 7
	if diff == 0 {
		return 7
	}
	return diff
}

// DaysSincePrevious returns the distance in days, 1 to 7, back from one
// weekday to the previous occurrence of target
func DaysSincePrevious(from, target time.Weekday) int {
	return DaysUntilNext(target, from)
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday, "su": time.Sunday,
	"monday": time.Monday, "mon": time.Monday, "mo": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tu": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "we": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "th": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "fr": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "sa": time.Saturday,
}

// ParseWeekday parses an English weekday name, its three letter
// abbreviation or its RFC 5545 two letter code, ignoring case
func ParseWeekday(s string) (time.Weekday, error) {
	if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return wd, nil
	}
	return time.Sunday, errors.InvalidInput(errors.ModuleTimex, "ParseWeekday", "weekday", s, "not a weekday name")
}

// ===============================
// Date Interop
// ===============================

// ToDate returns the calendar date of t in t's location
func ToDate(t time.Time) civil.Date {
	return civil.DateOf(t)
}

// ToTimeOfDay returns the wall-clock time of t in t's location
func ToTimeOfDay(t time.Time) civil.Time {
	return civil.TimeOf(t)
}

// Combine builds the instant at date d and time of day tod in loc
func Combine(d civil.Date, tod civil.Time, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, errors.TimexNilLocation("Combine", "loc")
	}
	return civil.DateTime{Date: d, Time: tod}.In(loc), nil
}
