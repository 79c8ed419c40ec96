// File: business.go
// Title: Business Day Calculations
// Description: Business day stepping, counting and the recurrence-based
//              business day series. Business days are Monday to Friday.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-07-26 v0.1.1: Fixed business day logic
// - 2026-10-13 v0.2.0: Closed-form counting, RRULE series via rrule-go
// - 2026-10-14 v0.2.1: A failing business day rule panics instead of yielding nothing

package timex

import (
	"iter"
	"time"

	"cloud.google.com/go/civil"
	"github.com/teambition/rrule-go"
)

// AddBusinessDays steps one calendar day at a time in the direction of n
// until |n| weekdays have been passed. The time of day is kept.
func AddBusinessDays(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}

	step := 1
	if n < 0 {
		step, n = -1, -n
	}

	result := t
	for n > 0 {
		result = result.AddDate(0, 0, step)
		if IsWeekday(result) {
			n--
		}
	}
	return result
}

// BusinessDaysBetween counts the weekdays from the earlier to the later
// calendar date of a and b. The later date is counted only when
// inclusive is true. The result does not depend on argument order.
func BusinessDaysBetween(a, b time.Time, inclusive bool) int {
	return CountBusinessDays(ToDate(a), ToDate(b), inclusive)
}

// CountBusinessDays is BusinessDaysBetween on calendar dates
func CountBusinessDays(a, b civil.Date, inclusive bool) int {
	if a.After(b) {
		a, b = b, a
	}

	span := b.DaysSince(a)
	if inclusive {
		span++
	}

	count := (span / 7) * 5
	wd := weekdayOf(a)
	for i := 0; i < span%7; i++ {
		if !IsWeekendDay(wd) {
			count++
		}
		wd = (wd + 1) % 7
	}
	return count
}

func weekdayOf(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// businessDayRule expands FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR between two instants
func businessDayRule(start, until time.Time) (*rrule.RRule, error) {
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   start,
		Until:     until,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
}

// BusinessDays yields midnight, in from's location, of every business day
// between the calendar dates of from and to inclusive, in ascending order.
// The number of values equals BusinessDaysBetween(from, to, true).
func BusinessDays(from, to time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		start := StartOfDay(from)
		end := ToDate(to).In(from.Location())
		if start.After(end) {
			start, end = end, start
		}

		rule, err := businessDayRule(start, end)
		if err != nil {
			// the rule options are constant; a failure here is a bug
			panic("timex: business day rule: " + err.Error())
		}

		next := rule.Iterator()
		for {
			day, ok := next()
			if !ok || !yield(day) {
				return
			}
		}
	}
}
