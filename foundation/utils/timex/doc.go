// Package timex implements calendar arithmetic on time.Time instants.
//
// Package: timex
// Title: Calendar Arithmetic on Instants
// Description: Business day math, week and month boundaries, weekday
//              navigation, timezone conversion, wall-clock rounding and
//              round-trip formatting. All functions are pure; instants keep
//              their time of day and location unless documented otherwise.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-13 v0.2.0: Reworked around weekday navigation, business day
//                       series and structured errors
//
// # Day Navigation
//
//   - Yesterday, Tomorrow: one calendar day back or forward
//   - YesterdayAndSkipWeekend, TomorrowAndSkipWeekend: land on a weekday
//   - Next, Previous: strictly after or before, so Next on a Monday for
//     time.Monday is seven days later
//   - NextOrSame, PreviousOrSame: return the input when it already matches
//
// # Boundaries
//
//   - StartOfDay, EndOfDay
//   - FirstDayOfMonth, LastDayOfMonth (midnight in the instant's location)
//   - StartOfWeek, EndOfWeek with an optional start day (Monday by default)
//
// # Business Days
//
// Business days are Monday to Friday; holidays are not considered.
//
//	due := timex.AddBusinessDays(invoiceDate, 10)
//	open := timex.BusinessDaysBetween(created, time.Now(), true)
//	for day := range timex.BusinessDays(from, to) {
//		fmt.Println(timex.ToYYYYMMDD(day))
//	}
//
// BusinessDays expands the RFC 5545 rule FREQ=DAILY;BYDAY=MO,TU,WE,TH,FR.
//
// # Timezones
//
// ConvertTimeZone reinterprets a wall clock reading in a source zone;
// ConvertToTimeZone moves an instant into another zone. Nil locations and
// empty or unknown identifiers fail with an error matching
// mdwerror.ErrInvalidArgument and carrying the "timezone" detail.
//
// # Rounding
//
// Truncate and Round work on the wall clock of the instant's location, so
// rounding 10:50 at +05:30 to an hour gives 11:00 at +05:30. Round breaks
// ties towards the even multiple. Non-positive intervals are rejected.
package timex
