// Package datex implements calendar arithmetic on civil.Date values.
//
// Package: datex
// Title: Calendar Arithmetic on Dates
// Description: The date-only counterpart of timex. Dates carry no time of
//              day and no location, so results never shift across zones.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
//
// Every function mirrors its timex namesake:
//
//	d := civil.Date{Year: 2024, Month: time.February, Day: 10}
//	datex.LastDayOfMonth(d)               // 2024-02-29
//	datex.EndOfWeek(d)                    // 2024-02-11, start + 6 days
//	datex.Next(d, time.Saturday)          // 2024-02-17, strictly after
//	datex.BusinessDaysBetween(a, b, true) // symmetric in a and b
//
// Dates produced by this package are always normalized. Dates built by hand
// can be checked with Validate.
package datex
