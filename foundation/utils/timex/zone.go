// File: zone.go
// Title: Timezone Handling
// Description: Cached location lookup and conversion between timezones.
//              Absent or unknown zones are reported, never defaulted.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-13
//
// Change History:
// - 2025-01-25 v0.1.0: Initial timezone conversion with location cache
// - 2026-10-13 v0.2.0: Location-based conversion, structured errors

package timex

import (
	"strings"
	"time"

	"github.com/msto63/quickx/foundation/core/errors"
	"github.com/msto63/quickx/pkg/core/cache"
)

// Timezone cache for commonly used locations
var locations = cache.New[string, *time.Location](cache.Config{MaxItems: 128})

// LoadLocation returns the location for an IANA identifier such as
// "Europe/Berlin", "UTC" or "Local". Results are cached.
func LoadLocation(id string) (*time.Location, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.TimexInvalidTimezone("LoadLocation", id, nil)
	}
	loc, err := locations.GetOrSet(id, func() (*time.Location, error) {
		return time.LoadLocation(id)
	})
	if err != nil {
		return nil, errors.TimexInvalidTimezone("LoadLocation", id, err)
	}
	return loc, nil
}

// ConvertTimeZone reads the wall clock of t as a time in from and returns
// that moment in to. The location carried by t itself is ignored.
func ConvertTimeZone(t time.Time, from, to *time.Location) (time.Time, error) {
	if from == nil {
		return time.Time{}, errors.TimexNilLocation("ConvertTimeZone", "from")
	}
	if to == nil {
		return time.Time{}, errors.TimexNilLocation("ConvertTimeZone", "to")
	}
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), from)
	return wall.In(to), nil
}

// ConvertToTimeZone returns the moment t in the zone named toID
func ConvertToTimeZone(t time.Time, toID string) (time.Time, error) {
	to, err := LoadLocation(toID)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(to), nil
}

// ConvertTimeZoneByID is ConvertTimeZone with zone identifiers
func ConvertTimeZoneByID(t time.Time, fromID, toID string) (time.Time, error) {
	from, err := LoadLocation(fromID)
	if err != nil {
		return time.Time{}, err
	}
	to, err := LoadLocation(toID)
	if err != nil {
		return time.Time{}, err
	}
	return ConvertTimeZone(t, from, to)
}

// GetTimezoneOffset returns the offset from UTC in seconds of t in location
func GetTimezoneOffset(t time.Time, location *time.Location) (int, error) {
	if location == nil {
		return 0, errors.TimexNilLocation("GetTimezoneOffset", "location")
	}
	_, offset := t.In(location).Zone()
	return offset, nil
}
