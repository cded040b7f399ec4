// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"
)

const minutesInAnHour = 60

// keyLayout is a fixed-width RFC 3339 variant. Padding the fractional
// seconds keeps encoded keys lexically ordered.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		999999999,
		t.Location(),
	)
}

// ToKey converts a time value to a database key for Bolt. Keys are
// normalised to UTC so that offsets cannot break their ordering.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
