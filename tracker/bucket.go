// Package tracker turns a raw stream of timestamped study sessions into a
// calendar-bucketed activity grid with streak statistics.
package tracker

import (
	"github.com/lumii-app/lumii/internal/timeutil"
)

// DayBucket is the derived activity record for one calendar day.
type DayBucket struct {
	Date         timeutil.Date `json:"date"`
	TotalMinutes int           `json:"total_minutes"`
	SessionCount int           `json:"session_count"`
	Intensity    int           `json:"intensity"`
}

// Active reports whether any study time landed on this day.
func (b DayBucket) Active() bool {
	return b.TotalMinutes > 0
}

// Skeleton produces one empty bucket per calendar day from start to end
// inclusive, in chronological order.
func Skeleton(start, end timeutil.Date) ([]DayBucket, error) {
	if start.After(end) {
		return nil, ErrInvalidRange.Fmt(start, end)
	}

	days := start.DaysUntil(end) + 1
	buckets := make([]DayBucket, 0, days)

	for d := start; !d.After(end); d = d.AddDays(1) {
		buckets = append(buckets, DayBucket{Date: d})
	}

	return buckets, nil
}
