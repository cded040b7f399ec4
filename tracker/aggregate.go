package tracker

import (
	"slices"
	"time"

	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/internal/timeutil"
)

// Intensity tier thresholds in minutes per day.
const (
	tierLight  = 30
	tierMedium = 60
	tierHeavy  = 90
)

// IntensityOf maps a day's total minutes to its heatmap tier in 0-4. Tier 0
// always means a day without activity.
func IntensityOf(totalMinutes int) int {
	switch {
	case totalMinutes <= 0:
		return 0
	case totalMinutes < tierLight:
		return 1
	case totalMinutes < tierMedium:
		return 2
	case totalMinutes < tierHeavy:
		return 3
	default:
		return 4
	}
}

// Aggregate folds sessions into a fresh copy of the bucket skeleton. A
// session lands in the bucket matching the calendar date of its OccurredAt
// in loc; sessions dating outside the skeleton's range are dropped, since
// they were not requested. Intensity tiers are assigned once all sessions
// are folded in.
func Aggregate(
	skeleton []DayBucket,
	sessions []*models.StudySession,
	loc *time.Location,
) []DayBucket {
	buckets := slices.Clone(skeleton)

	index := make(map[timeutil.Date]int, len(buckets))
	for i := range buckets {
		index[buckets[i].Date] = i
	}

	for _, sess := range sessions {
		date := timeutil.DateOf(sess.OccurredAt.In(loc))

		i, ok := index[date]
		if !ok {
			continue
		}

		applyDelta(&buckets[i], sess.DurationMinutes, 1)
	}

	for i := range buckets {
		buckets[i].Intensity = IntensityOf(buckets[i].TotalMinutes)
	}

	return buckets
}

// applyDelta is the reversible fold step: negative deltas back a session
// out of a bucket should deletion ever be supported.
func applyDelta(b *DayBucket, minutes, sessions int) {
	b.TotalMinutes += minutes
	b.SessionCount += sessions
}
