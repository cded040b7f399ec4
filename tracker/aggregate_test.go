package tracker

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/lumii-app/lumii/internal/models"
	"github.com/lumii-app/lumii/internal/timeutil"
)

func TestIntensityBoundaries(t *testing.T) {
	minutes := []int{0, 1, 29, 30, 59, 60, 89, 90, 500}
	tiers := []int{0, 1, 1, 2, 2, 3, 3, 4, 4}

	for i, m := range minutes {
		if got := IntensityOf(m); got != tiers[i] {
			t.Errorf(
				"expected %d minutes to map to tier %d, but got: %d",
				m,
				tiers[i],
				got,
			)
		}
	}
}

func sessionOn(day time.Time, minutes int) *models.StudySession {
	return &models.StudySession{
		ID:              "s-" + day.Format("20060102T150405"),
		UserID:          "user-1",
		OccurredAt:      day,
		DurationMinutes: minutes,
	}
}

func TestAggregate(t *testing.T) {
	start := timeutil.Date{Year: 2025, Month: time.March, Day: 10}
	end := timeutil.Date{Year: 2025, Month: time.March, Day: 12}

	skeleton, err := Skeleton(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessions := []*models.StudySession{
		sessionOn(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 20),
		sessionOn(time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC), 25),
		sessionOn(time.Date(2025, 3, 12, 7, 15, 0, 0, time.UTC), 95),
		// outside the requested window: must be dropped, not an error
		sessionOn(time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC), 60),
		sessionOn(time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), 60),
	}

	got := Aggregate(skeleton, sessions, time.UTC)

	expected := []DayBucket{
		{Date: start, TotalMinutes: 45, SessionCount: 2, Intensity: 2},
		{Date: start.AddDays(1)},
		{Date: end, TotalMinutes: 95, SessionCount: 1, Intensity: 4},
	}

	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("aggregated buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateLeavesSkeletonUntouched(t *testing.T) {
	start := timeutil.Date{Year: 2025, Month: time.March, Day: 10}

	skeleton, err := Skeleton(start, start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessions := []*models.StudySession{
		sessionOn(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), 45),
	}

	first := Aggregate(skeleton, sessions, time.UTC)
	second := Aggregate(skeleton, sessions, time.UTC)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("aggregation is not idempotent (-first +second):\n%s", diff)
	}

	if skeleton[0].TotalMinutes != 0 || skeleton[0].SessionCount != 0 {
		t.Errorf("skeleton was mutated: %+v", skeleton[0])
	}
}

func TestAggregateUsesLocalCalendarDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	start := timeutil.Date{Year: 2025, Month: time.March, Day: 10}
	end := timeutil.Date{Year: 2025, Month: time.March, Day: 11}

	skeleton, err := Skeleton(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 23:30 UTC on the 10th is already the 11th in UTC+2
	sessions := []*models.StudySession{
		sessionOn(time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC), 30),
	}

	got := Aggregate(skeleton, sessions, loc)

	if got[0].TotalMinutes != 0 {
		t.Errorf(
			"expected no minutes on the 10th, but got: %d",
			got[0].TotalMinutes,
		)
	}

	if got[1].TotalMinutes != 30 {
		t.Errorf(
			"expected 30 minutes on the 11th, but got: %d",
			got[1].TotalMinutes,
		)
	}
}

func TestApplyDeltaIsReversible(t *testing.T) {
	b := DayBucket{
		Date: timeutil.Date{Year: 2025, Month: time.March, Day: 10},
	}

	applyDelta(&b, 45, 1)
	applyDelta(&b, -45, -1)

	if b.TotalMinutes != 0 || b.SessionCount != 0 {
		t.Errorf("expected an empty bucket after reversal, but got: %+v", b)
	}
}
