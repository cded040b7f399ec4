package tracker

import (
	"errors"
	"testing"
	"time"

	"github.com/lumii-app/lumii/internal/timeutil"
)

func TestSkeletonCompleteness(t *testing.T) {
	cases := []struct {
		name  string
		start timeutil.Date
		end   timeutil.Date
		days  int
	}{
		{
			name:  "single day",
			start: timeutil.Date{Year: 2025, Month: time.March, Day: 15},
			end:   timeutil.Date{Year: 2025, Month: time.March, Day: 15},
			days:  1,
		},
		{
			name:  "one week",
			start: timeutil.Date{Year: 2025, Month: time.March, Day: 10},
			end:   timeutil.Date{Year: 2025, Month: time.March, Day: 16},
			days:  7,
		},
		{
			name:  "across a leap february",
			start: timeutil.Date{Year: 2024, Month: time.February, Day: 1},
			end:   timeutil.Date{Year: 2024, Month: time.March, Day: 1},
			days:  30,
		},
		{
			name:  "three years",
			start: timeutil.Date{Year: 2022, Month: time.January, Day: 1},
			end:   timeutil.Date{Year: 2024, Month: time.December, Day: 31},
			days:  1096,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buckets, err := Skeleton(tc.start, tc.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(buckets) != tc.days {
				t.Fatalf(
					"expected %d buckets, but got: %d",
					tc.days,
					len(buckets),
				)
			}

			for i := range buckets {
				expected := tc.start.AddDays(i)
				if buckets[i].Date != expected {
					t.Errorf(
						"expected bucket %d to be dated %v, but got: %v",
						i,
						expected,
						buckets[i].Date,
					)
				}

				if buckets[i].TotalMinutes != 0 || buckets[i].SessionCount != 0 ||
					buckets[i].Intensity != 0 {
					t.Errorf("expected bucket %d to be empty: %+v", i, buckets[i])
				}
			}
		})
	}
}

func TestSkeletonInvalidRange(t *testing.T) {
	start := timeutil.Date{Year: 2025, Month: time.March, Day: 16}
	end := timeutil.Date{Year: 2025, Month: time.March, Day: 15}

	_, err := Skeleton(start, end)
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, but got: %v", err)
	}
}
