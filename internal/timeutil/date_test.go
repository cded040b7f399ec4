package timeutil

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	cases := []struct {
		name     string
		input    time.Time
		expected Date
	}{
		{
			name:     "start of day",
			input:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: Date{2025, time.March, 15},
		},
		{
			name:     "end of day",
			input:    time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC),
			expected: Date{2025, time.March, 15},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DateOf(tc.input)
			if got != tc.expected {
				t.Errorf("expected date to be: %v, but got: %v", tc.expected, got)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	cases := []struct {
		name     string
		date     Date
		days     int
		expected Date
	}{
		{
			name:     "within a month",
			date:     Date{2025, time.March, 15},
			days:     3,
			expected: Date{2025, time.March, 18},
		},
		{
			name:     "across a month boundary",
			date:     Date{2025, time.January, 31},
			days:     1,
			expected: Date{2025, time.February, 1},
		},
		{
			name:     "across a year boundary",
			date:     Date{2024, time.December, 31},
			days:     1,
			expected: Date{2025, time.January, 1},
		},
		{
			name:     "into a leap day",
			date:     Date{2024, time.February, 28},
			days:     1,
			expected: Date{2024, time.February, 29},
		},
		{
			name:     "backwards",
			date:     Date{2025, time.March, 1},
			days:     -1,
			expected: Date{2025, time.February, 28},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.date.AddDays(tc.days)
			if got != tc.expected {
				t.Errorf("expected date to be: %v, but got: %v", tc.expected, got)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		name     string
		from     Date
		to       Date
		expected int
	}{
		{
			name:     "same day",
			from:     Date{2025, time.March, 15},
			to:       Date{2025, time.March, 15},
			expected: 0,
		},
		{
			name:     "across a leap february",
			from:     Date{2024, time.February, 1},
			to:       Date{2024, time.March, 1},
			expected: 29,
		},
		{
			name:     "across a DST transition",
			from:     Date{2025, time.March, 8},
			to:       Date{2025, time.March, 10},
			expected: 2,
		},
		{
			name:     "negative when reversed",
			from:     Date{2025, time.March, 10},
			to:       Date{2025, time.March, 8},
			expected: -2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.from.DaysUntil(tc.to)
			if got != tc.expected {
				t.Errorf("expected days to be: %d, but got: %d", tc.expected, got)
			}
		})
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	d := Date{2025, time.September, 1}

	parsed, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed != d {
		t.Errorf("expected date to be: %v, but got: %v", d, parsed)
	}

	if _, err = ParseDate("not-a-date"); err == nil {
		t.Error("expected an error for malformed input, but got nil")
	}
}

func TestToKeyOrdering(t *testing.T) {
	// keys must sort lexically in time order regardless of the
	// sub-second precision of their source values
	early := time.Date(2025, 3, 15, 10, 0, 5, 0, time.UTC)
	late := time.Date(2025, 3, 15, 10, 0, 5, 500_000_000, time.UTC)

	if string(ToKey(early)) >= string(ToKey(late)) {
		t.Errorf(
			"expected key %q to sort before %q",
			ToKey(early),
			ToKey(late),
		)
	}
}
