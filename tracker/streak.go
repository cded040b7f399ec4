package tracker

// Streaks derives streak statistics from a chronologically ordered bucket
// sequence.
//
// The longest streak is the maximum run of consecutive active days found
// anywhere in the window. The current streak counts backwards from the
// most recent bucket; it is zero whenever that bucket is inactive, so a
// lapsed streak reports zero rather than resurrecting an older run.
func Streaks(buckets []DayBucket) (current, longest int) {
	var run int

	for i := range buckets {
		if buckets[i].Active() {
			run++

			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	for i := len(buckets) - 1; i >= 0; i-- {
		if !buckets[i].Active() {
			break
		}

		current++
	}

	return current, longest
}
