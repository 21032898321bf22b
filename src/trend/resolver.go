// Package trend holds the point-picking state machine and the trend line
// statistics derived from two selected weekly buckets.
package trend

import (
	"time"

	"github.com/mkorteland/weighttrend/src/weightdata"
)

// Nearest returns the index of the bucket whose week start is closest in
// absolute time to t. The scan uses strict-less comparison in index order, so
// ties resolve to the lowest index. ok is false only for an empty slice.
func Nearest(buckets []weightdata.WeekBucket, t time.Time) (idx int, ok bool) {
	if len(buckets) == 0 {
		return 0, false
	}
	best := 0
	bestD := absDuration(t.Sub(buckets[0].Start))
	for i := 1; i < len(buckets); i++ {
		d := absDuration(t.Sub(buckets[i].Start))
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best, true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
