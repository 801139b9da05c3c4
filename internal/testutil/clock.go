package testutil

import "time"

// SampleRunAt is the timestamp stamped on SampleRun.
var SampleRunAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

// Hourly returns n timestamps an hour apart starting at SampleRunAt, so runs
// saved in that order sort oldest first.
func Hourly(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = SampleRunAt.Add(time.Duration(i) * time.Hour)
	}
	return out
}
