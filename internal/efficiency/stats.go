package efficiency

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/preston-bernstein/nba-draft-efficiency/internal/optional"
)

// Mean returns the arithmetic mean, absent for an empty slice.
func Mean(vals []float64) optional.Value[float64] {
	if len(vals) == 0 {
		return optional.None[float64]()
	}
	return optional.Some(Sum(vals) / float64(len(vals)))
}

// Sum adds vals in sorted order so the result does not depend on input order.
func Sum(vals []float64) float64 {
	sorted := sortedCopy(vals)
	total := 0.0
	for _, v := range sorted {
		total += v
	}
	return total
}

// Median returns the middle value (mean of the two middle values for an even count).
func Median(vals []float64) optional.Value[float64] {
	n := len(vals)
	if n == 0 {
		return optional.None[float64]()
	}
	sorted := sortedCopy(vals)
	if n%2 == 1 {
		return optional.Some(sorted[n/2])
	}
	return optional.Some((sorted[n/2-1] + sorted[n/2]) / 2)
}

// PopulationStd is the standard deviation with divisor n.
func PopulationStd(vals []float64) optional.Value[float64] {
	mean, ok := Mean(vals).Get()
	if !ok {
		return optional.None[float64]()
	}
	sq := make([]float64, len(vals))
	for i, v := range vals {
		d := v - mean
		sq[i] = d * d
	}
	return optional.Some(math.Sqrt(Sum(sq) / float64(len(vals))))
}

// Percentile returns the p-th percentile (0-100) using linear interpolation
// between closest ranks.
func Percentile(vals []float64, p float64) optional.Value[float64] {
	n := len(vals)
	if n == 0 || p < 0 || p > 100 {
		return optional.None[float64]()
	}
	sorted := sortedCopy(vals)
	rank := p / 100 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return optional.Some(sorted[lo])
	}
	frac := rank - float64(lo)
	return optional.Some(sorted[lo] + (sorted[hi]-sorted[lo])*frac)
}

// Rate is 100 * part / whole, or 0 when whole is zero.
func Rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

// Round rounds half away from zero to the given number of places for display.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

func sortedCopy(vals []float64) []float64 {
	out := make([]float64, len(vals))
	copy(out, vals)
	sort.Float64s(out)
	return out
}
