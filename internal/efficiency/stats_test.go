package efficiency

import (
	"math"
	"testing"
)

func TestMeanMedianEmpty(t *testing.T) {
	if Mean(nil).OK() || Median(nil).OK() || PopulationStd(nil).OK() || Percentile(nil, 50).OK() {
		t.Fatalf("expected every statistic to be absent for an empty slice")
	}
}

func TestMedianOddAndEven(t *testing.T) {
	if got := Median([]float64{3, 1, 2}).Or(-1); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := Median([]float64{4, 1, 3, 2}).Or(-1); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
}

func TestPopulationStd(t *testing.T) {
	got := PopulationStd([]float64{2, 4, 4, 4, 5, 5, 7, 9}).Or(-1)
	if got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if got := PopulationStd([]float64{42}).Or(-1); got != 0 {
		t.Fatalf("expected 0 for a single value, got %v", got)
	}
}

func TestPercentileInterpolates(t *testing.T) {
	vals := []float64{10, 20, 30, 40, 50}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{20, 18},
		{50, 30},
		{80, 42},
		{100, 50},
	}
	for _, tc := range cases {
		got := Percentile(vals, tc.p).Or(-1)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("p%v: expected %v, got %v", tc.p, tc.want, got)
		}
	}
	if Percentile(vals, 101).OK() {
		t.Fatalf("expected out-of-range percentile to be absent")
	}
}

func TestSumIsOrderIndependent(t *testing.T) {
	a := []float64{0.1, 1e16, 0.2, -1e16, 0.3}
	b := []float64{-1e16, 0.3, 0.1, 0.2, 1e16}
	if Sum(a) != Sum(b) {
		t.Fatalf("expected identical sums, got %v and %v", Sum(a), Sum(b))
	}
}

func TestRateAndRound(t *testing.T) {
	if Rate(1, 0) != 0 {
		t.Fatalf("expected zero rate for zero picks")
	}
	r := Rate(4, 12)
	if r == 33.3 {
		t.Fatalf("expected full precision rate, got %v", r)
	}
	if got := Round(r, 1); got != 33.3 {
		t.Fatalf("expected 33.3, got %v", got)
	}
	if got := Round(66.65, 1); got != 66.7 {
		t.Fatalf("expected half away from zero, got %v", got)
	}
}
