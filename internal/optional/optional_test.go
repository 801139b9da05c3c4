package optional

import (
	"encoding/json"
	"math"
	"testing"
)

func TestZeroValueIsAbsent(t *testing.T) {
	var v Value[float64]
	if v.OK() {
		t.Fatalf("expected zero value to be absent")
	}
	if got := v.Or(7); got != 7 {
		t.Fatalf("expected fallback 7, got %v", got)
	}
}

func TestDivGuardsDenominator(t *testing.T) {
	cases := []struct {
		name   string
		num    float64
		den    float64
		wantOK bool
		want   float64
	}{
		{"regular", 300, 5, true, 60},
		{"zero denominator", 300, 0, false, 0},
		{"nan denominator", 1, math.NaN(), false, 0},
		{"inf numerator", math.Inf(1), 2, false, 0},
		{"negative denominator", 10, -2, true, -5},
	}
	for _, tc := range cases {
		got, ok := Div(tc.num, tc.den).Get()
		if ok != tc.wantOK {
			t.Fatalf("%s: expected ok=%v, got %v", tc.name, tc.wantOK, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestMapAndBindPropagateAbsence(t *testing.T) {
	double := func(v int) int { return v * 2 }
	if Map(None[int](), double).OK() {
		t.Fatalf("expected map over absent to stay absent")
	}
	if got, _ := Map(Some(4), double).Get(); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}

	half := func(v float64) Value[float64] { return Div(v, 2) }
	if Bind(None[float64](), half).OK() {
		t.Fatalf("expected bind over absent to stay absent")
	}
	if got, _ := Bind(Some(9.0), half).Get(); got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}

func TestPresentFiltersAbsent(t *testing.T) {
	vals := []Value[float64]{Some(1.0), None[float64](), Some(3.0)}
	got := Present(vals)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("unexpected present values %v", got)
	}
}

func TestJSONRoundTripUsesNull(t *testing.T) {
	type payload struct {
		Ratio Value[float64] `json:"ratio"`
		Pick  Value[int]     `json:"pick"`
	}
	data, err := json.Marshal(payload{Ratio: None[float64](), Pick: Some(5)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"ratio":null,"pick":5}` {
		t.Fatalf("unexpected json %s", data)
	}

	var back payload
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Ratio.OK() {
		t.Fatalf("expected ratio to stay absent")
	}
	if got, ok := back.Pick.Get(); !ok || got != 5 {
		t.Fatalf("expected pick 5, got %v %v", got, ok)
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatFloat(None[float64]()) != "" || FormatInt(None[int]()) != "" {
		t.Fatalf("expected empty strings for absent values")
	}
	if got := FormatFloat(Some(0.125)); got != "0.125" {
		t.Fatalf("unexpected float format %q", got)
	}
	if got := FormatInt(Some(12)); got != "12" {
		t.Fatalf("unexpected int format %q", got)
	}
}
