// Package optional models values that may be legitimately absent, such as a
// draft number for an undrafted player or a ratio whose denominator is zero.
package optional

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Value holds a T that may be absent. The zero Value is absent.
type Value[T any] struct {
	v  T
	ok bool
}

// Some wraps a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

// OK reports whether the value is present.
func (o Value[T]) OK() bool {
	return o.ok
}

// Or returns the value when present, otherwise fallback.
func (o Value[T]) Or(fallback T) T {
	if o.ok {
		return o.v
	}
	return fallback
}

// Map applies fn to a present value; absence propagates.
func Map[T, U any](o Value[T], fn func(T) U) Value[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.v))
}

// Bind applies fn to a present value and returns its result; absence propagates.
func Bind[T, U any](o Value[T], fn func(T) Value[U]) Value[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.v)
}

// Div divides num by den. The result is absent when den is zero or when either
// operand is not finite.
func Div(num, den float64) Value[float64] {
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) || math.IsNaN(num) || math.IsInf(num, 0) {
		return None[float64]()
	}
	return Some(num / den)
}

// Present filters the present values out of vals, preserving order.
func Present[T any](vals []Value[T]) []T {
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		if v.ok {
			out = append(out, v.v)
		}
	}
	return out
}

var null = []byte("null")

// MarshalJSON renders absent values as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return null, nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON treats null as absent.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		*o = Value[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// FormatFloat renders a present float with full precision and an absent one as "".
func FormatFloat(o Value[float64]) string {
	v, ok := o.Get()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatInt renders a present int and an absent one as "".
func FormatInt(o Value[int]) string {
	v, ok := o.Get()
	if !ok {
		return ""
	}
	return strconv.Itoa(v)
}
