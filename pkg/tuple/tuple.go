// Package tuple provides fixed-size heterogeneous groupings. Pairs are the
// fn.T2 type; T3 follows the same shape for three members.
package tuple

import (
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/mikey-austin/langtour/pkg/variadic"
)

// T3 is a 3-tuple.
type T3[A, B, C any] struct {
	first  A
	second B
	third  C
}

// NewT3 builds a T3.
func NewT3[A, B, C any](a A, b B, c C) T3[A, B, C] {
	return T3[A, B, C]{first: a, second: b, third: c}
}

// First returns the first member.
func (t T3[A, B, C]) First() A { return t.first }

// Second returns the second member.
func (t T3[A, B, C]) Second() B { return t.second }

// Third returns the third member.
func (t T3[A, B, C]) Third() C { return t.third }

// Unpack returns the members as multiple values.
func (t T3[A, B, C]) Unpack() (A, B, C) {
	return t.first, t.second, t.third
}

// Apply2 calls f with the members of t.
func Apply2[A, B, R any](f func(A, B) R, t fn.T2[A, B]) R {
	return f(t.Unpack())
}

// Apply3 calls f with the members of t.
func Apply3[A, B, C, R any](f func(A, B, C) R, t T3[A, B, C]) R {
	return f(t.Unpack())
}

// Values2 flattens a pair of printable members so it can be passed to a
// variadic.Printer.
func Values2[A, B variadic.Value](t fn.T2[A, B]) []variadic.Value {
	return []variadic.Value{t.First(), t.Second()}
}

// Values3 flattens a triple of printable members.
func Values3[A, B, C variadic.Value](t T3[A, B, C]) []variadic.Value {
	return []variadic.Value{t.first, t.second, t.third}
}

// Position is a longitude/latitude pair.
type Position = fn.T2[float64, float64]

// Fix is a point in time paired with a position.
type Fix = fn.T2[time.Time, Position]

// NewFix stamps a position with now().
func NewFix(now func() time.Time, lon, lat float64) Fix {
	return fn.NewT2[time.Time, Position](now(), fn.NewT2[float64, float64](lon, lat))
}
