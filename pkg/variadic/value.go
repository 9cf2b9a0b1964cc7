package variadic

import (
	"fmt"
	"strconv"
)

// Value is a printable value. Only types with a textual form can be passed to
// a Printer, so an unsupported argument is a compile error rather than a
// runtime one.
type Value interface {
	Text() string
}

// Int is a signed integer value.
type Int int64

// Uint is an unsigned integer value.
type Uint uint64

// Float is a floating point value.
type Float float64

// String is a text value.
type String string

// Rune is a single character value.
type Rune rune

// Bool is a boolean value.
type Bool bool

// Text renders the integer in base 10.
func (v Int) Text() string { return strconv.FormatInt(int64(v), 10) }

// Text renders the integer in base 10.
func (v Uint) Text() string { return strconv.FormatUint(uint64(v), 10) }

// Text renders the shortest representation that round-trips.
func (v Float) Text() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

func (v String) Text() string { return string(v) }

func (v Rune) Text() string { return string(rune(v)) }

func (v Bool) Text() string { return strconv.FormatBool(bool(v)) }

type stringer struct {
	s fmt.Stringer
}

// Stringer adapts a fmt.Stringer into a Value.
func Stringer(s fmt.Stringer) Value {
	return stringer{s: s}
}

func (v stringer) Text() string {
	if v.s == nil {
		return "<nil>"
	}
	return v.s.String()
}

// Texts renders every value in order.
func Texts(values ...Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.Text())
	}
	return out
}
