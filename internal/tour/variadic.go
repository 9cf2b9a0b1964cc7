package tour

import (
	"github.com/mikey-austin/langtour/internal/ports"
	"github.com/mikey-austin/langtour/pkg/variadic"
)

// Recorder keeps the value it was built with and the last argument list
// passed to VarArg.
type Recorder[T variadic.Value] struct {
	first   T
	last    []variadic.Value
	printer ports.LinePrinter
}

// NewRecorder returns a recorder printing through p.
func NewRecorder[T variadic.Value](p ports.LinePrinter, first T) *Recorder[T] {
	return &Recorder[T]{first: first, printer: p}
}

// First returns the construction value.
func (r *Recorder[T]) First() T {
	return r.first
}

// VarArg prints head followed by rest, stores them and returns head.
func (r *Recorder[T]) VarArg(head T, rest ...variadic.Value) (T, error) {
	values := make([]variadic.Value, 0, len(rest)+1)
	values = append(values, head)
	values = append(values, rest...)
	r.last = values
	return head, r.printer.Print(values...)
}

// Last returns a copy of the most recent VarArg arguments.
func (r *Recorder[T]) Last() []variadic.Value {
	out := make([]variadic.Value, len(r.last))
	copy(out, r.last)
	return out
}

func variadicTemplate(env Env) error {
	v := NewRecorder[variadic.Int](env.Printer, 0)
	_, err := v.VarArg(1, variadic.String("hello"))
	return err
}

func variadicArguments(env Env) error {
	if err := env.Printer.Print(variadic.Int(2), variadic.Float(3.14), variadic.String("Four")); err != nil {
		return err
	}
	return env.Printer.Print(variadic.String("Hello"), variadic.Rune(' '), variadic.String("World"))
}

// VariadicFun prints the two sample argument lists through p.
func VariadicFun(p ports.LinePrinter) error {
	if err := p.Print(variadic.Int(2), variadic.Float(3.14), variadic.String("Four")); err != nil {
		return err
	}
	return p.Print(variadic.String("Hello"), variadic.Rune(' '), variadic.String("World"))
}

func variadicFun(env Env) error {
	return VariadicFun(env.Printer)
}

func expando(env Env) error {
	return env.Expander.Print(
		variadic.String("Sum: "), variadic.Int(1),
		variadic.String(" + "), variadic.Int(2),
		variadic.String(" = "), variadic.Int(3),
	)
}
