// Package tour runs the language tour sections. Each section writes its
// output through a variadic.Printer into a buffer so callers can render the
// captured lines in any output format.
package tour

import (
	"io"

	"go.uber.org/zap"

	"github.com/mikey-austin/langtour/internal/ports"
)

// Env is what a section may use while running. Printer and Expander share
// the run's terminator; Expander writes no separator.
type Env struct {
	Printer  ports.LinePrinter
	Expander ports.LinePrinter
	Out      io.Writer
	Clock    ports.Clock
	Log      *zap.Logger
}

// Section is one titled demonstration.
type Section struct {
	Key   string
	Title string
	Run   func(Env) error
}

var sections = []Section{
	{Key: "auto", Title: "auto", Run: sampleAuto},
	{Key: "lambdas", Title: "Functors and Lambdas", Run: ops},
	{Key: "foreach", Title: "for_each with lambda", Run: iter},
	{Key: "tuples", Title: "Tuples", Run: tuples},
	{Key: "apply", Title: "Tuples with std::apply", Run: tupleApply},
	{Key: "vartemplate", Title: "Variadic Template", Run: variadicTemplate},
	{Key: "varargs", Title: "Variadic Arguments", Run: variadicArguments},
	{Key: "vartemplates", Title: "Variadic Templates", Run: variadicFun},
	{Key: "expand", Title: "Variadic Template Expansion", Run: expando},
}

// Sections returns the registered sections in run order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Lookup finds a section by key.
func Lookup(key string) (Section, bool) {
	for _, s := range sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}
