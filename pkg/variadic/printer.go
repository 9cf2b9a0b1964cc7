package variadic

import (
	"io"
	"strings"
)

const (
	// DefaultSeparator follows every rendered value.
	DefaultSeparator = "; "
	// DefaultTerminator ends every line.
	DefaultTerminator = "\n"
)

// Printer renders heterogeneous values to a sink. Each value is followed by
// the separator and the line ends with the terminator, so
// Print(Int(2), Float(3.14), String("Four")) writes "2; 3.14; Four; \n".
type Printer struct {
	w          io.Writer
	separator  string
	terminator string
}

// Option configures a Printer.
type Option func(*Printer)

// WithSeparator overrides the string written after each value.
func WithSeparator(sep string) Option {
	return func(p *Printer) {
		p.separator = sep
	}
}

// WithTerminator overrides the line terminator.
func WithTerminator(term string) Option {
	return func(p *Printer) {
		p.terminator = term
	}
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:          w,
		separator:  DefaultSeparator,
		terminator: DefaultTerminator,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print writes one line containing values in argument order. With no values
// only the terminator is written. The line is written with a single Write.
func (p *Printer) Print(values ...Value) error {
	_, err := io.WriteString(p.w, p.render(values))
	return err
}

func (p *Printer) render(values []Value) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v.Text())
		b.WriteString(p.separator)
	}
	b.WriteString(p.terminator)
	return b.String()
}

// Fprint prints values to w with the default separator and terminator.
func Fprint(w io.Writer, values ...Value) error {
	return NewPrinter(w).Print(values...)
}

// Sprint returns the line Fprint would write.
func Sprint(values ...Value) string {
	p := Printer{separator: DefaultSeparator, terminator: DefaultTerminator}
	return p.render(values)
}

// Expand concatenates values with no separator and ends the line, so
// Expand(w, String("Sum: "), Int(1)) writes "Sum: 1\n".
func Expand(w io.Writer, values ...Value) error {
	return NewPrinter(w, WithSeparator("")).Print(values...)
}
