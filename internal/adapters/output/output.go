package output

import (
	"io"
	"os"

	"github.com/mikey-austin/langtour/internal/core"
)

// Printer renders results.
type Printer interface {
	Print(v any) error
}

// New returns the printer for format writing to w.
func New(format string, w io.Writer, color bool) (Printer, error) {
	switch format {
	case "", core.FormatHuman:
		return HumanPrinter{W: w, Color: color}, nil
	case core.FormatJSON:
		return JSONPrinter{W: w}, nil
	case core.FormatYAML:
		return YAMLPrinter{W: w}, nil
	default:
		return nil, core.UsageError("unknown output format %q (human|json|yaml)", format)
	}
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
