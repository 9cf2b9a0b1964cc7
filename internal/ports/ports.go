package ports

import (
	"time"

	"github.com/mikey-austin/langtour/pkg/variadic"
)

// LinePrinter renders one line of heterogeneous values.
type LinePrinter interface {
	Print(values ...variadic.Value) error
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// IDGen returns identifiers used to correlate log lines of one run.
type IDGen interface {
	NewID() string
}
