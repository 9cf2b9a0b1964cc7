package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONPrinter prints JSON, to stdout when W is nil.
type JSONPrinter struct {
	W io.Writer
}

// Print renders JSON output.
func (p JSONPrinter) Print(v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(writerOrStdout(p.W), string(payload))
	return err
}
