package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLPrinter prints YAML documents, to stdout when W is nil.
type YAMLPrinter struct {
	W io.Writer
}

// Print renders YAML output.
func (p YAMLPrinter) Print(v any) error {
	enc := yaml.NewEncoder(writerOrStdout(p.W))
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
