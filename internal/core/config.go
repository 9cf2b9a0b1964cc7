package core

// Config is runtime configuration for the CLI.
type Config struct {
	Separator  string
	Terminator string
	Format     string
	Color      bool
	Sections   []string
}

// Output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ValidFormat reports whether format names a known output format.
func ValidFormat(format string) bool {
	switch format {
	case FormatHuman, FormatJSON, FormatYAML:
		return true
	}
	return false
}
