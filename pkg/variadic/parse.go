package variadic

import (
	"strconv"
	"strings"
)

// Parse classifies a textual literal. A single-quoted character, escapes such
// as '\n' and '\'' included, becomes a Rune and double-quoted text is unquoted
// into a String. true and false become a Bool, then integers and floats are
// tried. Anything else is a String.
func Parse(lit string) Value {
	if r, ok := parseRune(lit); ok {
		return Rune(r)
	}
	if strings.HasPrefix(lit, `"`) {
		if s, err := strconv.Unquote(lit); err == nil {
			return String(s)
		}
	}
	switch lit {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Int(n)
	}
	if n, err := strconv.ParseUint(lit, 10, 64); err == nil {
		return Uint(n)
	}
	if looksNumeric(lit) {
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return Float(f)
		}
	}
	return String(lit)
}

// ParseAll parses each literal in order.
func ParseAll(lits []string) []Value {
	out := make([]Value, 0, len(lits))
	for _, lit := range lits {
		out = append(out, Parse(lit))
	}
	return out
}

func parseRune(lit string) (rune, bool) {
	if len(lit) < 3 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return 0, false
	}
	r, _, tail, err := strconv.UnquoteChar(lit[1:len(lit)-1], '\'')
	if err != nil || tail != "" {
		return 0, false
	}
	return r, true
}

// looksNumeric keeps words like "Inf" and "NaN" as text.
func looksNumeric(lit string) bool {
	if lit == "" {
		return false
	}
	c := lit[0]
	if c == '+' || c == '-' || c == '.' {
		if len(lit) == 1 {
			return false
		}
		c = lit[1]
		if c == '.' && len(lit) > 2 {
			c = lit[2]
		}
	}
	return c >= '0' && c <= '9'
}
