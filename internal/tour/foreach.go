package tour

import "io"

// ForEach calls f for every rune of s in order.
func ForEach(s string, f func(rune)) {
	for _, r := range s {
		f(r)
	}
}

func iter(env Env) error {
	var err error
	ForEach("LetterChain\n", func(c rune) {
		if err != nil {
			return
		}
		_, err = io.WriteString(env.Out, string(c))
	})
	return err
}
