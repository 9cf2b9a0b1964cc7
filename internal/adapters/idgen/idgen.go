package idgen

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates short random run identifiers.
type Generator struct{}

// NewID returns 8 random bytes as hex, or "unknown" if the system source
// fails.
func (Generator) NewID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b[:])
}
