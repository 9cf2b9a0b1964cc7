package clock

import "time"

// Clock provides time.Now() access.
type Clock struct{}

// Now returns the local wall clock time.
func (Clock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
