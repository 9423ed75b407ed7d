package common

import "time"

// Clock abstracts time access so delay bookkeeping can be driven by a
// virtual clock in tests and simulations.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// NewSystemClock creates a system clock
func NewSystemClock() SystemClock {
	return SystemClock{}
}
