package backoff

import (
	"math"
	"time"
)

// exponentialStrategy waits initial * base^(k-1) after the k-th consecutive
// failure. A success resets the streak, so the next failure starts over at
// the initial delay.
type exponentialStrategy struct {
	initial time.Duration
	base    float64
}

func (s *exponentialStrategy) grow(st *State) time.Duration {
	delay := float64(s.initial) * math.Pow(s.base, float64(st.ConsecutiveFailures-1))
	if delay > float64(math.MaxInt64) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(delay)
}

func (s *exponentialStrategy) decay(*State) time.Duration {
	return 0
}
