package backoff

import (
	"math"
	"time"
)

// fibonacciStrategy walks the Fibonacci sequence (1, 1, 2, 3, 5, ...) scaled
// by the initial delay, one term per consecutive failure. The sequence index
// restarts whenever a new failure streak begins.
type fibonacciStrategy struct {
	initial    time.Duration
	prev, curr float64
}

func (s *fibonacciStrategy) grow(st *State) time.Duration {
	if st.ConsecutiveFailures == 1 {
		s.prev, s.curr = 0, 1
	} else {
		s.prev, s.curr = s.curr, s.prev+s.curr
	}

	delay := float64(s.initial) * s.curr
	if delay > float64(math.MaxInt64) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(delay)
}

func (s *fibonacciStrategy) decay(*State) time.Duration {
	return 0
}
