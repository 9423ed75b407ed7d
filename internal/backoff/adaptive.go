package backoff

import (
	"math"
	"time"
)

// The four adaptive strategies grow from the previous delay instead of the
// streak length: failures add an increment or multiply by a factor, and
// successes walk the delay back down instead of resetting it. Only the very
// first failure of the sequence uses the initial delay.

// lildStrategy: linear increase on failure, linear decrease on success
type lildStrategy struct {
	initial   time.Duration
	increment time.Duration
	decrement time.Duration
}

func (s *lildStrategy) grow(st *State) time.Duration {
	if st.AttemptCount == 1 {
		return s.initial
	}
	return st.CurrentDelay + s.increment
}

func (s *lildStrategy) decay(st *State) time.Duration {
	return subtractFloored(st.CurrentDelay, s.decrement)
}

// limdStrategy: linear increase on failure, multiplicative decrease on success
type limdStrategy struct {
	initial        time.Duration
	increment      time.Duration
	decreaseFactor float64
}

func (s *limdStrategy) grow(st *State) time.Duration {
	if st.AttemptCount == 1 {
		return s.initial
	}
	return st.CurrentDelay + s.increment
}

func (s *limdStrategy) decay(st *State) time.Duration {
	return scale(st.CurrentDelay, s.decreaseFactor)
}

// mildStrategy: multiplicative increase on failure, linear decrease on success
type mildStrategy struct {
	initial        time.Duration
	increaseFactor float64
	decrement      time.Duration
}

func (s *mildStrategy) grow(st *State) time.Duration {
	if st.AttemptCount == 1 {
		return s.initial
	}
	return scale(st.CurrentDelay, s.increaseFactor)
}

func (s *mildStrategy) decay(st *State) time.Duration {
	return subtractFloored(st.CurrentDelay, s.decrement)
}

// mimdStrategy: multiplicative increase on failure, multiplicative decrease
// on success
type mimdStrategy struct {
	initial        time.Duration
	increaseFactor float64
	decreaseFactor float64
}

func (s *mimdStrategy) grow(st *State) time.Duration {
	if st.AttemptCount == 1 {
		return s.initial
	}
	return scale(st.CurrentDelay, s.increaseFactor)
}

func (s *mimdStrategy) decay(st *State) time.Duration {
	return scale(st.CurrentDelay, s.decreaseFactor)
}

// subtractFloored subtracts with a floor of zero
func subtractFloored(delay, decrement time.Duration) time.Duration {
	if decrement >= delay {
		return 0
	}
	return delay - decrement
}

// scale multiplies a delay by a factor, capping overflow
func scale(delay time.Duration, factor float64) time.Duration {
	scaled := float64(delay) * factor
	if scaled > float64(math.MaxInt64) {
		return time.Duration(math.MaxInt64)
	}
	if scaled < 0 {
		return 0
	}
	return time.Duration(scaled)
}
