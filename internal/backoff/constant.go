package backoff

import "time"

// constantStrategy waits the same delay after every failure and drops to
// zero after a success.
type constantStrategy struct {
	delay time.Duration
}

func (s *constantStrategy) grow(*State) time.Duration {
	return s.delay
}

func (s *constantStrategy) decay(*State) time.Duration {
	return 0
}
