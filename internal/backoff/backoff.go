// Package backoff implements the delay-computation engine behind the retry
// loop: seven interchangeable growth/decay strategies sharing one stateful
// contract. The engine performs no I/O and no sleeping; callers decide what
// to do with the computed delays.
package backoff

import (
	"math/rand"
	"time"

	"github.com/aleister1102/retrier/internal/common"
)

// GiveUp is the sentinel returned by Failure when the attempt or duration
// budget is exhausted. It is never a valid delay, so callers can distinguish
// "retry after 0 seconds" from "stop retrying".
const GiveUp = time.Duration(-1)

// State is the mutable bookkeeping owned by exactly one Engine instance.
// There is no reset operation: a new logical retry sequence requires a new
// engine.
type State struct {
	// Length of the current failure streak, reset by Success
	ConsecutiveFailures int
	// Last computed pre-jitter delay, already clamped
	CurrentDelay time.Duration
	// Set on the first Failure call, never cleared afterwards
	FirstFailureTime time.Time
	// Total Failure calls so far; never decreases
	AttemptCount int
}

// strategy is the variant-specific growth/decay rule. grow is called with
// ConsecutiveFailures already incremented; decay reads CurrentDelay as the
// previous value. Both return raw delays, clamping is the engine's job.
type strategy interface {
	grow(st *State) time.Duration
	decay(st *State) time.Duration
}

// Engine computes retry delays for one logical retry sequence.
type Engine struct {
	strategy     strategy
	minDelay     time.Duration
	maxDelay     time.Duration
	maxAttempts  int
	maxDuration  time.Duration
	jitterFactor float64
	clock        common.Clock
	rng          *rand.Rand
	state        State
}

// Option configures an Engine at construction time
type Option func(*Engine)

// WithClock overrides the wall clock used when Failure or Success is called
// with a zero timestamp.
func WithClock(clock common.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// withRand overrides the jitter random number generator
func withRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// Failure records one failed attempt and returns the delay to wait before
// the next one, or GiveUp when the attempt or wall-clock budget is exhausted.
// A zero now reads the engine clock; a non-zero now lets callers drive a
// virtual clock.
func (e *Engine) Failure(now time.Time) time.Duration {
	if now.IsZero() {
		now = e.clock.Now()
	}

	e.state.AttemptCount++
	if e.state.FirstFailureTime.IsZero() {
		e.state.FirstFailureTime = now
	}

	if e.maxAttempts > 0 && e.state.AttemptCount > e.maxAttempts {
		return GiveUp
	}
	if e.maxDuration > 0 && now.Sub(e.state.FirstFailureTime) > e.maxDuration {
		return GiveUp
	}

	e.state.ConsecutiveFailures++
	delay := e.clamp(e.strategy.grow(&e.state))
	e.state.CurrentDelay = delay
	return e.applyJitter(delay)
}

// Success records one successful attempt. The failure streak is reset and
// the variant's decay rule is applied; the resulting delay is returned for
// callers that track decay trajectories. AttemptCount and FirstFailureTime
// are deliberately untouched: the attempt and duration budgets span the
// whole sequence, not a single failure streak. The timestamp mirrors
// Failure's signature so event-driven callers can treat both uniformly;
// decay never consults the clock, so it goes unread.
func (e *Engine) Success(_ time.Time) time.Duration {
	delay := e.clamp(e.strategy.decay(&e.state))
	e.state.ConsecutiveFailures = 0
	e.state.CurrentDelay = delay
	return delay
}

// Snapshot returns a copy of the engine's current state
func (e *Engine) Snapshot() State {
	return e.state
}

// clamp bounds a delay to [minDelay, maxDelay]
func (e *Engine) clamp(delay time.Duration) time.Duration {
	if e.maxDelay > 0 && delay > e.maxDelay {
		delay = e.maxDelay
	}
	if delay < e.minDelay {
		delay = e.minDelay
	}
	return delay
}

// applyJitter subtracts a uniformly random amount in [0, jitterFactor*delay]
func (e *Engine) applyJitter(delay time.Duration) time.Duration {
	if e.jitterFactor <= 0 || delay <= 0 {
		return delay
	}
	return delay - time.Duration(e.rng.Float64()*e.jitterFactor*float64(delay))
}
