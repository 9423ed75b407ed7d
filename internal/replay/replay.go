// Package replay computes the delay sequence a recorded history of
// successes and failures would have produced, without running anything.
package replay

import (
	"fmt"
	"time"

	"github.com/aleister1102/retrier/internal/backoff"
	"github.com/rs/zerolog"
)

// Event kinds
const (
	KindSuccess = "success"
	KindFailure = "failure"
)

// Event is one entry of a recorded attempt history. Timestamp (absolute
// epoch seconds) and Delta (seconds since the previous event) are mutually
// exclusive; with neither set the event reuses the current virtual clock.
type Event struct {
	Kind      string   `json:"kind" yaml:"kind"`
	Timestamp *float64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Delta     *float64 `json:"delta,omitempty" yaml:"delta,omitempty"`
}

// InvalidEventError reports a malformed replay event by its index
type InvalidEventError struct {
	Index  int
	Reason string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid replay event at index %d: %s", e.Index, e.Reason)
}

// NewInvalidEventError creates a new invalid event error
func NewInvalidEventError(index int, reason string) *InvalidEventError {
	return &InvalidEventError{
		Index:  index,
		Reason: reason,
	}
}

// Simulator feeds recorded events into a backoff engine and collects the
// resulting delay trace. It performs no sleeping and no command execution.
type Simulator struct {
	start  time.Time
	logger zerolog.Logger
}

// NewSimulator creates a simulator whose virtual clock starts at the given
// time; a zero start seeds the clock from the wall clock.
func NewSimulator(start time.Time, logger zerolog.Logger) *Simulator {
	if start.IsZero() {
		start = time.Now()
	}
	return &Simulator{
		start:  start,
		logger: logger.With().Str("component", "ReplaySimulator").Logger(),
	}
}

// Replay resolves each event's timestamp against the virtual clock, calls
// the engine accordingly and appends the returned value, including the
// give-up sentinel once the budget runs out. On a malformed event the trace
// collected so far is returned alongside the error; the engine keeps the
// state from the events already processed.
func (s *Simulator) Replay(events []Event, engine *backoff.Engine) ([]time.Duration, error) {
	virtualNow := s.start
	delays := make([]time.Duration, 0, len(events))

	for i, event := range events {
		if event.Timestamp != nil && event.Delta != nil {
			return delays, NewInvalidEventError(i, "timestamp and delta are mutually exclusive")
		}

		switch {
		case event.Timestamp != nil:
			virtualNow = epochToTime(*event.Timestamp)
		case event.Delta != nil:
			virtualNow = virtualNow.Add(secsToDuration(*event.Delta))
		}

		var delay time.Duration
		switch event.Kind {
		case KindFailure:
			delay = engine.Failure(virtualNow)
		case KindSuccess:
			delay = engine.Success(virtualNow)
		default:
			return delays, NewInvalidEventError(i, fmt.Sprintf("kind must be %q or %q, got %q", KindSuccess, KindFailure, event.Kind))
		}

		s.logger.Trace().
			Int("event", i).
			Str("kind", event.Kind).
			Dur("delay", delay).
			Msg("Replayed event")

		delays = append(delays, delay)
	}

	return delays, nil
}

// epochToTime converts fractional epoch seconds into a time
func epochToTime(secs float64) time.Time {
	return time.Unix(0, int64(secs*float64(time.Second)))
}

// secsToDuration converts fractional seconds into a duration
func secsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
