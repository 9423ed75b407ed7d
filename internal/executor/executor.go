// Package executor drives a command through repeated attempts, consulting a
// backoff engine after each failure.
package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aleister1102/retrier/internal/backoff"
	"github.com/aleister1102/retrier/internal/common"
	"github.com/aleister1102/retrier/internal/config"
	"github.com/rs/zerolog"
)

// SimulatedExitCode is the sentinel exit code synthesized for attempts that
// never ran a real process (dry runs, consumed launch failures).
const SimulatedExitCode = -1

// Options controls executor behavior beyond the backoff engine itself.
type Options struct {
	// DryRun never executes the command; each attempt produces a simulated
	// outcome that is always classified as failure, so a dry run shows the
	// full retry cadence and can only terminate via give-up. This mirrors the
	// tool's documented behavior and is intentional.
	DryRun bool
	// SkipDelay replaces the inter-attempt sleep with a virtual clock that is
	// advanced by each computed delay and fed to the engine, so duration
	// budgets behave as if real time had elapsed.
	SkipDelay bool
	// LaunchErrorPolicy selects what a failed process launch does: abort
	// immediately without consuming a backoff attempt (default), or consume
	// an attempt like any failing exit.
	LaunchErrorPolicy string
}

// OptionsFromConfig builds executor options from the configuration section
func OptionsFromConfig(cfg config.ExecutorConfig) Options {
	policy := cfg.LaunchErrorPolicy
	if policy == "" {
		policy = config.LaunchErrorPolicyAbort
	}
	return Options{
		DryRun:            cfg.DryRun,
		SkipDelay:         cfg.SkipDelay,
		LaunchErrorPolicy: policy,
	}
}

// Result describes how a retry sequence ended.
type Result struct {
	Success  bool
	GaveUp   bool
	Attempts int
	ExitCode int
	Err      error
}

// String renders the user-facing outcome summary
func (r Result) String() string {
	switch {
	case r.Success:
		return fmt.Sprintf("succeeded after %d attempt(s)", r.Attempts)
	case r.GaveUp:
		return fmt.Sprintf("failed after %d attempt(s)", r.Attempts)
	case r.Err != nil:
		return fmt.Sprintf("aborted after %d attempt(s): %v", r.Attempts, r.Err)
	default:
		return fmt.Sprintf("stopped after %d attempt(s)", r.Attempts)
	}
}

// Executor runs a command through the retry state machine:
// ATTEMPT -> RUN -> CLASSIFY -> {SUCCESS | DELAY -> ATTEMPT | GIVE_UP}.
type Executor struct {
	runner     CommandRunner
	classifier *Classifier
	options    Options
	clock      common.Clock
	logger     zerolog.Logger
}

// ExecutorOption configures an Executor at construction time
type ExecutorOption func(*Executor)

// WithClock overrides the executor's clock
func WithClock(clock common.Clock) ExecutorOption {
	return func(e *Executor) {
		e.clock = clock
	}
}

// NewExecutor creates a new retry executor
func NewExecutor(runner CommandRunner, classifier *Classifier, options Options, logger zerolog.Logger, opts ...ExecutorOption) *Executor {
	executor := &Executor{
		runner:     runner,
		classifier: classifier,
		options:    options,
		clock:      common.NewSystemClock(),
		logger:     logger.With().Str("component", "RetryExecutor").Logger(),
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Run drives argv through repeated attempts until the classifier reports
// success, the engine gives up, a launch fails under the abort policy, or
// the context is cancelled.
func (e *Executor) Run(ctx context.Context, argv []string, engine *backoff.Engine) Result {
	command := strings.Join(argv, " ")
	virtualNow := e.clock.Now()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{Attempts: attempt - 1, Err: err}
		}

		exitCode, runErr := e.runAttempt(ctx, argv)
		if runErr != nil {
			if e.options.LaunchErrorPolicy != config.LaunchErrorPolicyConsume {
				e.logger.Error().
					Str("command", command).
					Int("attempt", attempt).
					Err(runErr).
					Msg("Command could not be launched, aborting")
				return Result{Attempts: attempt, Err: runErr}
			}
			e.logger.Warn().
				Str("command", command).
				Int("attempt", attempt).
				Err(runErr).
				Msg("Command could not be launched, consuming a retry attempt")
			exitCode = SimulatedExitCode
		}

		success := e.classify(exitCode, runErr)
		e.logger.Info().
			Str("command", command).
			Int("attempt", attempt).
			Int("exit_code", exitCode).
			Bool("success", success).
			Msg("Attempt finished")

		if success {
			return Result{Success: true, Attempts: attempt, ExitCode: exitCode}
		}

		now := e.clock.Now()
		if e.options.SkipDelay {
			now = virtualNow
		}

		delay := engine.Failure(now)
		if delay == backoff.GiveUp {
			e.logger.Warn().
				Str("command", command).
				Int("attempt", attempt).
				Msg("Retry budget exhausted, giving up")
			return Result{GaveUp: true, Attempts: attempt, ExitCode: exitCode}
		}

		e.logger.Info().
			Str("command", command).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("Attempt failed, waiting before retry")

		if e.options.SkipDelay {
			virtualNow = virtualNow.Add(delay)
			continue
		}
		if err := e.sleep(ctx, delay); err != nil {
			return Result{Attempts: attempt, ExitCode: exitCode, Err: err}
		}
	}
}

// runAttempt executes or simulates one attempt
func (e *Executor) runAttempt(ctx context.Context, argv []string) (int, error) {
	if e.options.DryRun {
		e.logger.Info().
			Str("command", strings.Join(argv, " ")).
			Msg("Dry run, command not executed")
		return SimulatedExitCode, nil
	}
	return e.runner.Run(ctx, argv)
}

// classify maps an attempt outcome to success or failure. Simulated dry-run
// outcomes and consumed launch failures never count as success.
func (e *Executor) classify(exitCode int, runErr error) bool {
	if e.options.DryRun || runErr != nil {
		return false
	}
	return e.classifier.Classify(exitCode)
}

// sleep suspends until the delay elapses or the context is cancelled
func (e *Executor) sleep(ctx context.Context, delay time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
