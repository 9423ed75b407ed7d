package executor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aleister1102/retrier/internal/backoff"
	"github.com/aleister1102/retrier/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner replays a fixed sequence of exit codes; the last one repeats
type stubRunner struct {
	codes []int
	errs  []error
	calls int
}

func (r *stubRunner) Run(ctx context.Context, argv []string) (int, error) {
	idx := r.calls
	r.calls++
	if idx < len(r.errs) && r.errs[idx] != nil {
		return 0, r.errs[idx]
	}
	if len(r.codes) == 0 {
		return 0, nil
	}
	if idx >= len(r.codes) {
		idx = len(r.codes) - 1
	}
	return r.codes[idx], nil
}

func newEngine(t *testing.T, cfg config.BackoffConfig) *backoff.Engine {
	t.Helper()
	engine, err := backoff.New(cfg)
	require.NoError(t, err)
	return engine
}

func zeroDelayEngine(t *testing.T, maxAttempts int) *backoff.Engine {
	t.Helper()
	return newEngine(t, config.BackoffConfig{
		Algorithm:   config.AlgorithmConstant,
		MaxAttempts: maxAttempts,
		Constant:    &config.ConstantParams{DelaySecs: 0},
	})
}

func TestRun_SuccessOnListedExitCode(t *testing.T) {
	runner := &stubRunner{codes: []int{2}}
	classifier := NewClassifier(nil, []int{0, 2})
	exec := NewExecutor(runner, classifier, Options{}, zerolog.Nop())

	result := exec.Run(context.Background(), []string{"some-command"}, zeroDelayEngine(t, 0))

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, 2, result.ExitCode)
	assert.Equal(t, 1, runner.calls)
}

func TestRun_GivesUpAfterMaxAttempts(t *testing.T) {
	runner := &stubRunner{codes: []int{1}}
	exec := NewExecutor(runner, NewClassifier(nil, nil), Options{}, zerolog.Nop())

	result := exec.Run(context.Background(), []string{"failing-command"}, zeroDelayEngine(t, 3))

	assert.False(t, result.Success)
	assert.True(t, result.GaveUp)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, 3, runner.calls)
	assert.Equal(t, "failed after 3 attempt(s)", result.String())
}

func TestRun_SucceedsAfterRetries(t *testing.T) {
	runner := &stubRunner{codes: []int{1, 1, 0}}
	exec := NewExecutor(runner, NewClassifier(nil, nil), Options{}, zerolog.Nop())

	result := exec.Run(context.Background(), []string{"flaky-command"}, zeroDelayEngine(t, 0))

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Attempts)
	assert.Equal(t, "succeeded after 3 attempt(s)", result.String())
}

func TestRun_RetryOnTakesPrecedenceOverSuccessOn(t *testing.T) {
	runner := &stubRunner{codes: []int{5}}
	classifier := NewClassifier([]int{1}, []int{1})
	exec := NewExecutor(runner, classifier, Options{}, zerolog.Nop())

	// 5 is not in retry_on, so it is a success even though it is not in
	// success_on either
	result := exec.Run(context.Background(), []string{"cmd"}, zeroDelayEngine(t, 0))
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Attempts)
}

func TestRun_DryRunNeverExecutesAndNeverSucceeds(t *testing.T) {
	runner := &stubRunner{codes: []int{0}}
	exec := NewExecutor(runner, NewClassifier(nil, nil), Options{DryRun: true, SkipDelay: true}, zerolog.Nop())

	result := exec.Run(context.Background(), []string{"true"}, zeroDelayEngine(t, 2))

	assert.False(t, result.Success)
	assert.True(t, result.GaveUp)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, 0, runner.calls, "dry run must not spawn the command")
	assert.Equal(t, SimulatedExitCode, result.ExitCode)
}

func TestRun_SkipDelayHonorsDurationBudget(t *testing.T) {
	// 10s constant delay against a 25s budget: the virtual clock crosses the
	// budget on the fourth failure without any real sleeping
	engine := newEngine(t, config.BackoffConfig{
		Algorithm:       config.AlgorithmConstant,
		MaxDurationSecs: 25,
		Constant:        &config.ConstantParams{DelaySecs: 10},
	})
	runner := &stubRunner{codes: []int{1}}
	exec := NewExecutor(runner, NewClassifier(nil, nil), Options{SkipDelay: true}, zerolog.Nop())

	start := time.Now()
	result := exec.Run(context.Background(), []string{"failing-command"}, engine)
	elapsed := time.Since(start)

	assert.True(t, result.GaveUp)
	assert.Equal(t, 4, result.Attempts)
	assert.Less(t, elapsed, 5*time.Second, "skip-delay run must not sleep")
}

func TestRun_LaunchErrorAbortsWithoutConsumingAttempt(t *testing.T) {
	launchErr := NewLaunchError("missing-binary", errors.New("executable file not found"))
	runner := &stubRunner{errs: []error{launchErr}}
	engine := zeroDelayEngine(t, 0)
	exec := NewExecutor(runner, NewClassifier(nil, nil), Options{}, zerolog.Nop())

	result := exec.Run(context.Background(), []string{"missing-binary"}, engine)

	assert.False(t, result.Success)
	assert.False(t, result.GaveUp)
	assert.Equal(t, 1, result.Attempts)

	var le *LaunchError
	require.True(t, errors.As(result.Err, &le))
	assert.Equal(t, 0, engine.Snapshot().AttemptCount, "abort policy must not consume a backoff attempt")
}

func TestRun_LaunchErrorConsumePolicyRetries(t *testing.T) {
	launchErr := NewLaunchError("flaky-binary", errors.New("text file busy"))
	runner := &stubRunner{errs: []error{launchErr}, codes: []int{0, 0}}
	engine := zeroDelayEngine(t, 0)
	options := Options{LaunchErrorPolicy: config.LaunchErrorPolicyConsume}
	exec := NewExecutor(runner, NewClassifier(nil, nil), options, zerolog.Nop())

	result := exec.Run(context.Background(), []string{"flaky-binary"}, engine)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Attempts)
	assert.Equal(t, 1, engine.Snapshot().AttemptCount, "consume policy charges the failed launch")
}

func TestRun_CancelledContextStopsBeforeAttempt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &stubRunner{codes: []int{0}}
	exec := NewExecutor(runner, NewClassifier(nil, nil), Options{}, zerolog.Nop())

	result := exec.Run(ctx, []string{"cmd"}, zeroDelayEngine(t, 0))

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.Attempts)
	assert.ErrorIs(t, result.Err, context.Canceled)
	assert.Equal(t, 0, runner.calls)
}

func TestOptionsFromConfig_DefaultsLaunchErrorPolicy(t *testing.T) {
	options := OptionsFromConfig(config.ExecutorConfig{})
	assert.Equal(t, config.LaunchErrorPolicyAbort, options.LaunchErrorPolicy)

	options = OptionsFromConfig(config.ExecutorConfig{
		DryRun:            true,
		SkipDelay:         true,
		LaunchErrorPolicy: config.LaunchErrorPolicyConsume,
	})
	assert.True(t, options.DryRun)
	assert.True(t, options.SkipDelay)
	assert.Equal(t, config.LaunchErrorPolicyConsume, options.LaunchErrorPolicy)
}
