package main

import (
	"testing"

	"github.com/aleister1102/retrier/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestApplyFlagOverrides(t *testing.T) {
	gCfg := config.NewDefaultGlobalConfig()
	flags := AppFlags{
		Algorithm:   config.AlgorithmFibonacci,
		RetryOn:     "1,75",
		MaxAttempts: 7,
	}

	applyFlagOverrides(gCfg, flags)

	assert.Equal(t, config.AlgorithmFibonacci, gCfg.BackoffConfig.Algorithm)
	assert.Equal(t, "1,75", gCfg.ExecutorConfig.RetryOnCodes)
	assert.Equal(t, 7, gCfg.BackoffConfig.MaxAttempts)
}

func TestApplyFlagOverrides_UnsetFlagsKeepConfigValues(t *testing.T) {
	gCfg := config.NewDefaultGlobalConfig()
	gCfg.BackoffConfig.MaxAttempts = 4
	gCfg.ExecutorConfig.DryRun = true
	gCfg.ExecutorConfig.SkipDelay = true

	// MaxAttempts -1 means the flag was not given
	applyFlagOverrides(gCfg, AppFlags{MaxAttempts: -1})

	assert.Equal(t, 4, gCfg.BackoffConfig.MaxAttempts)
	assert.True(t, gCfg.ExecutorConfig.DryRun)
	assert.True(t, gCfg.ExecutorConfig.SkipDelay)
}

func TestApplyFlagOverrides_BooleanFlagsOverrideBothWays(t *testing.T) {
	gCfg := config.NewDefaultGlobalConfig()
	gCfg.ExecutorConfig.DryRun = true
	gCfg.ExecutorConfig.SkipDelay = true

	// -dry-run=false and -skip-delay=false on the command line must win
	// over a config file that enables them
	applyFlagOverrides(gCfg, AppFlags{
		MaxAttempts:  -1,
		DryRun:       false,
		DryRunSet:    true,
		SkipDelay:    false,
		SkipDelaySet: true,
	})

	assert.False(t, gCfg.ExecutorConfig.DryRun)
	assert.False(t, gCfg.ExecutorConfig.SkipDelay)

	applyFlagOverrides(gCfg, AppFlags{
		MaxAttempts:  -1,
		DryRun:       true,
		DryRunSet:    true,
		SkipDelay:    true,
		SkipDelaySet: true,
	})

	assert.True(t, gCfg.ExecutorConfig.DryRun)
	assert.True(t, gCfg.ExecutorConfig.SkipDelay)
}
