package backoff

import (
	"math/rand"
	"time"

	"github.com/aleister1102/retrier/internal/common"
	"github.com/aleister1102/retrier/internal/config"
)

const configSection = "backoff_config"

// New builds an engine from configuration. The algorithm set is closed:
// selection happens through this switch, never through dynamic lookup.
// Invalid or missing parameters yield a configuration error and no engine.
func New(cfg config.BackoffConfig, opts ...Option) (*Engine, error) {
	if err := validateCommon(cfg); err != nil {
		return nil, err
	}

	strategy, err := buildStrategy(cfg)
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		strategy:     strategy,
		minDelay:     secsToDuration(cfg.MinDelaySecs),
		maxDelay:     secsToDuration(cfg.MaxDelaySecs),
		maxAttempts:  cfg.MaxAttempts,
		maxDuration:  secsToDuration(cfg.MaxDurationSecs),
		jitterFactor: cfg.JitterFactor,
		clock:        common.NewSystemClock(),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine, nil
}

// buildStrategy maps the algorithm name onto its strategy implementation
func buildStrategy(cfg config.BackoffConfig) (strategy, error) {
	switch cfg.Algorithm {
	case config.AlgorithmConstant:
		if cfg.Constant == nil {
			return nil, missingParams(config.AlgorithmConstant)
		}
		if cfg.Constant.DelaySecs < 0 {
			return nil, badParam(config.AlgorithmConstant, "delay_secs", "must not be negative")
		}
		return &constantStrategy{delay: secsToDuration(cfg.Constant.DelaySecs)}, nil

	case config.AlgorithmExponential:
		if cfg.Exponential == nil {
			return nil, missingParams(config.AlgorithmExponential)
		}
		if cfg.Exponential.InitialDelaySecs < 0 {
			return nil, badParam(config.AlgorithmExponential, "initial_delay_secs", "must not be negative")
		}
		base := cfg.Exponential.ExponentBase
		if base == 0 {
			base = config.DefaultExponentBase
		}
		if base <= 0 {
			return nil, badParam(config.AlgorithmExponential, "exponent_base", "must be greater than zero")
		}
		return &exponentialStrategy{
			initial: secsToDuration(cfg.Exponential.InitialDelaySecs),
			base:    base,
		}, nil

	case config.AlgorithmFibonacci:
		if cfg.Fibonacci == nil {
			return nil, missingParams(config.AlgorithmFibonacci)
		}
		if cfg.Fibonacci.InitialDelaySecs < 0 {
			return nil, badParam(config.AlgorithmFibonacci, "initial_delay_secs", "must not be negative")
		}
		return &fibonacciStrategy{initial: secsToDuration(cfg.Fibonacci.InitialDelaySecs)}, nil

	case config.AlgorithmLILD:
		if cfg.LILD == nil {
			return nil, missingParams(config.AlgorithmLILD)
		}
		if cfg.LILD.InitialDelaySecs < 0 || cfg.LILD.IncrementSecs < 0 || cfg.LILD.DecrementSecs < 0 {
			return nil, badParam(config.AlgorithmLILD, "delays", "must not be negative")
		}
		return &lildStrategy{
			initial:   secsToDuration(cfg.LILD.InitialDelaySecs),
			increment: secsToDuration(cfg.LILD.IncrementSecs),
			decrement: secsToDuration(cfg.LILD.DecrementSecs),
		}, nil

	case config.AlgorithmLIMD:
		if cfg.LIMD == nil {
			return nil, missingParams(config.AlgorithmLIMD)
		}
		if cfg.LIMD.InitialDelaySecs < 0 || cfg.LIMD.IncrementSecs < 0 || cfg.LIMD.DecreaseFactor < 0 {
			return nil, badParam(config.AlgorithmLIMD, "parameters", "must not be negative")
		}
		return &limdStrategy{
			initial:        secsToDuration(cfg.LIMD.InitialDelaySecs),
			increment:      secsToDuration(cfg.LIMD.IncrementSecs),
			decreaseFactor: cfg.LIMD.DecreaseFactor,
		}, nil

	case config.AlgorithmMILD:
		if cfg.MILD == nil {
			return nil, missingParams(config.AlgorithmMILD)
		}
		if cfg.MILD.InitialDelaySecs < 0 || cfg.MILD.IncreaseFactor < 0 || cfg.MILD.DecrementSecs < 0 {
			return nil, badParam(config.AlgorithmMILD, "parameters", "must not be negative")
		}
		return &mildStrategy{
			initial:        secsToDuration(cfg.MILD.InitialDelaySecs),
			increaseFactor: cfg.MILD.IncreaseFactor,
			decrement:      secsToDuration(cfg.MILD.DecrementSecs),
		}, nil

	case config.AlgorithmMIMD:
		if cfg.MIMD == nil {
			return nil, missingParams(config.AlgorithmMIMD)
		}
		if cfg.MIMD.InitialDelaySecs < 0 || cfg.MIMD.IncreaseFactor < 0 || cfg.MIMD.DecreaseFactor < 0 {
			return nil, badParam(config.AlgorithmMIMD, "parameters", "must not be negative")
		}
		return &mimdStrategy{
			initial:        secsToDuration(cfg.MIMD.InitialDelaySecs),
			increaseFactor: cfg.MIMD.IncreaseFactor,
			decreaseFactor: cfg.MIMD.DecreaseFactor,
		}, nil

	default:
		return nil, common.NewConfigurationError(configSection, "algorithm",
			"unknown algorithm '"+cfg.Algorithm+"'")
	}
}

// validateCommon checks the variant-independent fields
func validateCommon(cfg config.BackoffConfig) error {
	if cfg.MinDelaySecs < 0 {
		return badParam("common", "min_delay_secs", "must not be negative")
	}
	if cfg.MaxDelaySecs < 0 {
		return badParam("common", "max_delay_secs", "must not be negative")
	}
	if cfg.MaxDelaySecs > 0 && cfg.MaxDelaySecs < cfg.MinDelaySecs {
		return badParam("common", "max_delay_secs", "must not be below min_delay_secs")
	}
	if cfg.MaxAttempts < 0 {
		return badParam("common", "max_attempts", "must not be negative")
	}
	if cfg.MaxDurationSecs < 0 {
		return badParam("common", "max_duration_secs", "must not be negative")
	}
	if cfg.JitterFactor < 0 || cfg.JitterFactor > 1 {
		return badParam("common", "jitter_factor", "must be between 0 and 1")
	}
	return nil
}

func missingParams(algorithm string) error {
	return common.NewConfigurationError(configSection, algorithm,
		"algorithm selected but parameter block is missing")
}

func badParam(algorithm, field, reason string) error {
	return common.NewConfigurationError(configSection, algorithm+"."+field, reason)
}

// secsToDuration converts fractional seconds into a duration
func secsToDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
