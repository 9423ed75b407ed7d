package config

// BackoffConfig selects and parameterizes one backoff algorithm. Exactly one
// variant parameter block should be set, matching Algorithm; the common
// fields apply to every variant. All delays are in seconds and may be
// fractional.
type BackoffConfig struct {
	// Algorithm selects the delay growth/decay strategy
	Algorithm string `json:"algorithm" yaml:"algorithm" validate:"required,algorithm"`
	// Floor applied to every computed delay
	MinDelaySecs float64 `json:"min_delay_secs,omitempty" yaml:"min_delay_secs,omitempty" validate:"omitempty,min=0"`
	// Ceiling applied to every computed delay (0 = unbounded)
	MaxDelaySecs float64 `json:"max_delay_secs,omitempty" yaml:"max_delay_secs,omitempty" validate:"omitempty,min=0"`
	// Number of failures after which the engine gives up (0 = unlimited)
	MaxAttempts int `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty" validate:"omitempty,min=0"`
	// Wall-clock budget since the first failure (0 = unlimited)
	MaxDurationSecs float64 `json:"max_duration_secs,omitempty" yaml:"max_duration_secs,omitempty" validate:"omitempty,min=0"`
	// Fraction of each computed delay randomized away to desynchronize retriers
	JitterFactor float64 `json:"jitter_factor,omitempty" yaml:"jitter_factor,omitempty" validate:"omitempty,min=0,max=1"`

	Constant    *ConstantParams    `json:"constant,omitempty" yaml:"constant,omitempty"`
	Exponential *ExponentialParams `json:"exponential,omitempty" yaml:"exponential,omitempty"`
	Fibonacci   *FibonacciParams   `json:"fibonacci,omitempty" yaml:"fibonacci,omitempty"`
	LILD        *LILDParams        `json:"lild,omitempty" yaml:"lild,omitempty"`
	LIMD        *LIMDParams        `json:"limd,omitempty" yaml:"limd,omitempty"`
	MILD        *MILDParams        `json:"mild,omitempty" yaml:"mild,omitempty"`
	MIMD        *MIMDParams        `json:"mimd,omitempty" yaml:"mimd,omitempty"`
}

// ConstantParams configures the constant algorithm: every failure waits the
// same delay, success drops the delay to zero.
type ConstantParams struct {
	DelaySecs float64 `json:"delay_secs" yaml:"delay_secs" validate:"min=0"`
}

// ExponentialParams configures the exponential algorithm: the k-th
// consecutive failure waits initial_delay * base^(k-1).
type ExponentialParams struct {
	InitialDelaySecs float64 `json:"initial_delay_secs" yaml:"initial_delay_secs" validate:"min=0"`
	// Growth base per consecutive failure (default 2)
	ExponentBase float64 `json:"exponent_base,omitempty" yaml:"exponent_base,omitempty" validate:"omitempty,gt=0"`
}

// FibonacciParams configures the fibonacci algorithm: consecutive failures
// walk the Fibonacci sequence scaled by initial_delay; success resets the
// sequence index.
type FibonacciParams struct {
	InitialDelaySecs float64 `json:"initial_delay_secs" yaml:"initial_delay_secs" validate:"min=0"`
}

// LILDParams configures linear-increase, linear-decrease: failures add
// increment, successes subtract decrement (floored at zero).
type LILDParams struct {
	InitialDelaySecs float64 `json:"initial_delay_secs" yaml:"initial_delay_secs" validate:"min=0"`
	IncrementSecs    float64 `json:"increment_secs" yaml:"increment_secs" validate:"min=0"`
	DecrementSecs    float64 `json:"decrement_secs" yaml:"decrement_secs" validate:"min=0"`
}

// LIMDParams configures linear-increase, multiplicative-decrease.
type LIMDParams struct {
	InitialDelaySecs float64 `json:"initial_delay_secs" yaml:"initial_delay_secs" validate:"min=0"`
	IncrementSecs    float64 `json:"increment_secs" yaml:"increment_secs" validate:"min=0"`
	DecreaseFactor   float64 `json:"decrease_factor" yaml:"decrease_factor" validate:"min=0"`
}

// MILDParams configures multiplicative-increase, linear-decrease.
type MILDParams struct {
	InitialDelaySecs float64 `json:"initial_delay_secs" yaml:"initial_delay_secs" validate:"min=0"`
	IncreaseFactor   float64 `json:"increase_factor" yaml:"increase_factor" validate:"min=0"`
	DecrementSecs    float64 `json:"decrement_secs" yaml:"decrement_secs" validate:"min=0"`
}

// MIMDParams configures multiplicative-increase, multiplicative-decrease.
type MIMDParams struct {
	InitialDelaySecs float64 `json:"initial_delay_secs" yaml:"initial_delay_secs" validate:"min=0"`
	IncreaseFactor   float64 `json:"increase_factor" yaml:"increase_factor" validate:"min=0"`
	DecreaseFactor   float64 `json:"decrease_factor" yaml:"decrease_factor" validate:"min=0"`
}

// NewDefaultBackoffConfig creates default backoff configuration
func NewDefaultBackoffConfig() BackoffConfig {
	return BackoffConfig{
		Algorithm:    DefaultAlgorithm,
		MaxDelaySecs: DefaultMaxDelaySecs,
		MaxAttempts:  DefaultMaxAttempts,
		Exponential: &ExponentialParams{
			InitialDelaySecs: DefaultInitialDelaySecs,
			ExponentBase:     DefaultExponentBase,
		},
	}
}
