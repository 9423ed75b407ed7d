package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	base := errors.New("disk full")

	wrapped := WrapError(base, "writing trace")

	require.Error(t, wrapped)
	assert.Equal(t, "writing trace: disk full", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapError_NilPassesThrough(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))
	assert.NoError(t, WrapErrorf(nil, "ignored %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	base := errors.New("no such file")

	wrapped := WrapErrorf(base, "loading '%s'", "events.yaml")

	require.Error(t, wrapped)
	assert.Equal(t, "loading 'events.yaml': no such file", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("jitter_factor", 1.5, "must be at most 1")

	assert.Equal(t, "invalid value for 'jitter_factor': must be at most 1 (got 1.5)", err.Error())
}

func TestConfigurationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigurationError
		expected string
	}{
		{
			name:     "section and field",
			err:      NewConfigurationError("backoff_config", "exponential", "missing parameters"),
			expected: "bad configuration: backoff_config.exponential: missing parameters",
		},
		{
			name:     "section only",
			err:      NewConfigurationError("backoff_config", "", "unknown algorithm"),
			expected: "bad configuration: backoff_config: unknown algorithm",
		},
		{
			name:     "reason only",
			err:      NewConfigurationError("", "", "empty config"),
			expected: "bad configuration: empty config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestConfigurationError_MatchesWithErrorsAs(t *testing.T) {
	wrapped := WrapError(NewConfigurationError("backoff_config", "constant", "delay must be non-negative"), "building engine")

	var configErr *ConfigurationError
	require.True(t, errors.As(wrapped, &configErr))
	assert.Equal(t, "constant", configErr.Field)
}
