package config

import (
	"strconv"
	"strings"

	"github.com/aleister1102/retrier/internal/common"
)

// ExecutorConfig defines configuration for the retry executor
type ExecutorConfig struct {
	// Comma-separated exit codes that trigger a retry; every other code is a
	// success. Takes precedence over SuccessOnCodes when both are set.
	RetryOnCodes string `json:"retry_on,omitempty" yaml:"retry_on,omitempty" validate:"omitempty,exitcodes"`
	// Comma-separated exit codes treated as success; every other code retries
	SuccessOnCodes string `json:"success_on,omitempty" yaml:"success_on,omitempty" validate:"omitempty,exitcodes"`
	// Never execute the command; synthesize failing outcomes to show cadence
	DryRun bool `json:"dry_run" yaml:"dry_run"`
	// Advance a virtual clock instead of sleeping between attempts
	SkipDelay bool `json:"skip_delay" yaml:"skip_delay"`
	// What a failed process launch does: "abort" stops without consuming a
	// backoff attempt, "consume" treats it like any failing exit
	LaunchErrorPolicy string `json:"launch_error_policy,omitempty" yaml:"launch_error_policy,omitempty" validate:"omitempty,oneof=abort consume"`
}

// NewDefaultExecutorConfig creates default executor configuration
func NewDefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		LaunchErrorPolicy: LaunchErrorPolicyAbort,
	}
}

// ParseExitCodeList parses a comma-separated exit code list such as "0,2".
// Whitespace around entries is tolerated; an empty string yields nil.
func ParseExitCodeList(list string) ([]int, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	codes := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return nil, common.NewValidationError("exit_codes", list, "empty entry in exit code list")
		}
		code, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, common.NewValidationError("exit_codes", trimmed, "exit codes must be integers")
		}
		codes = append(codes, code)
	}
	return codes, nil
}
