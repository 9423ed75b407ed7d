package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// CommandRunner executes a command and reports its exit code. Normal
// non-zero exits are not errors; only environment-level failures (binary not
// found, fork failure) surface as a LaunchError.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (int, error)
}

// LaunchError means the command could not be started at all, so no exit code
// exists to classify.
type LaunchError struct {
	Command string
	Wrapped error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch command '%s': %v", e.Command, e.Wrapped)
}

func (e *LaunchError) Unwrap() error {
	return e.Wrapped
}

// NewLaunchError creates a new launch error
func NewLaunchError(command string, wrapped error) *LaunchError {
	return &LaunchError{
		Command: command,
		Wrapped: wrapped,
	}
}

// OSCommandRunner spawns real processes with inherited standard streams
type OSCommandRunner struct{}

// NewOSCommandRunner creates a new OS command runner
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes argv and returns its exit code. Signal termination is
// reported as the negated signal number.
func (r *OSCommandRunner) Run(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, NewLaunchError("", errors.New("empty command"))
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, NewLaunchError(argv[0], err)
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return -int(status.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}

	return 0, NewLaunchError(argv[0], err)
}
