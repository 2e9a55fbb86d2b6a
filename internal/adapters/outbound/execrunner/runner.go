package execrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/kubegrade/kubegrade/internal/domain"
)

// Runner implements domain.CommandRunner on top of os/exec.
type Runner struct{}

// New creates a Runner.
func New() *Runner { return &Runner{} }

// Run executes a command and captures its exit code and output. A non-zero
// exit is a result, not an error; errors mean the command never ran to
// completion (missing binary, expired context).
func (r *Runner) Run(ctx context.Context, name string, args ...string) (domain.CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := domain.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.CommandResult{}, fmt.Errorf("%s timed out: %w", name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return domain.CommandResult{}, fmt.Errorf("running %s: %w", name, err)
	}
	return result, nil
}

// RunWithTimeout runs with a fresh bounded context, for tool probes.
func (r *Runner) RunWithTimeout(timeout time.Duration, name string, args ...string) (domain.CommandResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Run(ctx, name, args...)
}
