package osascript

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/ports"
)

// DefaultTimeout bounds a single script run
const DefaultTimeout = 30 * time.Second

// Runner implements ports.ScriptRunner by shelling out to osascript
type Runner struct {
	binary  string
	timeout time.Duration
}

// Compile-time interface verification
var _ ports.ScriptRunner = (*Runner)(nil)

// NewRunner creates a runner for the osascript binary on PATH
func NewRunner() *Runner {
	return &Runner{binary: "osascript", timeout: DefaultTimeout}
}

// NewRunnerWithBinary creates a runner for an explicit interpreter.
// The interpreter is invoked as `<binary> -e <script> [args...]`.
func NewRunnerWithBinary(binary string, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{binary: binary, timeout: timeout}
}

// Run implements ports.ScriptRunner.Run.
// Output holds the combined stdout and stderr, also on failure.
func (r *Runner) Run(ctx context.Context, script string, args ...string) (ports.ScriptResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmdArgs := append([]string{"-e", script}, args...)
	cmd := exec.CommandContext(ctx, r.binary, cmdArgs...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()
	result := ports.ScriptResult{Output: strings.TrimSpace(out.String())}

	logging.Logger.Debug("Script finished",
		"binary", r.binary,
		"args", args,
		"duration", time.Since(start),
		"error", err)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result, fmt.Errorf("%s timed out after %s", r.binary, r.timeout)
		}
		return result, fmt.Errorf("%s failed: %w", r.binary, err)
	}
	return result, nil
}

// DryRunner implements ports.ScriptRunner without executing anything
type DryRunner struct {
	out io.Writer
}

// Compile-time interface verification
var _ ports.ScriptRunner = (*DryRunner)(nil)

// NewDryRunner creates a runner that prints each script to out
func NewDryRunner(out io.Writer) *DryRunner {
	if out == nil {
		out = io.Discard
	}
	return &DryRunner{out: out}
}

// Run implements ports.ScriptRunner.Run
func (r *DryRunner) Run(ctx context.Context, script string, args ...string) (ports.ScriptResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.ScriptResult{}, err
	}

	logging.Logger.Info("Dry run, script not executed", "script", script, "args", args)

	fmt.Fprintln(r.out, "[dry-run] osascript")
	for _, line := range strings.Split(script, "\n") {
		fmt.Fprintf(r.out, "  | %s\n", line)
	}
	if len(args) > 0 {
		fmt.Fprintf(r.out, "  args: %s\n", strings.Join(args, " "))
	}
	return ports.ScriptResult{}, nil
}
