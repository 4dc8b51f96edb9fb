// Package execx is the gateway to external programs. Everything that
// shells out goes through the Runner interface so tests can substitute a
// fake instead of invoking real tools.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Sentinel failures returned by Attempt. Callers skip the failed step and
// continue; nothing is retried.
var (
	ErrToolMissing   = errors.New("command not found")
	ErrCommandFailed = errors.New("command failed")
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Options are the optional parameters of a command invocation.
type Options struct {
	Dir string            // working directory
	Env map[string]string // extra environment variables, overlaid on the process env
}

// Runner runs external commands synchronously.
//
// Run returns a Result with ExitCode set whenever the process actually ran,
// even when it exited non-zero. The error is reserved for failures to
// execute at all: binary not found, context canceled, IO errors.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (Result, error)
}

// System runs commands with os/exec.
type System struct{}

// NewSystem returns the production Runner.
func NewSystem() *System {
	return &System{}
}

func (s *System) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// Attempt runs a command and applies the run-and-continue failure policy:
// a missing binary or a non-zero exit is reported on w and collapsed into a
// sentinel error; the caller is expected to skip the step and carry on.
func Attempt(ctx context.Context, r Runner, w io.Writer, opts Options, name string, args ...string) (Result, error) {
	res, err := r.Run(ctx, name, args, opts)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Fprintf(w, "  [error] command not found: %s. Is it installed and in your PATH?\n", name)
			return res, ErrToolMissing
		}
		fmt.Fprintf(w, "  [error] cannot run %s: %v\n", name, err)
		return res, err
	}
	if res.ExitCode != 0 {
		fmt.Fprintf(w, "  [error] command failed: %s\n", strings.Join(append([]string{name}, args...), " "))
		if res.Stdout != "" {
			fmt.Fprintf(w, "  stdout: %s\n", strings.TrimRight(res.Stdout, "\n"))
		}
		if res.Stderr != "" {
			fmt.Fprintf(w, "  stderr: %s\n", strings.TrimRight(res.Stderr, "\n"))
		}
		return res, ErrCommandFailed
	}
	return res, nil
}
