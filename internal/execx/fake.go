package execx

import (
	"context"
	"os/exec"
	"strings"
)

// Call records one invocation received by a Fake runner.
type Call struct {
	Name string
	Args []string
	Opts Options
}

// Fake is a scripted Runner for tests. Results are matched by command
// name; unmatched commands succeed with empty output unless Missing lists
// them.
type Fake struct {
	Calls   []Call
	Results map[string]Result // keyed by command name
	Missing map[string]bool   // commands that behave as not installed
	Errs    map[string]error  // commands that fail to execute at all
}

// NewFake returns an empty scripted runner.
func NewFake() *Fake {
	return &Fake{Results: map[string]Result{}, Missing: map[string]bool{}, Errs: map[string]error{}}
}

func (f *Fake) Run(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args, Opts: opts})
	if f.Missing[name] {
		return Result{}, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	if err, ok := f.Errs[name]; ok {
		return Result{}, err
	}
	if res, ok := f.Results[name]; ok {
		return res, nil
	}
	return Result{}, nil
}

// CommandLines renders each recorded call as a single command line.
func (f *Fake) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		lines[i] = strings.Join(append([]string{c.Name}, c.Args...), " ")
	}
	return lines
}
