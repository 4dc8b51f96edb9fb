package execx

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSystemRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"exit 0", []string{"-c", "exit 0"}, 0},
		{"exit 1", []string{"-c", "exit 1"}, 1},
		{"exit 42", []string{"-c", "exit 42"}, 42},
	}

	r := NewSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Run(context.Background(), "sh", tt.args, Options{})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.ExitCode != tt.want {
				t.Errorf("exit code = %d, want %d", res.ExitCode, tt.want)
			}
		})
	}
}

func TestSystemRunCapturesOutput(t *testing.T) {
	r := NewSystem()
	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Stdout, "out") {
		t.Errorf("stdout = %q, want to contain 'out'", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "err") {
		t.Errorf("stderr = %q, want to contain 'err'", res.Stderr)
	}
}

func TestSystemRunExtraEnv(t *testing.T) {
	r := NewSystem()
	res, err := r.Run(context.Background(), "sh", []string{"-c", "echo $KICKOFF_TEST_VAR"},
		Options{Env: map[string]string{"KICKOFF_TEST_VAR": "hello"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(res.Stdout, "hello") {
		t.Errorf("stdout = %q, want to contain 'hello'", res.Stdout)
	}
}

func TestAttemptMissingTool(t *testing.T) {
	var buf bytes.Buffer
	_, err := Attempt(context.Background(), NewSystem(), &buf, Options{},
		"definitely-not-an-installed-binary-kickoff")
	if !errors.Is(err, ErrToolMissing) {
		t.Fatalf("err = %v, want ErrToolMissing", err)
	}
	if !strings.Contains(buf.String(), "command not found") {
		t.Errorf("diagnostic = %q, want 'command not found'", buf.String())
	}
}

func TestAttemptCommandFailed(t *testing.T) {
	var buf bytes.Buffer
	_, err := Attempt(context.Background(), NewSystem(), &buf, Options{},
		"sh", "-c", "echo boom >&2; exit 3")
	if !errors.Is(err, ErrCommandFailed) {
		t.Fatalf("err = %v, want ErrCommandFailed", err)
	}
	out := buf.String()
	if !strings.Contains(out, "command failed") || !strings.Contains(out, "boom") {
		t.Errorf("diagnostic = %q, want failure line with captured stderr", out)
	}
}

func TestAttemptReportsExecutionErrors(t *testing.T) {
	f := NewFake()
	f.Errs["cargo"] = errors.New("context canceled")

	var buf bytes.Buffer
	_, err := Attempt(context.Background(), f, &buf, Options{}, "cargo", "init")
	if err == nil || errors.Is(err, ErrToolMissing) || errors.Is(err, ErrCommandFailed) {
		t.Fatalf("err = %v, want the raw execution error", err)
	}
	out := buf.String()
	if !strings.Contains(out, "cannot run cargo") || !strings.Contains(out, "context canceled") {
		t.Errorf("diagnostic = %q, want a cannot-run line with the cause", out)
	}
}

func TestAttemptSuccessIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	res, err := Attempt(context.Background(), NewSystem(), &buf, Options{}, "sh", "-c", "echo fine")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
	if buf.Len() != 0 {
		t.Errorf("success wrote diagnostics: %q", buf.String())
	}
}

func TestFakeRunnerScripting(t *testing.T) {
	f := NewFake()
	f.Missing["flutter"] = true
	f.Results["gh"] = Result{Stdout: "created"}

	var buf bytes.Buffer
	if _, err := Attempt(context.Background(), f, &buf, Options{}, "flutter", "--version"); !errors.Is(err, ErrToolMissing) {
		t.Errorf("missing fake tool: err = %v, want ErrToolMissing", err)
	}
	res, err := Attempt(context.Background(), f, &buf, Options{}, "gh", "repo", "create")
	if err != nil {
		t.Fatalf("Attempt gh: %v", err)
	}
	if res.Stdout != "created" {
		t.Errorf("stdout = %q, want 'created'", res.Stdout)
	}

	lines := f.CommandLines()
	want := []string{"flutter --version", "gh repo create"}
	if len(lines) != len(want) || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("recorded calls = %v, want %v", lines, want)
	}
}
