package vcs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dev-scripter/kickoff/internal/execx"
)

func TestInitRepoCreatesGitDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := InitRepo(dir); err != nil {
		t.Fatalf("InitRepo: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Errorf(".git directory missing: %v", err)
	}
}

func TestInitRepoFailsOnExistingRepo(t *testing.T) {
	dir := t.TempDir()
	if err := InitRepo(dir); err != nil {
		t.Fatalf("first InitRepo: %v", err)
	}
	if err := InitRepo(dir); err == nil {
		t.Error("second InitRepo succeeded, want error")
	}
}

func TestCreateRemoteInvokesGh(t *testing.T) {
	fake := execx.NewFake()
	var log bytes.Buffer

	err := CreateRemote(context.Background(), fake, &log, "octocat", "demo", "/proj")
	if err != nil {
		t.Fatalf("CreateRemote: %v", err)
	}
	lines := fake.CommandLines()
	if len(lines) != 1 || lines[0] != "gh repo create octocat/demo --private -y" {
		t.Errorf("commands = %v", lines)
	}
	if fake.Calls[0].Opts.Dir != "/proj" {
		t.Errorf("dir = %q, want /proj", fake.Calls[0].Opts.Dir)
	}
}

func TestCreateRemoteMissingGh(t *testing.T) {
	fake := execx.NewFake()
	fake.Missing["gh"] = true
	var log bytes.Buffer

	err := CreateRemote(context.Background(), fake, &log, "octocat", "demo", "/proj")
	if !errors.Is(err, execx.ErrToolMissing) {
		t.Fatalf("err = %v, want ErrToolMissing", err)
	}
	if !bytes.Contains(log.Bytes(), []byte("command not found")) {
		t.Errorf("diagnostic missing:\n%s", log.String())
	}
}
