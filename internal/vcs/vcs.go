// Package vcs handles version-control side effects: local repository
// initialization through go-git and remote creation through the gh CLI.
package vcs

import (
	"context"
	"fmt"
	"io"

	git "github.com/go-git/go-git/v5"

	"github.com/dev-scripter/kickoff/internal/execx"
)

// InitRepo initializes an empty git repository at path.
func InitRepo(path string) error {
	if _, err := git.PlainInit(path, false); err != nil {
		return fmt.Errorf("cannot initialize git repository: %w", err)
	}
	return nil
}

// CreateRemote creates a private GitHub repository user/name via the gh
// CLI, run inside dir. A missing or failing gh is reported by the gateway
// and surfaces as its sentinel; the caller treats that as a skipped step.
func CreateRemote(ctx context.Context, runner execx.Runner, logw io.Writer, user, name, dir string) error {
	slug := fmt.Sprintf("%s/%s", user, name)
	_, err := execx.Attempt(ctx, runner, logw, execx.Options{Dir: dir},
		"gh", "repo", "create", slug, "--private", "-y")
	return err
}
