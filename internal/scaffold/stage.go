// Package scaffold creates the files of a new project. Artifacts are
// staged in an in-memory filesystem and only flushed to disk once, after
// the target directory has been checked, so an aborted run writes nothing.
package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// ErrTargetExists means the project directory is already present on disk.
// The run aborts before any write.
var ErrTargetExists = errors.New("target directory already exists")

// Stage accumulates generated files in memory until Flush.
type Stage struct {
	fs billy.Filesystem
}

// NewStage returns an empty staging area.
func NewStage() *Stage {
	return &Stage{fs: memfs.New()}
}

// WriteFile stages a regular file, creating parent directories.
func (s *Stage) WriteFile(path, content string) error {
	return s.write(path, content, 0644)
}

// WriteExecutable stages a file with the executable bit set.
func (s *Stage) WriteExecutable(path, content string) error {
	return s.write(path, content, 0755)
}

func (s *Stage) write(path, content string, mode os.FileMode) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, mode)
	if err != nil {
		return fmt.Errorf("cannot stage %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write([]byte(content)); err != nil {
		return fmt.Errorf("cannot stage %s: %w", path, err)
	}
	return nil
}

// ReadFile returns a staged file's content.
func (s *Stage) ReadFile(path string) (string, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Flush copies the staged tree into targetDir on the real filesystem,
// refusing to clobber an existing directory. One line is logged per
// created file.
func (s *Stage) Flush(targetDir string, logw io.Writer) error {
	if _, err := os.Stat(targetDir); err == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, targetDir)
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return err
	}
	return s.copyTo(osfs.New(targetDir), logw)
}

// FlushInto copies the staged tree into an existing filesystem root.
// Tests use it with a memfs target.
func (s *Stage) FlushInto(out billy.Filesystem, logw io.Writer) error {
	return s.copyTo(out, logw)
}

func (s *Stage) copyTo(out billy.Filesystem, logw io.Writer) error {
	return walk(s.fs, "/", func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return out.MkdirAll(path, 0755)
		}

		in, err := s.fs.Open(path)
		if err != nil {
			return fmt.Errorf("cannot open staged file %s: %w", path, err)
		}
		defer in.Close()

		dst, err := out.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, info.Mode())
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", path, err)
		}
		defer dst.Close()

		if _, err := io.Copy(dst, in); err != nil {
			return fmt.Errorf("cannot write %s: %w", path, err)
		}
		fmt.Fprintf(logw, "    create  %s\n", filepath.ToSlash(path))
		return nil
	})
}
