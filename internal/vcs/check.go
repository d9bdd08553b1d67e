// Package vcs checks for and creates the local git repository.
package vcs

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/poonai/ginit/internal/errors"
)

// CheckNotInitialized fails with ALREADY_INITIALIZED when dir itself is a
// git repository. Parent repositories do not count.
func CheckNotInitialized(dir string) error {
	if _, err := git.PlainOpen(dir); err == nil {
		return errors.AlreadyInitialized(dir)
	}

	// go-git reports an empty or half-written .git as missing; git does
	// not, and neither do we.
	if _, err := os.Stat(filepath.Join(dir, git.GitDirName)); err == nil {
		return errors.AlreadyInitialized(dir)
	}
	return nil
}
