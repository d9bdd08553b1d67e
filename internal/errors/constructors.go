package errors

import (
	stderrors "errors"
	"fmt"
	"os/exec"
)

// AlreadyInitialized reports that dir is already under version control.
func AlreadyInitialized(dir string) *Error {
	return New(ErrCodeAlreadyInitialized, "already a git repository").
		WithDetail("dir", dir)
}

// API builds a remote error with the status code and message kept apart.
func API(code ErrorCode, status int, message string) *Error {
	e := New(code, message)
	e.Status = status
	return e
}

// AuthAPI classifies err as a failed authorization exchange. An error that
// already carries that code is returned as is; anything else is wrapped and
// keeps the remote status when one is present.
func AuthAPI(err error) *Error {
	if e := find(err); e != nil && e.Code == ErrCodeAuthAPI {
		return e
	}
	e := Wrap(err, ErrCodeAuthAPI, "authorization failed")
	e.Status = StatusOf(err)
	return e
}

// RepoCreation classifies err as a failed repository creation.
func RepoCreation(name string, err error) *Error {
	if e := find(err); e != nil && e.Code == ErrCodeRepoCreation {
		return e.WithDetail("repository", name)
	}
	e := Wrap(err, ErrCodeRepoCreation, fmt.Sprintf("could not create repository %q", name)).
		WithDetail("repository", name)
	e.Status = StatusOf(err)
	return e
}

// VCS wraps a failed git step. The exit code is recorded when available.
func VCS(step string, err error) *Error {
	e := Wrap(err, ErrCodeVCS, fmt.Sprintf("git %s failed", step)).
		WithDetail("step", step)

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		e = e.WithDetail("exitCode", exitErr.ExitCode())
	}

	return e
}

// IO wraps a local filesystem failure on path.
func IO(path string, err error) *Error {
	return Wrap(err, ErrCodeIO, fmt.Sprintf("could not write %s", path)).
		WithDetail("path", path)
}

// Aborted reports that the user cancelled an interactive prompt.
func Aborted() *Error {
	return New(ErrCodeAborted, "cancelled by user")
}
