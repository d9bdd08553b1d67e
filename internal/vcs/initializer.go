package vcs

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/poonai/ginit/internal/errors"
	"github.com/poonai/ginit/internal/logging"
)

const (
	// CommitMessage is used for the first commit.
	CommitMessage = "Initial commit"
	// RemoteName is the remote the new repository is registered under.
	RemoteName = "origin"
	// DefaultBranch is pushed when no branch is configured.
	DefaultBranch = "main"

	ignoreFile = ".gitignore"
)

// Runner runs one git command in dir.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// GitRunner runs the git binary.
type GitRunner struct {
	executor Executor
}

// NewGitRunner returns a GitRunner; a nil executor uses os/exec.
func NewGitRunner(executor Executor) *GitRunner {
	if executor == nil {
		executor = RealExecutor{}
	}
	return &GitRunner{executor: executor}
}

// Run runs git with args. Output is only surfaced on failure.
func (r *GitRunner) Run(ctx context.Context, dir string, args ...string) error {
	cmd := r.executor.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// Initializer turns a directory into a repository and pushes it.
type Initializer struct {
	dir    string
	branch string
	runner Runner
	log    *logrus.Entry
}

// NewInitializer creates an Initializer for dir pushing branch. An empty
// branch means DefaultBranch.
func NewInitializer(dir, branch string, runner Runner) *Initializer {
	if branch == "" {
		branch = DefaultBranch
	}
	return &Initializer{
		dir:    dir,
		branch: branch,
		runner: runner,
		log:    logging.NewLogger("vcs"),
	}
}

type step struct {
	name string
	args []string
}

// steps returns the git commands InitializeAndPush runs, in order.
func (i *Initializer) steps(endpoint string) []step {
	return []step{
		{"init", []string{"init", "--initial-branch=" + i.branch}},
		{"add " + ignoreFile, []string{"add", ignoreFile}},
		{"add", []string{"add", "."}},
		{"commit", []string{"commit", "-m", CommitMessage}},
		{"remote add", []string{"remote", "add", RemoteName, endpoint}},
		{"push", []string{"push", "-u", RemoteName, i.branch}},
	}
}

// InitializeAndPush initializes the repository, commits everything and
// pushes to endpoint. The first failing step stops the sequence; earlier
// steps are not undone.
func (i *Initializer) InitializeAndPush(ctx context.Context, endpoint string) error {
	for _, s := range i.steps(endpoint) {
		i.log.WithField("step", s.name).Debug("git")
		if err := i.runner.Run(ctx, i.dir, s.args...); err != nil {
			return errors.VCS(s.name, err)
		}
	}
	return nil
}
