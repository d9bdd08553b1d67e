package vcs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poonai/ginit/internal/errors"
)

type recordingRunner struct {
	calls  [][]string
	failAt int
}

func (r *recordingRunner) Run(_ context.Context, _ string, args ...string) error {
	r.calls = append(r.calls, args)
	if r.failAt > 0 && len(r.calls) == r.failAt {
		return fmt.Errorf("exit status 1")
	}
	return nil
}

func TestInitializeAndPushOrder(t *testing.T) {
	runner := &recordingRunner{}
	endpoint := "git@github.com:octocat/myrepo.git"

	err := NewInitializer("/tmp/x", "", runner).InitializeAndPush(context.Background(), endpoint)

	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"init", "--initial-branch=main"},
		{"add", ".gitignore"},
		{"add", "."},
		{"commit", "-m", "Initial commit"},
		{"remote", "add", "origin", endpoint},
		{"push", "-u", "origin", "main"},
	}, runner.calls)
}

func TestInitializeAndPushStopsAtFailure(t *testing.T) {
	testCases := []struct {
		failAt int
		step   string
	}{
		{failAt: 1, step: "init"},
		{failAt: 3, step: "add"},
		{failAt: 4, step: "commit"},
		{failAt: 6, step: "push"},
	}

	for _, tc := range testCases {
		t.Run(tc.step, func(t *testing.T) {
			runner := &recordingRunner{failAt: tc.failAt}

			err := NewInitializer("/tmp/x", "trunk", runner).
				InitializeAndPush(context.Background(), "git@github.com:o/r.git")

			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeVCS))
			assert.Len(t, runner.calls, tc.failAt, "no step runs after the failure")
			var vcsErr *errors.Error
			require.ErrorAs(t, err, &vcsErr)
			assert.Equal(t, tc.step, vcsErr.Details["step"])
		})
	}
}

func TestCustomBranch(t *testing.T) {
	runner := &recordingRunner{}
	require.NoError(t, NewInitializer("/tmp/x", "master", runner).InitializeAndPush(context.Background(), "u"))

	assert.Equal(t, []string{"init", "--initial-branch=master"}, runner.calls[0])
	assert.Equal(t, []string{"push", "-u", "origin", "master"}, runner.calls[5])
}

func TestCheckNotInitialized(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, CheckNotInitialized(dir))

	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	err := CheckNotInitialized(dir)
	assert.True(t, errors.Is(err, errors.ErrCodeAlreadyInitialized))
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func TestCheckNotInitializedRealRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	require.NoError(t, NewGitRunner(nil).Run(context.Background(), dir, "init"))

	assert.True(t, errors.Is(CheckNotInitialized(dir), errors.ErrCodeAlreadyInitialized))

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	assert.NoError(t, CheckNotInitialized(sub), "only the directory itself counts")
}

func TestGitRunnerSurfacesOutput(t *testing.T) {
	requireGit(t)
	err := NewGitRunner(nil).Run(context.Background(), t.TempDir(), "not-a-command")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-command")
}

func TestInitializeAndPushToLocalRemote(t *testing.T) {
	requireGit(t)
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	remote := filepath.Join(t.TempDir(), "remote.git")
	runner := NewGitRunner(nil)
	require.NoError(t, runner.Run(context.Background(), filepath.Dir(remote), "init", "--bare", remote))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("node_modules"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hi\n"), 0644))

	err := NewInitializer(dir, "main", runner).InitializeAndPush(context.Background(), remote)
	require.NoError(t, err)

	cmd := exec.Command("git", "--git-dir", remote, "log", "--format=%s", "main")
	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "Initial commit", strings.TrimSpace(string(out)))
}
