package vcs

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances so tests can swap the git binary.
type Executor interface {
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor uses os/exec directly.
type RealExecutor struct{}

// CommandContext creates a standard context-aware exec.Cmd.
func (RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
