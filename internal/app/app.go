// Package app runs the ginit pipeline: pre-check, authenticate, create the
// remote, write .gitignore, push.
package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/poonai/ginit/internal/ignore"
	"github.com/poonai/ginit/internal/logging"
	"github.com/poonai/ginit/internal/prompt"
	"github.com/poonai/ginit/internal/repo"
	"github.com/poonai/ginit/internal/ui"
)

// Authenticator yields an access token.
type Authenticator interface {
	Authenticate(ctx context.Context) (string, error)
}

// Remote builds token-authenticated API sessions.
type Remote interface {
	WithToken(token string) repo.Creator
}

// Pusher initializes the local repository and pushes it to endpoint.
type Pusher interface {
	InitializeAndPush(ctx context.Context, endpoint string) error
}

// App wires the stages together. Each stage receives the previous stage's
// result and nothing else.
type App struct {
	Dir      string
	Check    func(dir string) error
	Auth     Authenticator
	Remote   Remote
	Prompter prompt.Prompter
	Progress ui.Progress
	Pusher   Pusher

	log *logrus.Entry
}

// Run executes the pipeline and stops at the first error.
func (a *App) Run(ctx context.Context, args []string) (repo.Provisioned, error) {
	if a.log == nil {
		a.log = logging.NewLogger("app")
	}

	if err := a.Check(a.Dir); err != nil {
		return repo.Provisioned{}, err
	}

	token, err := a.Auth.Authenticate(ctx)
	if err != nil {
		return repo.Provisioned{}, err
	}
	a.log.Debug("authenticated")

	provisioner := repo.NewProvisioner(a.Prompter, a.Remote.WithToken(token), a.Progress)
	created, err := provisioner.Provision(ctx, repo.DefaultsFromArgs(args, a.Dir))
	if err != nil {
		return repo.Provisioned{}, err
	}
	a.log.WithField("url", created.PushURL).Debug("repository created")

	if err := ignore.NewGenerator(a.Dir, a.Prompter).Generate(ctx); err != nil {
		return created, err
	}

	progress := a.Progress
	if progress == nil {
		progress = ui.Quiet{}
	}
	err = progress.Do("Initializing local repository and pushing to remote...", func() error {
		return a.Pusher.InitializeAndPush(ctx, created.PushURL)
	})
	if err != nil {
		return created, err
	}
	return created, nil
}
