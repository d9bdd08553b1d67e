package repo

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/poonai/ginit/internal/errors"
	"github.com/poonai/ginit/internal/logging"
	"github.com/poonai/ginit/internal/prompt"
	"github.com/poonai/ginit/internal/ui"
)

// Provisioner asks for the repository details and creates it.
type Provisioner struct {
	prompter prompt.Prompter
	creator  Creator
	progress ui.Progress
	log      *logrus.Entry
}

// NewProvisioner creates a Provisioner. A nil progress runs quietly.
func NewProvisioner(p prompt.Prompter, creator Creator, progress ui.Progress) *Provisioner {
	if progress == nil {
		progress = ui.Quiet{}
	}
	return &Provisioner{
		prompter: p,
		creator:  creator,
		progress: progress,
		log:      logging.NewLogger("repo"),
	}
}

// Provision collects a Request and creates the repository.
func (p *Provisioner) Provision(ctx context.Context, d Defaults) (Provisioned, error) {
	req, err := p.Collect(d)
	if err != nil {
		return Provisioned{}, err
	}

	p.log.WithFields(logrus.Fields{
		"name":    req.Name,
		"private": req.Private,
	}).Debug("creating repository")

	var out Provisioned
	err = p.progress.Do("Creating remote repository...", func() error {
		var err error
		out, err = p.creator.CreateRepository(ctx, req)
		return err
	})
	if err != nil {
		return Provisioned{}, errors.RepoCreation(req.Name, err)
	}
	if out.PushURL == "" {
		return Provisioned{}, errors.New(errors.ErrCodeRepoCreation, "repository created without an ssh URL").
			WithDetail("repository", req.Name)
	}
	return out, nil
}

// Collect asks for the name, description and visibility.
func (p *Provisioner) Collect(d Defaults) (Request, error) {
	name, err := prompt.Ask(p.prompter, prompt.Question{
		Label:    "Enter a name for the repository:",
		Default:  d.Name,
		Validate: prompt.Required("Please enter a name for the repository."),
	})
	if err != nil {
		return Request{}, err
	}

	description, err := prompt.Ask(p.prompter, prompt.Question{
		Label:   "Optionally enter a description of the repository:",
		Default: d.Description,
	})
	if err != nil {
		return Request{}, err
	}

	var visibility string
	for {
		visibility, err = p.prompter.Select("Public or private:",
			[]string{VisibilityPublic, VisibilityPrivate}, VisibilityPublic)
		if err != nil {
			return Request{}, err
		}
		if visibility == VisibilityPublic || visibility == VisibilityPrivate {
			break
		}
		p.log.Warnf("unknown visibility %q", visibility)
	}

	return Request{
		Name:        name,
		Description: description,
		Private:     visibility == VisibilityPrivate,
	}, nil
}
