// Package repo creates the remote repository for the working directory.
package repo

import (
	"context"
	"path/filepath"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Request describes the repository to create.
type Request struct {
	Name        string
	Description string
	Private     bool
}

// Provisioned is the created repository.
type Provisioned struct {
	// PushURL is the ssh remote URL.
	PushURL string
	HTMLURL string
}

// Creator creates repositories for the authenticated user.
type Creator interface {
	CreateRepository(ctx context.Context, req Request) (Provisioned, error)
}

// Defaults pre-fill the repository questions.
type Defaults struct {
	Name        string
	Description string
}

// DefaultsFromArgs takes the name and description from positional args,
// falling back to the base name of dir for the name.
func DefaultsFromArgs(args []string, dir string) Defaults {
	d := Defaults{Name: filepath.Base(dir)}
	if len(args) > 0 && args[0] != "" {
		d.Name = args[0]
	}
	if len(args) > 1 {
		d.Description = args[1]
	}
	return d
}
