// Package auth obtains a GitHub access token, reusing a cached one when
// possible.
package auth

import (
	"context"
)

const (
	// Namespace is the preferences key the token is stored under.
	Namespace = "github"

	// TokenNote identifies tokens issued to this tool on the account's
	// authorizations page. GitHub allows one authorization per note.
	TokenNote = "ginit, the command-line tool for initalizing Git repos"
)

// Scopes requested for every new token.
var Scopes = []string{"user", "public_repo", "repo", "repo:status"}

// Credentials are collected for one exchange and never stored.
type Credentials struct {
	Username      string
	Password      string
	TwoFactorCode string
}

// AuthorizationRequest describes the token to create.
type AuthorizationRequest struct {
	Note   string
	Scopes []string
}

// TokenStore persists tokens across runs.
type TokenStore interface {
	Token(namespace string) (string, bool)
	SetToken(namespace, token string) error
}

// Authorizer opens basic-auth sessions against the remote API. Opening a
// session makes no request.
type Authorizer interface {
	BasicAuth(creds Credentials) Session
}

// Session is a basic-authenticated connection able to mint tokens. A
// two-factor code given to BasicAuth is sent with CreateAuthorization.
type Session interface {
	CreateAuthorization(ctx context.Context, req AuthorizationRequest) (string, error)
}

// DeviceAuthorizer obtains a token through the OAuth device flow.
type DeviceAuthorizer interface {
	AuthorizeDevice(ctx context.Context, scopes []string) (string, error)
}
