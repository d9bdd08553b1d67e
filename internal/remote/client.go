// Package remote talks to the GitHub API.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/google/go-github/github"
	"golang.org/x/oauth2"

	"github.com/poonai/ginit/internal/auth"
	"github.com/poonai/ginit/internal/errors"
	"github.com/poonai/ginit/internal/repo"
)

// DefaultTimeout bounds every API round trip.
const DefaultTimeout = 5 * time.Second

// Client creates GitHub API sessions.
type Client struct {
	baseURL *url.URL
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a GitHub Enterprise API root such as
// https://ghe.example.com/api/v3/.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		if raw == "" {
			return nil
		}
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse api url: %w", err)
		}
		c.baseURL = u
		return nil
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d > 0 {
			c.timeout = d
		}
		return nil
	}
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	c := &Client{timeout: DefaultTimeout}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) newGitHub(hc *http.Client) *github.Client {
	hc.Timeout = c.timeout
	gh := github.NewClient(hc)
	if c.baseURL != nil {
		gh.BaseURL = c.baseURL
	}
	return gh
}

// BasicAuth opens a basic-auth session. No request is made until a token is
// requested.
func (c *Client) BasicAuth(creds auth.Credentials) auth.Session {
	tp := &github.BasicAuthTransport{
		Username: strings.TrimSpace(creds.Username),
		Password: creds.Password,
		OTP:      strings.TrimSpace(creds.TwoFactorCode),
	}
	return &basicSession{gh: c.newGitHub(tp.Client())}
}

type basicSession struct {
	gh *github.Client
}

// CreateAuthorization creates a personal token. BasicAuthTransport sends the
// two-factor code as X-GitHub-OTP when one was given.
func (s *basicSession) CreateAuthorization(ctx context.Context, req auth.AuthorizationRequest) (string, error) {
	scopes := make([]github.Scope, 0, len(req.Scopes))
	for _, sc := range req.Scopes {
		scopes = append(scopes, github.Scope(sc))
	}

	a, _, err := s.gh.Authorizations.Create(ctx, &github.AuthorizationRequest{
		Scopes: scopes,
		Note:   proto.String(req.Note),
	})
	if err != nil {
		return "", apiError(errors.ErrCodeAuthAPI, err)
	}
	return a.GetToken(), nil
}

// WithToken returns a Creator authenticated with an access token.
func (c *Client) WithToken(token string) repo.Creator {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return &tokenSession{gh: c.newGitHub(tc)}
}

type tokenSession struct {
	gh *github.Client
}

// CreateRepository creates a repository owned by the authenticated user.
func (s *tokenSession) CreateRepository(ctx context.Context, req repo.Request) (repo.Provisioned, error) {
	r := &github.Repository{
		Name:    proto.String(req.Name),
		Private: proto.Bool(req.Private),
	}
	if req.Description != "" {
		r.Description = proto.String(req.Description)
	}

	created, _, err := s.gh.Repositories.Create(ctx, "", r)
	if err != nil {
		return repo.Provisioned{}, apiError(errors.ErrCodeRepoCreation, err)
	}
	return repo.Provisioned{
		PushURL: created.GetSSHURL(),
		HTMLURL: created.GetHTMLURL(),
	}, nil
}
