package auth

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/poonai/ginit/internal/errors"
	"github.com/poonai/ginit/internal/logging"
	"github.com/poonai/ginit/internal/prompt"
	"github.com/poonai/ginit/internal/ui"
)

// Workflow walks CheckCache -> PromptCredentials -> BasicAuthenticated ->
// TokenIssued -> StoreToken -> Authenticated. A cache hit goes straight to
// Authenticated. Any exchange failure ends in Failed; there is no retry.
type Workflow struct {
	store      TokenStore
	authorizer Authorizer
	prompter   prompt.Prompter
	progress   ui.Progress
	device     DeviceAuthorizer
	log        *logrus.Entry

	trace []State
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithProgress shows progress around network calls.
func WithProgress(p ui.Progress) Option {
	return func(w *Workflow) { w.progress = p }
}

// WithDeviceFlow replaces the credential prompt with the device flow.
func WithDeviceFlow(d DeviceAuthorizer) Option {
	return func(w *Workflow) { w.device = d }
}

// NewWorkflow creates a Workflow.
func NewWorkflow(store TokenStore, authorizer Authorizer, p prompt.Prompter, opts ...Option) *Workflow {
	w := &Workflow{
		store:      store,
		authorizer: authorizer,
		prompter:   p,
		progress:   ui.Quiet{},
		log:        logging.NewLogger("auth"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Trace returns the states visited by the last Authenticate call.
func (w *Workflow) Trace() []State {
	return append([]State(nil), w.trace...)
}

// Authenticate returns a non-empty access token or an error.
func (w *Workflow) Authenticate(ctx context.Context) (string, error) {
	var (
		creds   Credentials
		session Session
		token   string
		failure error
	)

	w.trace = w.trace[:0]
	state := StateCheckCache
	for {
		w.trace = append(w.trace, state)
		w.log.WithField("state", state).Debug("auth transition")

		switch state {
		case StateCheckCache:
			if cached, ok := w.store.Token(Namespace); ok {
				token = cached
				state = StateAuthenticated
			} else if w.device != nil {
				state = StateDeviceFlow
			} else {
				state = StatePromptCredentials
			}

		case StatePromptCredentials:
			c, err := w.promptCredentials()
			if err != nil {
				failure = err
				state = StateFailed
				break
			}
			creds = c
			session = w.authorizer.BasicAuth(creds)
			state = StateBasicAuthenticated

		case StateBasicAuthenticated:
			token, failure = w.issue(ctx, session)
			creds = Credentials{}
			if failure != nil {
				state = StateFailed
				break
			}
			state = StateTokenIssued

		case StateDeviceFlow:
			var err error
			token, err = w.device.AuthorizeDevice(ctx, Scopes)
			switch {
			case err != nil:
				failure = errors.AuthAPI(err)
				state = StateFailed
			case token == "":
				failure = errors.New(errors.ErrCodeAuthAPI, "no token returned")
				state = StateFailed
			default:
				state = StateStoreToken
			}

		case StateTokenIssued:
			state = StateStoreToken

		case StateStoreToken:
			if err := w.store.SetToken(Namespace, token); err != nil {
				failure = fmt.Errorf("store token: %w", err)
				state = StateFailed
				break
			}
			state = StateAuthenticated

		case StateAuthenticated:
			return token, nil

		case StateFailed:
			return "", failure

		default:
			return "", fmt.Errorf("auth: unknown state %v", state)
		}
	}
}

func (w *Workflow) promptCredentials() (Credentials, error) {
	var c Credentials
	var err error

	c.Username, err = prompt.Ask(w.prompter, prompt.Question{
		Label:    "Enter your GitHub username or e-mail address:",
		Validate: prompt.Required("Please enter your username or e-mail address."),
	})
	if err != nil {
		return Credentials{}, err
	}

	c.Password, err = prompt.Ask(w.prompter, prompt.Question{
		Label:    "Enter your password:",
		Secret:   true,
		Validate: prompt.Required("Please enter your password."),
	})
	if err != nil {
		return Credentials{}, err
	}

	c.TwoFactorCode, err = prompt.Ask(w.prompter, prompt.Question{
		Label: "If you have two-factor authentication enabled, enter your code (or leave empty):",
	})
	if err != nil {
		return Credentials{}, err
	}
	return c, nil
}

func (w *Workflow) issue(ctx context.Context, session Session) (string, error) {
	var token string
	err := w.progress.Do("Authenticating you, please wait...", func() error {
		var err error
		token, err = session.CreateAuthorization(ctx, AuthorizationRequest{
			Note:   TokenNote,
			Scopes: Scopes,
		})
		return err
	})
	if err != nil {
		return "", errors.AuthAPI(err)
	}
	if token == "" {
		return "", errors.New(errors.ErrCodeAuthAPI, "something went wrong, no token was issued")
	}
	return token, nil
}
