package remote

import (
	stderrors "errors"
	"net/http"

	"github.com/google/go-github/github"

	"github.com/poonai/ginit/internal/errors"
)

// apiError converts go-github errors into a structured error with the HTTP
// status and the API message in separate fields. Transport failures have
// no status.
func apiError(code errors.ErrorCode, err error) error {
	var (
		twoFactor *github.TwoFactorAuthError
		rateLimit *github.RateLimitError
		response  *github.ErrorResponse
	)

	var resp *http.Response
	var message string
	switch {
	case stderrors.As(err, &twoFactor):
		resp, message = twoFactor.Response, twoFactor.Message
	case stderrors.As(err, &rateLimit):
		resp, message = rateLimit.Response, rateLimit.Message
	case stderrors.As(err, &response):
		resp, message = response.Response, response.Message
	default:
		return errors.Wrap(err, code, "request to GitHub failed")
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	e := errors.API(code, status, message)
	e.Cause = err
	return e
}
