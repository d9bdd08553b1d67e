package app

import (
	"fmt"
	"io"
	"net/http"

	"github.com/poonai/ginit/internal/errors"
	"github.com/poonai/ginit/internal/ui"
)

const (
	MsgAlreadyInitialized = "Already a git repository!"
	MsgBadCredentials     = "Couldn't log you in. Please provide correct credentials/token."
	MsgTokenExists        = "You already have an access token."
	MsgAborted            = "Cancelled."
)

// Describe returns the message shown to the user for err.
func Describe(err error) string {
	switch errors.GetCode(err) {
	case errors.ErrCodeAlreadyInitialized:
		return MsgAlreadyInitialized
	case errors.ErrCodeAborted:
		return MsgAborted
	case errors.ErrCodeAuthAPI:
		switch errors.StatusOf(err) {
		case http.StatusUnauthorized:
			return MsgBadCredentials
		case http.StatusUnprocessableEntity:
			return MsgTokenExists
		}
		return fmt.Sprintf("Authentication failed: %v", err)
	case errors.ErrCodeRepoCreation:
		return fmt.Sprintf("Could not create the repository: %v", err)
	case errors.ErrCodeVCS:
		return fmt.Sprintf("Could not push the repository: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// ErrorHandler prints user-friendly error messages.
type ErrorHandler struct {
	Out     io.Writer
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(out io.Writer, verbose bool) *ErrorHandler {
	return &ErrorHandler{Out: out, Verbose: verbose}
}

// Handle prints err and returns it.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(h.Out, ui.RenderError(Describe(err)))

	if h.Verbose {
		if e := errors.From(err); e != nil {
			fmt.Fprintf(h.Out, "\nError details:\n%s\n", e.ToJSON())
		}
	}
	return err
}
