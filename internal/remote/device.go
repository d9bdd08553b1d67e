package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cli/oauth/device"
)

const (
	deviceURL = "https://github.com/login/device/code"
	tokenURL  = "https://github.com/login/oauth/access_token"
)

// DeviceFlow obtains a token by asking the user to approve a code in the
// browser. It needs the client id of an OAuth app.
type DeviceFlow struct {
	ClientID string
	// Show tells the user where to enter the code.
	Show func(verificationURI, userCode string)

	hc        *http.Client
	deviceURL string
	tokenURL  string
}

// NewDeviceFlow creates a DeviceFlow against github.com.
func NewDeviceFlow(clientID string, show func(verificationURI, userCode string)) *DeviceFlow {
	return &DeviceFlow{
		ClientID:  clientID,
		Show:      show,
		hc:        &http.Client{Timeout: DefaultTimeout},
		deviceURL: deviceURL,
		tokenURL:  tokenURL,
	}
}

// AuthorizeDevice requests a device code, shows it and polls until the user
// approves or the code expires.
func (d *DeviceFlow) AuthorizeDevice(ctx context.Context, scopes []string) (string, error) {
	if d.ClientID == "" {
		return "", fmt.Errorf("device flow needs an OAuth client id")
	}

	code, err := device.RequestCode(d.hc, d.deviceURL, d.ClientID, scopes)
	if err != nil {
		return "", fmt.Errorf("error while generating github access code: %w", err)
	}
	if d.Show != nil {
		d.Show(code.VerificationURI, code.UserCode)
	}

	type result struct {
		token string
		err   error
	}
	done := make(chan result, 1)
	// PollToken takes no context, so the wait happens on its own goroutine.
	go func() {
		token, err := device.PollToken(d.hc, d.tokenURL, d.ClientID, code)
		if err != nil {
			done <- result{err: err}
			return
		}
		done <- result{token: token.Token}
	}()

	expires := time.Duration(code.ExpiresIn) * time.Second
	if expires <= 0 {
		expires = 15 * time.Minute
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(expires):
		return "", fmt.Errorf("device code expired")
	case res := <-done:
		return res.token, res.err
	}
}
