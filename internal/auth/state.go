package auth

// State is a step of the authentication workflow.
type State int

const (
	StateCheckCache State = iota
	StatePromptCredentials
	StateBasicAuthenticated
	StateTokenIssued
	StateDeviceFlow
	StateStoreToken
	StateAuthenticated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateCheckCache:
		return "check-cache"
	case StatePromptCredentials:
		return "prompt-credentials"
	case StateBasicAuthenticated:
		return "basic-authenticated"
	case StateTokenIssued:
		return "token-issued"
	case StateDeviceFlow:
		return "device-flow"
	case StateStoreToken:
		return "store-token"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
