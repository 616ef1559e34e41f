package session

import "errors"

var (
	// ErrMissingCredentials is returned when login or registration is attempted
	// without an email or password. Resolved locally, never sent to the server.
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrInvalidToken is returned when a stored token cannot be decoded.
	ErrInvalidToken = errors.New("failed to decode token")
	// ErrAuthFailed is returned when the server rejects login or registration.
	// The server-provided message is attached when present.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrUnreachable is returned when no response is received from the server.
	ErrUnreachable = errors.New("server is not responding")
	// ErrMissingToken is returned when an auth response lacks the token field.
	ErrMissingToken = errors.New("no token in server response")
)
