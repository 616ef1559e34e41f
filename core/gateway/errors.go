package gateway

import "errors"

var (
	// ErrNoToken is returned when a call is attempted without a held token.
	// Resolved locally; no network request is made.
	ErrNoToken = errors.New("no authentication token found")
	// ErrSessionExpired is returned when the server responds with 401.
	// The session has already been logged out and navigation triggered.
	ErrSessionExpired = errors.New("session expired, please login again")
	// ErrServer is returned for any other non-success response. The
	// server-provided message is attached when present.
	ErrServer = errors.New("request failed")
	// ErrUnreachable is returned when no response is received at all.
	ErrUnreachable = errors.New("server is not responding, please try again later")
	// ErrUnexpectedResponse is returned when the transport succeeds but the
	// payload does not match the documented contract.
	ErrUnexpectedResponse = errors.New("unexpected response from server")
)
