package tokenstore

import "errors"

var (
	// ErrNotFound is returned when no token is currently stored.
	ErrNotFound = errors.New("token not found")
	// ErrSaveToken is returned when persisting a token fails.
	ErrSaveToken = errors.New("failed to save token")
	// ErrClearToken is returned when removing a stored token fails.
	ErrClearToken = errors.New("failed to clear token")
)
